package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/service"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

// ExportHandler streams session reports as files.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Download godoc
// @Summary Download a report
// @Tags Exports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param report path string true "candidates, commissions or attendance"
// @Param format query string false "csv (default), pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /exports/{report} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	format := service.Format(c.DefaultQuery("format", string(service.FormatCSV)))
	file, err := h.exports.Render(sess.Records, service.Report(c.Param("report")), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}
