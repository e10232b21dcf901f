package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/service"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

type payrollService interface {
	Calculate(records service.RecordReader, req service.PayrollRequest) (*dto.PayrollResponse, error)
}

// PayrollHandler runs the attendance based salary calculator.
type PayrollHandler struct {
	payroll payrollService
}

// NewPayrollHandler constructs the handler.
func NewPayrollHandler(payroll payrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

// Calculate godoc
// @Summary Net salary from basic salary and present days
// @Tags Payroll
// @Accept json
// @Produce json
// @Param payload body service.PayrollRequest true "Payroll input"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /payroll [post]
func (h *PayrollHandler) Calculate(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req service.PayrollRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.payroll.Calculate(sess.Records, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}
