package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/service"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

// AlertHandler serves document expiry alerts.
type AlertHandler struct {
	expiry *service.ExpiryService
}

// NewAlertHandler constructs the handler.
func NewAlertHandler(expiry *service.ExpiryService) *AlertHandler {
	return &AlertHandler{expiry: expiry}
}

// Expiry godoc
// @Summary Passports and iqamas expiring inside the alert window
// @Tags Alerts
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /alerts/expiry [get]
func (h *AlertHandler) Expiry(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var asOf time.Time
	if raw := strings.TrimSpace(c.Query("asOf")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid asOf format, expected YYYY-MM-DD"))
			return
		}
		asOf = parsed
	}
	respond(c, http.StatusOK, h.expiry.Alerts(sess.Records, asOf))
}
