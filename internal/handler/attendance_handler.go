package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/middleware"
	"github.com/noah-isme/manpower-erp-api/internal/service"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

// AttendanceHandler exposes the attendance log.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List godoc
// @Summary List attendance records in insertion order
// @Tags Attendance
// @Produce json
// @Param candidateId query int false "Candidate ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var filter service.AttendanceFilter
	if raw := strings.TrimSpace(c.Query("candidateId")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Validationf("invalid candidateId %q", raw))
			return
		}
		filter.CandidateID = id
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid date format, expected YYYY-MM-DD"))
			return
		}
		filter.Date = &day
	}
	rows := h.attendance.List(sess.Records, filter)
	middleware.SetMeta(c, "total", len(rows))
	respond(c, http.StatusOK, rows)
}

// Mark godoc
// @Summary Record one day's attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.MarkAttendanceRequest true "Attendance payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req service.MarkAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.attendance.Mark(sess.Records, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusCreated, record)
}
