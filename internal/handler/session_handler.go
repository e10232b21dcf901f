package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/middleware"
	"github.com/noah-isme/manpower-erp-api/internal/session"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

type sessionRegistry interface {
	Create() *session.Session
	End(id string) error
}

// SessionHandler starts and ends working sessions.
type SessionHandler struct {
	sessions sessionRegistry
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(sessions sessionRegistry) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create godoc
// @Summary Start a session with a freshly seeded record store
// @Tags Sessions
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	sess := h.sessions.Create()
	c.Header(middleware.SessionHeader, sess.ID)
	response.Created(c, dto.SessionResponse{SessionID: sess.ID, CreatedAt: sess.CreatedAt})
}

// End godoc
// @Summary End the current session and discard its data
// @Tags Sessions
// @Param X-Session-ID header string true "Session ID"
// @Success 204
// @Router /sessions/current [delete]
func (h *SessionHandler) End(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.sessions.End(sess.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Writer.Header().Del(middleware.SessionHeader)
	response.NoContent(c)
}
