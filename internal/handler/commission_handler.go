package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/service"
)

// CommissionHandler serves agent commission views.
type CommissionHandler struct {
	commissions *service.CommissionService
}

// NewCommissionHandler constructs the handler.
func NewCommissionHandler(commissions *service.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissions: commissions}
}

// Rollup godoc
// @Summary Commission owed per agent
// @Tags Commissions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /commissions [get]
func (h *CommissionHandler) Rollup(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.commissions.Rollup(sess.Records))
}

// Agent godoc
// @Summary Candidates and commission for one agent
// @Description Agent names match exactly as stored. Unknown agents return an empty list.
// @Tags Commissions
// @Produce json
// @Param agent path string true "Agent name"
// @Success 200 {object} response.Envelope
// @Router /commissions/{agent} [get]
func (h *CommissionHandler) Agent(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.commissions.Agent(sess.Records, c.Param("agent")))
}
