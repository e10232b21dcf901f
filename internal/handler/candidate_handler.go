package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/middleware"
	"github.com/noah-isme/manpower-erp-api/internal/models"
	"github.com/noah-isme/manpower-erp-api/internal/service"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

// CandidateHandler exposes the candidate table.
type CandidateHandler struct {
	candidates *service.CandidateService
}

// NewCandidateHandler constructs the handler.
func NewCandidateHandler(candidates *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// List godoc
// @Summary List candidates in insertion order
// @Tags Candidates
// @Produce json
// @Param country query string false "Exact country"
// @Param visaStatus query string false "Exact visa status"
// @Param agent query string false "Exact agent name"
// @Success 200 {object} response.Envelope
// @Router /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	filter := service.CandidateFilter{
		Country:    strings.TrimSpace(c.Query("country")),
		VisaStatus: strings.TrimSpace(c.Query("visaStatus")),
		AgentName:  strings.TrimSpace(c.Query("agent")),
	}
	items := h.candidates.List(sess.Records, filter)
	middleware.SetMeta(c, "total", len(items))
	respond(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get a candidate
// @Tags Candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	candidate, err := h.candidates.Get(sess.Records, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, candidate)
}

// Create godoc
// @Summary Register a candidate
// @Tags Candidates
// @Accept json
// @Produce json
// @Param payload body service.CreateCandidateRequest true "Candidate payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req service.CreateCandidateRequest
	if !bindJSON(c, &req) {
		return
	}
	candidate, err := h.candidates.Create(sess.Records, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusCreated, candidate)
}

// UpdateStatus godoc
// @Summary Move a candidate to another workflow stage
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param payload body service.UpdateVisaStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /candidates/{id}/status [patch]
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateVisaStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	candidate, err := h.candidates.UpdateVisaStatus(sess.Records, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, candidate)
}

// VisaStatuses godoc
// @Summary Workflow status vocabulary accepted on add and update
// @Tags Candidates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /visa-statuses [get]
func (h *CandidateHandler) VisaStatuses(c *gin.Context) {
	respond(c, http.StatusOK, models.WorkflowStatuses)
}
