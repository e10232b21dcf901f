package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/manpower-erp-api/internal/models"
)

func TestMetricsServiceCountsStoreMutations(t *testing.T) {
	metrics := NewMetricsService()
	records := seededStore()
	records.Subscribe(metrics.RecordMutation)

	records.AddCandidate(models.CandidateFields{Name: "New"})
	_, err := records.UpdateVisaStatus(101, models.VisaStatusDeployed)
	require.NoError(t, err)
	_, err = records.UpdateVisaStatus(999, models.VisaStatusDeployed)
	require.Error(t, err)

	body := scrape(t, metrics)
	assert.Contains(t, body, `erp_mutations_total{kind="candidate_added"} 1`)
	assert.Contains(t, body, `erp_mutations_total{kind="visa_status_updated"} 1`)
	assert.NotContains(t, body, `kind="attendance_marked"`)
}

func scrape(t *testing.T, metrics *MetricsService) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetricsServiceExposition(t *testing.T) {
	metrics := NewMetricsService()
	sessions := 4
	metrics.TrackSessions(func() int { return sessions })
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/v1/candidates", http.StatusOK, 5*time.Millisecond)
	metrics.RecordExport("candidates", "pdf")
	metrics.RecordCheckout()
	metrics.RecordCacheOperation(true, time.Millisecond)

	body := scrape(t, metrics)
	assert.Contains(t, body, "erp_active_sessions 4")
	assert.Contains(t, body, `erp_exports_total{format="pdf",report="candidates"} 1`)
	assert.Contains(t, body, "shop_checkouts_total 1")
	assert.Contains(t, body, "cache_hits_total 1")
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/v1/candidates",status="200"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var metrics *MetricsService
	assert.NotPanics(t, func() {
		metrics.RecordMutation(models.Event{Kind: models.EventCandidateAdded})
		metrics.RecordCheckout()
		metrics.TrackSessions(func() int { return 1 })
	})
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
