package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/models"
)

// TotalCandidates is the candidate row count.
func TotalCandidates(candidates []models.Candidate) int {
	return len(candidates)
}

// CountByCountry counts candidates placed in country (exact match).
func CountByCountry(candidates []models.Candidate, country string) int {
	n := 0
	for _, c := range candidates {
		if c.Country == country {
			n++
		}
	}
	return n
}

// CountByStatus counts candidates whose visa status equals status exactly.
func CountByStatus(candidates []models.Candidate, status models.VisaStatus) int {
	n := 0
	for _, c := range candidates {
		if c.VisaStatus == status {
			n++
		}
	}
	return n
}

// TotalCommissionDue sums agent commission over all candidates.
func TotalCommissionDue(candidates []models.Candidate) int64 {
	var total int64
	for _, c := range candidates {
		total += c.AgentCommission
	}
	return total
}

// StatusDistribution maps each visa status to its candidate count.
func StatusDistribution(candidates []models.Candidate) map[string]int {
	out := make(map[string]int)
	for _, c := range candidates {
		out[string(c.VisaStatus)]++
	}
	return out
}

// CountryDistribution maps each country to its candidate count.
func CountryDistribution(candidates []models.Candidate) map[string]int {
	out := make(map[string]int)
	for _, c := range candidates {
		out[c.Country]++
	}
	return out
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL           time.Duration
	HighlightCountries []string
	HighlightStatuses  []string
}

// DashboardService composes dashboard payloads and caches them per session.
type DashboardService struct {
	cache  *CacheService
	logger *zap.Logger
	cfg    DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(cache *CacheService, cfg DashboardServiceConfig, logger *zap.Logger) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.HighlightCountries == nil {
		cfg.HighlightCountries = []string{"Saudi Arabia"}
	}
	if cfg.HighlightStatuses == nil {
		cfg.HighlightStatuses = []string{string(models.VisaStatusVisaStamped), string(models.VisaStatusDeployed)}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{cache: cache, logger: logger, cfg: cfg}
}

// Summary returns the session's dashboard and whether it was served from cache.
func (s *DashboardService) Summary(ctx context.Context, sessionID string, records RecordReader) (*dto.DashboardResponse, bool, error) {
	key := dashboardCacheKey(sessionID)
	if s.cache.Enabled() {
		var cached dto.DashboardResponse
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache read failed, recomputing", zap.String("key", key), zap.Error(err))
		} else if hit {
			return &cached, true, nil
		}
	}

	summary := s.compose(records.ListCandidates())
	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, key, summary, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return summary, false, nil
}

// Invalidate drops the cached dashboard for a session.
func (s *DashboardService) Invalidate(ctx context.Context, sessionID string) {
	if !s.cache.Enabled() {
		return
	}
	_ = s.cache.Invalidate(ctx, dashboardCacheKey(sessionID))
}

// InvalidateOnEvent adapts Invalidate to a store listener.
func (s *DashboardService) InvalidateOnEvent(sessionID string) func(models.Event) {
	return func(models.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.Invalidate(ctx, sessionID)
	}
}

func (s *DashboardService) compose(candidates []models.Candidate) *dto.DashboardResponse {
	summary := &dto.DashboardResponse{
		TotalCandidates:     TotalCandidates(candidates),
		TotalCommissionDue:  TotalCommissionDue(candidates),
		StatusDistribution:  StatusDistribution(candidates),
		CountryDistribution: CountryDistribution(candidates),
		CountryHighlights:   make([]dto.CountMetric, 0, len(s.cfg.HighlightCountries)),
		StatusHighlights:    make([]dto.CountMetric, 0, len(s.cfg.HighlightStatuses)),
	}
	for _, country := range s.cfg.HighlightCountries {
		summary.CountryHighlights = append(summary.CountryHighlights, dto.CountMetric{
			Label: country,
			Count: CountByCountry(candidates, country),
		})
	}
	for _, status := range s.cfg.HighlightStatuses {
		summary.StatusHighlights = append(summary.StatusHighlights, dto.CountMetric{
			Label: status,
			Count: CountByStatus(candidates, models.VisaStatus(status)),
		})
	}
	return summary
}

func dashboardCacheKey(sessionID string) string {
	return fmt.Sprintf("erp:dash:%s", sessionID)
}
