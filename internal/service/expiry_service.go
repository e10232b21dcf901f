package service

import (
	"sort"
	"time"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/models"
)

// DefaultExpiryWindowDays is the look-ahead used when none is configured.
const DefaultExpiryWindowDays = 180

// ExpiringPassports returns candidates whose passport expires strictly after asOf
// and strictly before asOf plus windowDays. Candidates without an expiry never match.
func ExpiringPassports(candidates []models.Candidate, asOf time.Time, windowDays int) []models.Candidate {
	return filterExpiring(candidates, asOf, windowDays, func(c models.Candidate) *time.Time {
		return c.PassportExpiry
	})
}

// ExpiringIqamas applies the passport rule to iqama expiry dates.
func ExpiringIqamas(candidates []models.Candidate, asOf time.Time, windowDays int) []models.Candidate {
	return filterExpiring(candidates, asOf, windowDays, func(c models.Candidate) *time.Time {
		return c.IqamaExpiry
	})
}

func filterExpiring(candidates []models.Candidate, asOf time.Time, windowDays int, expiry func(models.Candidate) *time.Time) []models.Candidate {
	start := models.DateOnly(asOf)
	end := start.AddDate(0, 0, windowDays)
	out := make([]models.Candidate, 0)
	for _, c := range candidates {
		exp := expiry(c)
		if exp == nil {
			continue
		}
		if exp.After(start) && exp.Before(end) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return expiry(out[i]).Before(*expiry(out[j]))
	})
	return out
}

// ExpiryService builds the document alert view.
type ExpiryService struct {
	windowDays int
	now        func() time.Time
}

// NewExpiryService constructs the service; windowDays <= 0 uses DefaultExpiryWindowDays.
func NewExpiryService(windowDays int) *ExpiryService {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}
	return &ExpiryService{windowDays: windowDays, now: time.Now}
}

// WindowDays reports the configured look-ahead.
func (s *ExpiryService) WindowDays() int {
	return s.windowDays
}

// Alerts lists passports and iqamas expiring within the window after asOf.
// A zero asOf means today.
func (s *ExpiryService) Alerts(records RecordReader, asOf time.Time) *dto.ExpiryAlertsResponse {
	if asOf.IsZero() {
		asOf = s.now()
	}
	asOf = models.DateOnly(asOf)
	candidates := records.ListCandidates()

	resp := &dto.ExpiryAlertsResponse{
		AsOf:       asOf.Format(dateLayout),
		WindowDays: s.windowDays,
		Passports:  make([]dto.ExpiryAlert, 0),
		Iqamas:     make([]dto.ExpiryAlert, 0),
	}
	for _, c := range ExpiringPassports(candidates, asOf, s.windowDays) {
		resp.Passports = append(resp.Passports, toAlert(c, c.PassportNumber, *c.PassportExpiry, asOf))
	}
	for _, c := range ExpiringIqamas(candidates, asOf, s.windowDays) {
		resp.Iqamas = append(resp.Iqamas, toAlert(c, c.IqamaNumber, *c.IqamaExpiry, asOf))
	}
	return resp
}

func toAlert(c models.Candidate, number string, expiry, asOf time.Time) dto.ExpiryAlert {
	return dto.ExpiryAlert{
		CandidateID:    c.ID,
		Name:           c.Name,
		DocumentNumber: number,
		ExpiresOn:      expiry.Format(dateLayout),
		DaysRemaining:  int(models.DateOnly(expiry).Sub(asOf).Hours() / 24),
		AgentName:      c.AgentName,
		Country:        c.Country,
	}
}
