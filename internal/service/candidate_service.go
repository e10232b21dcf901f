package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

// CreateCandidateRequest holds payload for registering a candidate.
// Omitted visa status and passport expiry take store defaults.
type CreateCandidateRequest struct {
	Name            string  `json:"name"`
	PassportNumber  string  `json:"passport_number"`
	PassportExpiry  *string `json:"passport_expiry" validate:"omitempty,datetime=2006-01-02"`
	IqamaNumber     string  `json:"iqama_number"`
	IqamaExpiry     *string `json:"iqama_expiry" validate:"omitempty,datetime=2006-01-02"`
	VisaStatus      string  `json:"visa_status" validate:"omitempty,visa_status"`
	AgentName       string  `json:"agent_name"`
	AgentCommission int64   `json:"agent_commission" validate:"gte=0"`
	Country         string  `json:"country"`
}

// UpdateVisaStatusRequest moves a candidate to another workflow stage.
type UpdateVisaStatusRequest struct {
	VisaStatus string `json:"visa_status" validate:"required,visa_status"`
}

// CandidateFilter narrows candidate listings. Empty fields match everything.
type CandidateFilter struct {
	Country    string
	VisaStatus string
	AgentName  string
}

// CandidateService handles candidate use-cases.
type CandidateService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCandidateService constructs the candidate service.
func NewCandidateService(validate *validator.Validate, logger *zap.Logger) *CandidateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateService{validator: ensureValidator(validate), logger: logger}
}

// List returns candidates in insertion order.
func (s *CandidateService) List(records RecordReader, filter CandidateFilter) []models.Candidate {
	candidates := records.ListCandidates()
	if filter == (CandidateFilter{}) {
		return candidates
	}
	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if filter.Country != "" && c.Country != filter.Country {
			continue
		}
		if filter.VisaStatus != "" && string(c.VisaStatus) != filter.VisaStatus {
			continue
		}
		if filter.AgentName != "" && c.AgentName != filter.AgentName {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Get returns one candidate.
func (s *CandidateService) Get(records RecordReader, id int) (models.Candidate, error) {
	return records.GetCandidate(id)
}

// Create validates the payload and registers a candidate.
func (s *CandidateService) Create(records RecordWriter, req CreateCandidateRequest) (models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Candidate{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid candidate payload")
	}
	passportExpiry, err := parseOptionalDate(req.PassportExpiry)
	if err != nil {
		return models.Candidate{}, err
	}
	iqamaExpiry, err := parseOptionalDate(req.IqamaExpiry)
	if err != nil {
		return models.Candidate{}, err
	}
	iqama := strings.TrimSpace(req.IqamaNumber)
	if iqama == "" {
		iqama = models.IqamaPending
	}

	created := records.AddCandidate(models.CandidateFields{
		Name:            req.Name,
		PassportNumber:  req.PassportNumber,
		PassportExpiry:  passportExpiry,
		IqamaNumber:     iqama,
		IqamaExpiry:     iqamaExpiry,
		VisaStatus:      models.VisaStatus(req.VisaStatus),
		AgentName:       req.AgentName,
		AgentCommission: req.AgentCommission,
		Country:         req.Country,
	})
	s.logger.Info("candidate added", zap.Int("candidate_id", created.ID), zap.String("agent", created.AgentName))
	return created, nil
}

// UpdateVisaStatus validates the new status and applies it.
func (s *CandidateService) UpdateVisaStatus(records RecordWriter, id int, req UpdateVisaStatusRequest) (models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Candidate{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unknown visa status")
	}
	updated, err := records.UpdateVisaStatus(id, models.VisaStatus(req.VisaStatus))
	if err != nil {
		return models.Candidate{}, err
	}
	s.logger.Info("visa status updated", zap.Int("candidate_id", id), zap.String("visa_status", req.VisaStatus))
	return updated, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, appErrors.Validationf("invalid date %q, expected YYYY-MM-DD", *raw)
	}
	return &t, nil
}
