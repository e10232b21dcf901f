package service

import (
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

// DefaultPayrollDivisor is the fixed number of days a basic salary is spread over.
const DefaultPayrollDivisor = 30

// PayrollRequest is the payroll calculator input.
type PayrollRequest struct {
	CandidateID int     `json:"candidate_id" validate:"required"`
	BasicSalary float64 `json:"basic_salary" validate:"gt=0"`
}

// CountAttendance counts present and absent marks for a candidate across every recorded date.
func CountAttendance(records []models.AttendanceRecord, candidateID int) (present, absent int) {
	for _, r := range records {
		if r.CandidateID != candidateID {
			continue
		}
		switch r.Status {
		case models.AttendanceStatusPresent:
			present++
		case models.AttendanceStatusAbsent:
			absent++
		}
	}
	return present, absent
}

// NetSalary is basicSalary / divisor * presentDays.
func NetSalary(basicSalary float64, divisor, presentDays int) float64 {
	return basicSalary / float64(divisor) * float64(presentDays)
}

// PayrollService computes attendance based salaries.
type PayrollService struct {
	divisor   int
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPayrollService constructs the service; divisor <= 0 uses DefaultPayrollDivisor.
func NewPayrollService(divisor int, validate *validator.Validate, logger *zap.Logger) *PayrollService {
	if divisor <= 0 {
		divisor = DefaultPayrollDivisor
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayrollService{divisor: divisor, validator: ensureValidator(validate), logger: logger}
}

// Calculate resolves the candidate and derives net salary from present days.
func (s *PayrollService) Calculate(records RecordReader, req PayrollRequest) (*dto.PayrollResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payroll payload")
	}
	candidate, err := records.GetCandidate(req.CandidateID)
	if err != nil {
		return nil, err
	}
	present, absent := CountAttendance(records.ListAttendance(), candidate.ID)
	daily := req.BasicSalary / float64(s.divisor)
	net := NetSalary(req.BasicSalary, s.divisor, present)

	s.logger.Debug("payroll calculated",
		zap.Int("candidate_id", candidate.ID),
		zap.Int("present_days", present),
		zap.Float64("net_salary", net),
	)
	return &dto.PayrollResponse{
		CandidateID: candidate.ID,
		Name:        candidate.Name,
		BasicSalary: req.BasicSalary,
		DivisorDays: s.divisor,
		PresentDays: present,
		AbsentDays:  absent,
		DailyWage:   roundCents(daily),
		NetSalary:   roundCents(net),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
