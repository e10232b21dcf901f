package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

// MarkAttendanceRequest records one day's attendance for a candidate.
type MarkAttendanceRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	CandidateID int    `json:"candidate_id" validate:"required"`
	Present     *bool  `json:"present" validate:"required"`
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	CandidateID int
	Date        *time.Time
}

// AttendanceService handles attendance marking and listing.
type AttendanceService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{validator: ensureValidator(validate), logger: logger}
}

// Mark appends an attendance record. Marking the same day twice stores two rows.
func (s *AttendanceService) Mark(records RecordWriter, req MarkAttendanceRequest) (models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.AttendanceRecord{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return models.AttendanceRecord{}, appErrors.Validationf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	record, err := records.MarkAttendance(date, req.CandidateID, *req.Present)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	s.logger.Info("attendance marked",
		zap.Int("candidate_id", record.CandidateID),
		zap.String("date", req.Date),
		zap.String("status", string(record.Status)),
	)
	return record, nil
}

// List returns attendance rows in insertion order.
func (s *AttendanceService) List(records RecordReader, filter AttendanceFilter) []models.AttendanceRecord {
	rows := records.ListAttendance()
	if filter.CandidateID == 0 && filter.Date == nil {
		return rows
	}
	out := make([]models.AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		if filter.CandidateID != 0 && r.CandidateID != filter.CandidateID {
			continue
		}
		if filter.Date != nil && !r.Date.Equal(models.DateOnly(*filter.Date)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
