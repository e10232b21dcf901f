package service

import (
	"time"

	"github.com/noah-isme/manpower-erp-api/internal/models"
)

// RecordReader is the read side of a session's record store.
type RecordReader interface {
	ListCandidates() []models.Candidate
	ListAttendance() []models.AttendanceRecord
	GetCandidate(id int) (models.Candidate, error)
}

// RecordWriter adds the store's mutation entry points.
type RecordWriter interface {
	RecordReader
	AddCandidate(fields models.CandidateFields) models.Candidate
	UpdateVisaStatus(id int, status models.VisaStatus) (models.Candidate, error)
	MarkAttendance(date time.Time, candidateID int, present bool) (models.AttendanceRecord, error)
}

const dateLayout = "2006-01-02"
