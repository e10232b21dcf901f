package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceStatusFor maps a present flag to its status.
func AttendanceStatusFor(present bool) AttendanceStatus {
	if present {
		return AttendanceStatusPresent
	}
	return AttendanceStatusAbsent
}

// AttendanceRecord is one append-only attendance mark.
// Name is copied from the candidate at marking time.
type AttendanceRecord struct {
	Date        time.Time        `json:"date"`
	CandidateID int              `json:"candidate_id"`
	Name        string           `json:"name"`
	Status      AttendanceStatus `json:"status"`
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
