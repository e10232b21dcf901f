package models

// EventKind names a committed store mutation.
type EventKind string

const (
	EventCandidateAdded    EventKind = "candidate_added"
	EventVisaStatusUpdated EventKind = "visa_status_updated"
	EventAttendanceMarked  EventKind = "attendance_marked"
)

// Event is delivered to store subscribers after a mutation commits.
type Event struct {
	Kind        EventKind `json:"kind"`
	CandidateID int       `json:"candidate_id"`
}
