package dto

import "time"

// SessionResponse identifies the caller's session.
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}
