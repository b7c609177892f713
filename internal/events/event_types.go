package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberRegistered EventType = "member_registered"
	EventMemberApproved   EventType = "member_approved"
	EventMemberRejected   EventType = "member_rejected"
)

// Event represents a membership lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	MemberID  string      `json:"member_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MemberRegisteredPayload carries the fields needed for the welcome mail and
// the admin approval prompt.
type MemberRegisteredPayload struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Languages  []string `json:"languages"`
}

// MemberApprovedPayload payload.
type MemberApprovedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MemberRejectedPayload payload.
type MemberRejectedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
