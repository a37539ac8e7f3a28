package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventVisitorCreated        EventType = "visitor_created"
	EventVisitorCheckInChanged EventType = "visitor_check_in_changed"
	EventVisitorInvited        EventType = "visitor_invited"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	VisitorID string      `json:"visitor_id,omitempty"`
	StaffID   *string     `json:"staff_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// VisitorCreatedPayload payload.
type VisitorCreatedPayload struct {
	Email          string `json:"email"`
	CreatedByStaff bool   `json:"created_by_staff"`
}

// VisitorCheckInChangedPayload payload.
type VisitorCheckInChangedPayload struct {
	CheckedIn bool `json:"checked_in"`
}

// VisitorInvitedPayload payload.
type VisitorInvitedPayload struct {
	Email string `json:"email"`
}
