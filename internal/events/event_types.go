package events

import (
	"time"

	"github.com/mobdesk/helpdesk-core/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSignedIn  EventType = "auth_signed_in"
	EventSignedOut EventType = "auth_signed_out"

	EventTicketCreated         EventType = "ticket_created"
	EventTicketStatusChanged   EventType = "ticket_status_changed"
	EventTicketPriorityChanged EventType = "ticket_priority_changed"
	EventCommentAdded          EventType = "ticket_comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AuthChangedPayload carries the session subject for auth events. User
// is nil on sign-out.
type AuthChangedPayload struct {
	User *domain.User `json:"user,omitempty"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID   string                `json:"ticket_id"`
	CreatedBy  string                `json:"created_by"`
	AssignedTo *string               `json:"assigned_to,omitempty"`
	Priority   domain.TicketPriority `json:"priority"`
	Title      string                `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	NewStatus domain.TicketStatus `json:"new_status"`
	ChangedBy string              `json:"changed_by"`
}

// TicketPriorityChangedPayload payload.
type TicketPriorityChangedPayload struct {
	TicketID    string                `json:"ticket_id"`
	NewPriority domain.TicketPriority `json:"new_priority"`
	ChangedBy   string                `json:"changed_by"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	TicketID  string `json:"ticket_id"`
	CommentID string `json:"comment_id"`
	CreatedBy string `json:"created_by"`
}
