package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// SupportType enumerates how support is delivered.
type SupportType string

const (
	SupportTypeRemote    SupportType = "remote"
	SupportTypeOnsite    SupportType = "onsite"
	SupportTypeTelephone SupportType = "telephone"
)

// ValidStatus reports whether s is one of the enumerated ticket statuses.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// ValidSupportType reports whether s is one of the enumerated support types.
func ValidSupportType(s SupportType) bool {
	switch s {
	case SupportTypeRemote, SupportTypeOnsite, SupportTypeTelephone:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. CreatorEmail and
// AssigneeEmail are denormalized from profiles when the ticket is loaded.
type Ticket struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Subcategory   *string
	Priority      TicketPriority
	Status        TicketStatus
	SupportType   SupportType
	DueDate       *time.Time
	ContactName   string
	Phone         *string
	Department    string
	CreatedBy     string
	AssignedTo    *string
	CreatorEmail  string
	AssigneeEmail *string
	CreatedAt     time.Time
}
