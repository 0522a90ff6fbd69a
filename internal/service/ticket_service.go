package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/events"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

// TicketService coordinates ticket collection workflows: scoped
// listing, creation with fail-fast validation, and the single-field
// status/priority updates used by list screens.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketDraft describes ticket creation payload. Status and authorship
// supplied by callers are ignored; the service forces them.
type TicketDraft struct {
	Title       string
	Category    string
	Subcategory *string
	Priority    domain.TicketPriority
	SupportType domain.SupportType
	DueDate     *time.Time
	ContactName string
	Phone       *string
	Department  string
	AssignedTo  *string
	Description string
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// List returns tickets in scope, newest first, enriched with creator
// and assignee email.
func (s *TicketService) List(ctx context.Context, scope repository.TicketScope) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, scope)
}

// Create validates the draft and persists a new ticket. Validation is
// fail-fast: the first missing required field is reported and nothing
// reaches the store. Status is forced to open and created_by to the
// session user, so drafts cannot spoof authorship.
func (s *TicketService) Create(ctx context.Context, userID string, draft TicketDraft) (*domain.Ticket, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Category:    draft.Category,
		Subcategory: normalizeOptional(draft.Subcategory),
		Priority:    draft.Priority,
		Status:      domain.TicketStatusOpen,
		SupportType: draft.SupportType,
		DueDate:     draft.DueDate,
		ContactName: strings.TrimSpace(draft.ContactName),
		Phone:       normalizeOptional(draft.Phone),
		Department:  draft.Department,
		CreatedBy:   userID,
		AssignedTo:  normalizeOptional(draft.AssignedTo),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventTicketCreated, events.TicketCreatedPayload{
		TicketID:   ticket.ID,
		CreatedBy:  ticket.CreatedBy,
		AssignedTo: ticket.AssignedTo,
		Priority:   ticket.Priority,
		Title:      ticket.Title,
	})
	return ticket, nil
}

// UpdateStatus patches the status column and, only on success, applies
// the same mutation to the caller's in-memory ticket. On failure the
// ticket is left untouched and the error surfaces.
func (s *TicketService) UpdateStatus(ctx context.Context, actorID string, ticket *domain.Ticket, newStatus domain.TicketStatus) error {
	if err := s.tickets.UpdateStatus(ctx, ticket.ID, newStatus); err != nil {
		return err
	}
	ticket.Status = newStatus
	s.publish(ctx, events.EventTicketStatusChanged, events.TicketStatusChangedPayload{
		TicketID:  ticket.ID,
		NewStatus: newStatus,
		ChangedBy: actorID,
	})
	return nil
}

// UpdatePriority patches the priority column with the same optimistic
// apply-on-success contract as UpdateStatus.
func (s *TicketService) UpdatePriority(ctx context.Context, actorID string, ticket *domain.Ticket, newPriority domain.TicketPriority) error {
	if err := s.tickets.UpdatePriority(ctx, ticket.ID, newPriority); err != nil {
		return err
	}
	ticket.Priority = newPriority
	s.publish(ctx, events.EventTicketPriorityChanged, events.TicketPriorityChangedPayload{
		TicketID:    ticket.ID,
		NewPriority: newPriority,
		ChangedBy:   actorID,
	})
	return nil
}

// validateDraft checks required fields in form order and reports the
// first one missing.
func validateDraft(draft TicketDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return apperrors.NewMissingField("title")
	}
	if draft.Category == "" || !domain.ValidCategory(draft.Category) {
		return apperrors.NewMissingField("category")
	}
	if draft.Priority == "" || !domain.ValidPriority(draft.Priority) {
		return apperrors.NewMissingField("priority")
	}
	if draft.SupportType == "" || !domain.ValidSupportType(draft.SupportType) {
		return apperrors.NewMissingField("support_type")
	}
	if strings.TrimSpace(draft.ContactName) == "" {
		return apperrors.NewMissingField("contact_name")
	}
	if draft.Department == "" || !domain.ValidDepartment(draft.Department) {
		return apperrors.NewMissingField("department")
	}
	if strings.TrimSpace(draft.Description) == "" {
		return apperrors.NewMissingField("description")
	}
	return nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
