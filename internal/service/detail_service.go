package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/events"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

// DetailService composes one ticket with its comment thread and
// exposes the transition and comment-append operations of the detail
// view.
type DetailService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// NewDetailService constructs the service.
func NewDetailService(tickets repository.TicketRepository, comments repository.CommentRepository, dispatcher events.Dispatcher) *DetailService {
	return &DetailService{tickets: tickets, comments: comments, dispatcher: dispatcher}
}

// Load fetches the ticket and its comments concurrently and waits for
// both. A failed ticket fetch surfaces NOT_FOUND so the caller leaves
// the detail view; comments come back ordered by created_at ascending.
func (s *DetailService) Load(ctx context.Context, ticketID string) (*domain.Ticket, []domain.Comment, error) {
	var (
		ticket   *domain.Ticket
		comments []domain.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tickets.GetByID(gctx, ticketID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
			}
			return err
		}
		ticket = t
		return nil
	})
	g.Go(func() error {
		list, err := s.comments.ListByTicket(gctx, ticketID)
		if err != nil {
			return err
		}
		comments = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ticket, comments, nil
}

// AddComment validates the text locally, inserts it, then re-fetches
// the thread. Read-after-write consistency comes from the re-fetch,
// never from echoing the local comment.
func (s *DetailService) AddComment(ctx context.Context, ticketID, authorID, text string) ([]domain.Comment, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, apperrors.NewValidationError("comment text required", map[string]any{"field": "comment_text"})
	}

	comment := &domain.Comment{TicketID: ticketID, Body: body, CreatedBy: authorID}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventCommentAdded, events.CommentAddedPayload{
		TicketID:  ticketID,
		CommentID: comment.ID,
		CreatedBy: authorID,
	})
	return s.comments.ListByTicket(ctx, ticketID)
}

// TransitionStatus moves the ticket to any of the enumerated statuses.
// The graph is unrestricted; the presentation layer only offers legal
// values. The loaded ticket is mutated only on remote success.
func (s *DetailService) TransitionStatus(ctx context.Context, actorID string, ticket *domain.Ticket, newStatus domain.TicketStatus) error {
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

// TransitionPriority moves the ticket to any of the enumerated
// priorities with the same apply-on-success contract.
func (s *DetailService) TransitionPriority(ctx context.Context, actorID string, ticket *domain.Ticket, newPriority domain.TicketPriority) error {
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

func (s *DetailService) publish(ctx context.Context, eventType events.EventType, payload any) {
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
