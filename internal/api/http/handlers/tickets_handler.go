package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mobdesk/helpdesk-core/internal/api/dto"
	"github.com/mobdesk/helpdesk-core/internal/auth"
	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/filter"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	"github.com/mobdesk/helpdesk-core/internal/service"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
	detail  *service.DetailService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService, detail *service.DetailService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, detail: detail}
}

// List GET /tickets?scope=all|mine|created|assigned&q=text.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	scope, err := parseScope(c.Query("scope", "all"), sess.User.ID)
	if err != nil {
		return err
	}

	tickets, err := h.tickets.List(c.Context(), scope)
	if err != nil {
		return err
	}
	tickets = filter.Apply(tickets, c.Query("q"))

	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	draft := service.TicketDraft{
		Title:       req.Title,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Priority:    req.Priority,
		SupportType: req.SupportType,
		DueDate:     req.DueDate,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Department:  req.Department,
		AssignedTo:  req.AssignedTo,
		Description: req.Description,
	}
	ticket, err := h.tickets.Create(c.Context(), sess.User.ID, draft)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Get GET /tickets/:id — the detail view: ticket plus comment thread.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	if _, ok := auth.SessionFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticket, comments, err := h.detail.Load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	thread := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		thread = append(thread, dto.NewCommentResponse(comment))
	}
	return c.JSON(fiber.Map{"data": dto.TicketDetailResponse{
		Ticket:   dto.NewTicketResponse(ticket),
		Comments: thread,
	}})
}

// AddComment POST /tickets/:id/comments. Responds with the re-fetched
// thread.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comments, err := h.detail.AddComment(c.Context(), c.Params("id"), sess.User.ID, req.CommentText)
	if err != nil {
		return err
	}
	thread := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		thread = append(thread, dto.NewCommentResponse(comment))
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": thread})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !domain.ValidStatus(req.Status) {
		return apperrors.NewValidationError("invalid status", map[string]any{"field": "status"})
	}

	ticket, _, err := h.detail.Load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.detail.TransitionStatus(c.Context(), sess.User.ID, ticket, req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// UpdatePriority PATCH /tickets/:id/priority.
func (h *TicketsHandler) UpdatePriority(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !domain.ValidPriority(req.Priority) {
		return apperrors.NewValidationError("invalid priority", map[string]any{"field": "priority"})
	}

	ticket, _, err := h.detail.Load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.detail.TransitionPriority(c.Context(), sess.User.ID, ticket, req.Priority); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

func parseScope(name, userID string) (repository.TicketScope, error) {
	switch name {
	case "all", "":
		return repository.ScopeAll(), nil
	case "mine":
		return repository.ScopeMine(userID), nil
	case "created":
		return repository.ScopeCreatedBy(userID), nil
	case "assigned":
		return repository.ScopeAssignedTo(userID), nil
	default:
		return repository.TicketScope{}, apperrors.NewValidationError("unknown scope", map[string]any{"scope": name})
	}
}
