package dto

import (
	"time"

	"github.com/mobdesk/helpdesk-core/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Category    string                `json:"category"`
	Subcategory *string               `json:"subcategory"`
	Priority    domain.TicketPriority `json:"priority"`
	SupportType domain.SupportType    `json:"support_type"`
	DueDate     *time.Time            `json:"due_date"`
	ContactName string                `json:"contact_name"`
	Phone       *string               `json:"phone"`
	Department  string                `json:"department"`
	AssignedTo  *string               `json:"assigned_to"`
	Description string                `json:"description"`
}

// TicketResponse is the full ticket view, enriched with creator and
// assignee email.
type TicketResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Subcategory   *string               `json:"subcategory"`
	Priority      domain.TicketPriority `json:"priority"`
	Status        domain.TicketStatus   `json:"status"`
	SupportType   domain.SupportType    `json:"support_type"`
	DueDate       *time.Time            `json:"due_date"`
	ContactName   string                `json:"contact_name"`
	Phone         *string               `json:"phone"`
	Department    string                `json:"department"`
	CreatedBy     string                `json:"created_by"`
	AssignedTo    *string               `json:"assigned_to"`
	CreatorEmail  string                `json:"creator_email"`
	AssigneeEmail *string               `json:"assignee_email"`
	CreatedAt     time.Time             `json:"created_at"`
}

// TicketDetailResponse bundles a ticket with its comment thread.
type TicketDetailResponse struct {
	Ticket   TicketResponse    `json:"ticket"`
	Comments []CommentResponse `json:"comments"`
}

// CommentResponse represents one thread entry.
type CommentResponse struct {
	ID          string    `json:"id"`
	TicketID    string    `json:"ticket_id"`
	CommentText string    `json:"comment_text"`
	CreatedBy   string    `json:"created_by"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddCommentRequest payload.
type AddCommentRequest struct {
	CommentText string `json:"comment_text"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// UpdatePriorityRequest payload.
type UpdatePriorityRequest struct {
	Priority domain.TicketPriority `json:"priority"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		Subcategory:   t.Subcategory,
		Priority:      t.Priority,
		Status:        t.Status,
		SupportType:   t.SupportType,
		DueDate:       t.DueDate,
		ContactName:   t.ContactName,
		Phone:         t.Phone,
		Department:    t.Department,
		CreatedBy:     t.CreatedBy,
		AssignedTo:    t.AssignedTo,
		CreatorEmail:  t.CreatorEmail,
		AssigneeEmail: t.AssigneeEmail,
		CreatedAt:     t.CreatedAt,
	}
}

// NewCommentResponse maps a domain comment.
func NewCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		TicketID:    c.TicketID,
		CommentText: c.Body,
		CreatedBy:   c.CreatedBy,
		AuthorEmail: c.AuthorEmail,
		CreatedAt:   c.CreatedAt,
	}
}
