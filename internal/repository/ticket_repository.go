package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mobdesk/helpdesk-core/internal/domain"
)

const ticketColumns = `t.id, t.title, t.description, t.category, t.subcategory,
               t.priority, t.status, t.support_type, t.due_date, t.contact_name,
               t.phone, t.department, t.created_by, t.assigned_to,
               COALESCE(creator.email, ''), assignee.email, t.created_at`

const ticketJoins = ` FROM tickets t
        LEFT JOIN profiles creator ON creator.id = t.created_by
        LEFT JOIN profiles assignee ON assignee.id = t.assigned_to`

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, scope TicketScope) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
	UpdatePriority(ctx context.Context, id string, priority domain.TicketPriority) error
	Count(ctx context.Context, scope TicketScope, status *domain.TicketStatus) (int64, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, category, subcategory, priority, status,
            support_type, due_date, contact_name, phone, department, created_by, assigned_to)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Subcategory,
		ticket.Priority,
		ticket.Status,
		ticket.SupportType,
		ticket.DueDate,
		ticket.ContactName,
		ticket.Phone,
		ticket.Department,
		ticket.CreatedBy,
		ticket.AssignedTo,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ticketJoins + ` WHERE t.id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(ticketFields(&ticket)...); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, scope TicketScope) ([]domain.Ticket, error) {
	where, args := scope.clause(0)
	query := `SELECT ` + ticketColumns + ticketJoins +
		` WHERE ` + where + ` ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	return r.updateField(ctx, id, "status", string(status))
}

func (r *ticketRepository) UpdatePriority(ctx context.Context, id string, priority domain.TicketPriority) error {
	return r.updateField(ctx, id, "priority", string(priority))
}

// updateField performs a targeted single-column patch; the column name
// comes from a fixed caller-side set, never user input.
func (r *ticketRepository) updateField(ctx context.Context, id, column, value string) error {
	query := fmt.Sprintf(`UPDATE tickets SET %s=$1 WHERE id=$2`, column)
	cmd, err := r.pool.Exec(ctx, query, value, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) Count(ctx context.Context, scope TicketScope, status *domain.TicketStatus) (int64, error) {
	where, args := scope.clause(0)
	query := `SELECT COUNT(*) FROM tickets t WHERE ` + where
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND t.status=$%d", len(args))
	}
	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func ticketFields(t *domain.Ticket) []any {
	return []any{
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Category,
		&t.Subcategory,
		&t.Priority,
		&t.Status,
		&t.SupportType,
		&t.DueDate,
		&t.ContactName,
		&t.Phone,
		&t.Department,
		&t.CreatedBy,
		&t.AssignedTo,
		&t.CreatorEmail,
		&t.AssigneeEmail,
		&t.CreatedAt,
	}
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(ticketFields(&ticket)...); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
