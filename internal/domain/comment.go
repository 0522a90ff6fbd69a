package domain

import "time"

// Comment is a single immutable entry in a ticket's thread. Ordering is
// by CreatedAt ascending, assigned by the store on insert.
type Comment struct {
	ID          string
	TicketID    string
	Body        string
	CreatedBy   string
	AuthorEmail string
	CreatedAt   time.Time
}
