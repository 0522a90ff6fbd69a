// Package filter narrows an already-fetched ticket collection against
// a free-text query. It never touches the store: callers filter the
// last result they hold.
package filter

import (
	"strings"

	"github.com/mobdesk/helpdesk-core/internal/domain"
)

// Match reports whether the query case-insensitively substring-matches
// the ticket's title, description, status, or priority. Any one field
// matching is sufficient.
func Match(ticket domain.Ticket, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ticket.Title), q) ||
		strings.Contains(strings.ToLower(ticket.Description), q) ||
		strings.Contains(strings.ToLower(string(ticket.Status)), q) ||
		strings.Contains(strings.ToLower(string(ticket.Priority)), q)
}

// Apply returns the tickets matching query. A blank or whitespace-only
// query returns the input unchanged. Apply is idempotent for a fixed
// query.
func Apply(tickets []domain.Ticket, query string) []domain.Ticket {
	if strings.TrimSpace(query) == "" {
		return tickets
	}
	filtered := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if Match(ticket, query) {
			filtered = append(filtered, ticket)
		}
	}
	return filtered
}
