package repository

import "fmt"

type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeCreatedBy
	scopeAssignedTo
	scopeMine
)

// TicketScope selects which tickets a query returns. Construct via the
// Scope* helpers; the zero value is the unrestricted scope.
type TicketScope struct {
	kind   scopeKind
	userID string
}

// ScopeAll selects every ticket.
func ScopeAll() TicketScope {
	return TicketScope{kind: scopeAll}
}

// ScopeCreatedBy selects tickets created by the user.
func ScopeCreatedBy(userID string) TicketScope {
	return TicketScope{kind: scopeCreatedBy, userID: userID}
}

// ScopeAssignedTo selects tickets assigned to the user.
func ScopeAssignedTo(userID string) TicketScope {
	return TicketScope{kind: scopeAssignedTo, userID: userID}
}

// ScopeMine selects tickets created by or assigned to the user.
func ScopeMine(userID string) TicketScope {
	return TicketScope{kind: scopeMine, userID: userID}
}

// clause compiles the scope into a WHERE fragment. Placeholders start
// at $argOffset+1; the returned args line up with them.
func (s TicketScope) clause(argOffset int) (string, []any) {
	n := func(i int) string { return fmt.Sprintf("$%d", argOffset+i) }
	switch s.kind {
	case scopeCreatedBy:
		return "t.created_by=" + n(1), []any{s.userID}
	case scopeAssignedTo:
		return "t.assigned_to=" + n(1), []any{s.userID}
	case scopeMine:
		return "(t.created_by=" + n(1) + " OR t.assigned_to=" + n(2) + ")", []any{s.userID, s.userID}
	default:
		return "1=1", nil
	}
}
