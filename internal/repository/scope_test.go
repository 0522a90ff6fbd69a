package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scope    TicketScope
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "all",
			scope:    ScopeAll(),
			wantSQL:  "1=1",
			wantArgs: nil,
		},
		{
			name:     "created by",
			scope:    ScopeCreatedBy("u-1"),
			wantSQL:  "t.created_by=$1",
			wantArgs: []any{"u-1"},
		},
		{
			name:     "assigned to",
			scope:    ScopeAssignedTo("u-1"),
			wantSQL:  "t.assigned_to=$1",
			wantArgs: []any{"u-1"},
		},
		{
			name:     "mine",
			scope:    ScopeMine("u-1"),
			wantSQL:  "(t.created_by=$1 OR t.assigned_to=$2)",
			wantArgs: []any{"u-1", "u-1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sql, args := tt.scope.clause(0)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestScopeClauseOffset(t *testing.T) {
	t.Parallel()

	sql, args := ScopeMine("u-9").clause(2)
	require.Equal(t, "(t.created_by=$3 OR t.assigned_to=$4)", sql)
	require.Equal(t, []any{"u-9", "u-9"}, args)
}

func TestZeroScopeIsUnrestricted(t *testing.T) {
	t.Parallel()

	var scope TicketScope
	sql, args := scope.clause(0)
	require.Equal(t, "1=1", sql)
	require.Empty(t, args)
}
