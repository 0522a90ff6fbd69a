package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

type fakeTicketRepo struct {
	created     []*domain.Ticket
	createErr   error
	getResult   *domain.Ticket
	getErr      error
	listResult  []domain.Ticket
	listErr     error
	listScopes  []repository.TicketScope
	statusErr   error
	priorityErr error
	statusSet   []domain.TicketStatus
	prioritySet []domain.TicketPriority
	countFn     func(scope repository.TicketScope, status *domain.TicketStatus) (int64, error)
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if f.createErr != nil {
		return f.createErr
	}
	ticket.ID = "t-1"
	ticket.CreatedAt = time.Now()
	f.created = append(f.created, ticket)
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, _ string) (*domain.Ticket, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeTicketRepo) List(_ context.Context, scope repository.TicketScope) ([]domain.Ticket, error) {
	f.listScopes = append(f.listScopes, scope)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeTicketRepo) UpdateStatus(_ context.Context, _ string, status domain.TicketStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusSet = append(f.statusSet, status)
	return nil
}

func (f *fakeTicketRepo) UpdatePriority(_ context.Context, _ string, priority domain.TicketPriority) error {
	if f.priorityErr != nil {
		return f.priorityErr
	}
	f.prioritySet = append(f.prioritySet, priority)
	return nil
}

func (f *fakeTicketRepo) Count(_ context.Context, scope repository.TicketScope, status *domain.TicketStatus) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(scope, status)
}

func validDraft() TicketDraft {
	return TicketDraft{
		Title:       "Email client crashes on startup",
		Category:    "software_issues",
		Priority:    domain.TicketPriorityHigh,
		SupportType: domain.SupportTypeRemote,
		ContactName: "Dana Smith",
		Department:  "it",
		Description: "Outlook closes immediately after launch.",
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Equal(t, field, domainErr.Details["field"])
}

func TestCreateValidatesFailFastInFormOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*TicketDraft)
		field  string
	}{
		{"missing title", func(d *TicketDraft) { d.Title = "   " }, "title"},
		{"missing category", func(d *TicketDraft) { d.Category = "" }, "category"},
		{"unknown category", func(d *TicketDraft) { d.Category = "nonsense" }, "category"},
		{"missing priority", func(d *TicketDraft) { d.Priority = "" }, "priority"},
		{"missing support type", func(d *TicketDraft) { d.SupportType = "" }, "support_type"},
		{"missing contact name", func(d *TicketDraft) { d.ContactName = "" }, "contact_name"},
		{"missing department", func(d *TicketDraft) { d.Department = "" }, "department"},
		{"missing description", func(d *TicketDraft) { d.Description = " " }, "description"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeTicketRepo{}
			svc := NewTicketService(repo, nil)

			draft := validDraft()
			tc.mutate(&draft)

			_, err := svc.Create(context.Background(), "u-1", draft)
			requireFieldError(t, err, tc.field)
			require.Empty(t, repo.created, "validation failures never reach the store")
		})
	}
}

func TestCreateReportsFirstMissingFieldOnly(t *testing.T) {
	t.Parallel()

	svc := NewTicketService(&fakeTicketRepo{}, nil)
	_, err := svc.Create(context.Background(), "u-1", TicketDraft{})
	requireFieldError(t, err, "title")
}

func TestCreateForcesStatusAndAuthor(t *testing.T) {
	t.Parallel()

	repo := &fakeTicketRepo{}
	svc := NewTicketService(repo, nil)

	ticket, err := svc.Create(context.Background(), "u-session", validDraft())
	require.NoError(t, err)
	require.Equal(t, domain.TicketStatusOpen, ticket.Status)
	require.Equal(t, "u-session", ticket.CreatedBy)
	require.Equal(t, "t-1", ticket.ID)
}

func TestCreateTrimsAndNormalizesOptionals(t *testing.T) {
	t.Parallel()

	repo := &fakeTicketRepo{}
	svc := NewTicketService(repo, nil)

	blank := "   "
	phone := " 555-0100 "
	draft := validDraft()
	draft.Title = "  Email client crashes  "
	draft.Subcategory = &blank
	draft.Phone = &phone

	ticket, err := svc.Create(context.Background(), "u-1", draft)
	require.NoError(t, err)
	require.Equal(t, "Email client crashes", ticket.Title)
	require.Nil(t, ticket.Subcategory, "blank optional collapses to null")
	require.NotNil(t, ticket.Phone)
	require.Equal(t, "555-0100", *ticket.Phone)
}

func TestUpdateStatusAppliesOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	t.Run("success mutates in-memory ticket", func(t *testing.T) {
		repo := &fakeTicketRepo{}
		svc := NewTicketService(repo, nil)
		ticket := &domain.Ticket{ID: "t-1", Status: domain.TicketStatusOpen}

		require.NoError(t, svc.UpdateStatus(context.Background(), "u-1", ticket, domain.TicketStatusClosed))
		require.Equal(t, domain.TicketStatusClosed, ticket.Status)
		require.Equal(t, []domain.TicketStatus{domain.TicketStatusClosed}, repo.statusSet)
	})

	t.Run("remote failure leaves ticket unchanged", func(t *testing.T) {
		repo := &fakeTicketRepo{statusErr: errors.New("network")}
		svc := NewTicketService(repo, nil)
		ticket := &domain.Ticket{ID: "t-1", Status: domain.TicketStatusOpen}

		err := svc.UpdateStatus(context.Background(), "u-1", ticket, domain.TicketStatusClosed)
		require.Error(t, err)
		require.Equal(t, domain.TicketStatusOpen, ticket.Status)
	})
}

func TestUpdatePriorityAppliesOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	repo := &fakeTicketRepo{priorityErr: errors.New("network")}
	svc := NewTicketService(repo, nil)
	ticket := &domain.Ticket{ID: "t-1", Priority: domain.TicketPriorityLow}

	err := svc.UpdatePriority(context.Background(), "u-1", ticket, domain.TicketPriorityHigh)
	require.Error(t, err)
	require.Equal(t, domain.TicketPriorityLow, ticket.Priority)

	repo.priorityErr = nil
	require.NoError(t, svc.UpdatePriority(context.Background(), "u-1", ticket, domain.TicketPriorityHigh))
	require.Equal(t, domain.TicketPriorityHigh, ticket.Priority)
}

func TestListPassesScopeThrough(t *testing.T) {
	t.Parallel()

	repo := &fakeTicketRepo{listResult: []domain.Ticket{{ID: "t-1"}}}
	svc := NewTicketService(repo, nil)

	tickets, err := svc.List(context.Background(), repository.ScopeMine("u-7"))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Equal(t, []repository.TicketScope{repository.ScopeMine("u-7")}, repo.listScopes)
}
