package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/repository"
)

type fakeProfileRepo struct {
	profile   *domain.Profile
	getErr    error
	directory []domain.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, _ *domain.Profile) error { return nil }

func (f *fakeProfileRepo) GetByID(_ context.Context, _ string) (*domain.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) ListDirectory(_ context.Context) ([]domain.Profile, error) {
	return f.directory, nil
}

func TestStatsCountsEachScope(t *testing.T) {
	t.Parallel()

	tickets := &fakeTicketRepo{
		countFn: func(scope repository.TicketScope, status *domain.TicketStatus) (int64, error) {
			switch {
			case status == nil && scope == repository.ScopeCreatedBy("u-1"):
				return 7, nil
			case status == nil && scope == repository.ScopeAssignedTo("u-1"):
				return 4, nil
			case status != nil && *status == domain.TicketStatusOpen:
				return 3, nil
			case status != nil && *status == domain.TicketStatusClosed:
				return 2, nil
			}
			return 0, errors.New("unexpected count query")
		},
	}
	svc := NewProfileService(&fakeProfileRepo{}, tickets)

	stats, err := svc.Stats(context.Background(), "u-1")
	require.NoError(t, err)
	require.Equal(t, int64(7), stats.TotalCreated)
	require.Equal(t, int64(4), stats.TotalAssigned)
	require.Equal(t, int64(3), stats.OpenMine)
	require.Equal(t, int64(2), stats.ClosedMine)
}

func TestStatsPropagatesCountError(t *testing.T) {
	t.Parallel()

	tickets := &fakeTicketRepo{
		countFn: func(repository.TicketScope, *domain.TicketStatus) (int64, error) {
			return 0, errors.New("store unavailable")
		},
	}
	svc := NewProfileService(&fakeProfileRepo{}, tickets)

	_, err := svc.Stats(context.Background(), "u-1")
	require.Error(t, err)
}

func TestDirectoryReturnsProfiles(t *testing.T) {
	t.Parallel()

	repo := &fakeProfileRepo{directory: []domain.Profile{
		{ID: "u-1", Email: "a@example.com"},
		{ID: "u-2", Email: "b@example.com"},
	}}
	svc := NewProfileService(repo, &fakeTicketRepo{})

	profiles, err := svc.Directory(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	require.Equal(t, "a@example.com", profiles[0].Email)
}
