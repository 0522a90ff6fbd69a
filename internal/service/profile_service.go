package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/repository"
)

// ProfileService serves the profile screen: the user directory and
// per-user ticket statistics.
type ProfileService struct {
	profiles repository.ProfileRepository
	tickets  repository.TicketRepository
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository, tickets repository.TicketRepository) *ProfileService {
	return &ProfileService{profiles: profiles, tickets: tickets}
}

// Get returns the profile for a user.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, userID)
}

// Directory lists all profiles ordered by email, for assignee pickers.
func (s *ProfileService) Directory(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListDirectory(ctx)
}

// Stats gathers the four profile counters concurrently.
func (s *ProfileService) Stats(ctx context.Context, userID string) (domain.ProfileStats, error) {
	var stats domain.ProfileStats
	open := domain.TicketStatusOpen
	closed := domain.TicketStatusClosed

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.tickets.Count(gctx, repository.ScopeCreatedBy(userID), nil)
		stats.TotalCreated = n
		return err
	})
	g.Go(func() error {
		n, err := s.tickets.Count(gctx, repository.ScopeAssignedTo(userID), nil)
		stats.TotalAssigned = n
		return err
	})
	g.Go(func() error {
		n, err := s.tickets.Count(gctx, repository.ScopeMine(userID), &open)
		stats.OpenMine = n
		return err
	})
	g.Go(func() error {
		n, err := s.tickets.Count(gctx, repository.ScopeMine(userID), &closed)
		stats.ClosedMine = n
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ProfileStats{}, err
	}
	return stats, nil
}
