package session

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/events"
)

type fakeProfiles struct {
	getErr    error
	profile   *domain.Profile
	createErr error
	created   []*domain.Profile
}

func (f *fakeProfiles) GetByID(_ context.Context, _ string) (*domain.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfiles) Create(_ context.Context, profile *domain.Profile) error {
	f.created = append(f.created, profile)
	return f.createErr
}

func (f *fakeProfiles) ListDirectory(_ context.Context) ([]domain.Profile, error) {
	return nil, nil
}

type fakeCache struct {
	sets   map[string]domain.Role
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{sets: make(map[string]domain.Role)}
}

func (f *fakeCache) GetRole(_ context.Context, _ string) (domain.Role, error) {
	return domain.RoleUnknown, nil
}

func (f *fakeCache) SetRole(_ context.Context, userID string, role domain.Role) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets[userID] = role
	return nil
}

func alice() *domain.User {
	return &domain.User{ID: "u-alice", Email: "alice@example.com"}
}

func TestResolveSignedOut(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&fakeProfiles{}, newFakeCache(), zap.NewNop())
	sess := resolver.Resolve(context.Background(), Event{})

	require.False(t, sess.SignedIn())
	require.Nil(t, sess.User)
	require.Equal(t, domain.RoleUnknown, sess.Role)
}

func TestResolveExistingProfile(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{profile: &domain.Profile{ID: "u-alice", Role: domain.RoleAdmin}}
	cache := newFakeCache()
	resolver := NewResolver(profiles, cache, zap.NewNop())

	sess := resolver.Resolve(context.Background(), Event{User: alice()})

	require.True(t, sess.SignedIn())
	require.Equal(t, domain.RoleAdmin, sess.Role)
	require.Empty(t, profiles.created, "no insert when profile exists")
	require.Equal(t, domain.RoleAdmin, cache.sets["u-alice"], "role written through to cache")
}

func TestResolveProvisionsMissingProfile(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{getErr: pgx.ErrNoRows}
	cache := newFakeCache()
	resolver := NewResolver(profiles, cache, zap.NewNop())

	sess := resolver.Resolve(context.Background(), Event{User: alice()})

	require.Equal(t, domain.RoleAgent, sess.Role)
	require.Len(t, profiles.created, 1)
	require.Equal(t, "u-alice", profiles.created[0].ID)
	require.Equal(t, "alice@example.com", profiles.created[0].Email)
	require.Equal(t, domain.RoleAgent, profiles.created[0].Role)
	require.Equal(t, domain.RoleAgent, cache.sets["u-alice"])
}

func TestResolveSwallowsProvisionFailure(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{getErr: pgx.ErrNoRows, createErr: errors.New("permission denied")}
	resolver := NewResolver(profiles, newFakeCache(), zap.NewNop())

	sess := resolver.Resolve(context.Background(), Event{User: alice()})

	// The session still reports agent locally even though the remote
	// insert failed.
	require.Equal(t, domain.RoleAgent, sess.Role)
}

func TestResolveLookupErrorYieldsUnknownRole(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{getErr: errors.New("connection reset")}
	cache := newFakeCache()
	resolver := NewResolver(profiles, cache, zap.NewNop())

	sess := resolver.Resolve(context.Background(), Event{User: alice()})

	require.True(t, sess.SignedIn())
	require.Equal(t, domain.RoleUnknown, sess.Role)
	require.Empty(t, profiles.created)
	require.Empty(t, cache.sets, "unknown role never cached")
	require.Equal(t, domain.RoleAgent, sess.Role.OrAgent())
}

func TestResolveToleratesCacheFailure(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{profile: &domain.Profile{ID: "u-alice", Role: domain.RoleAgent}}
	cache := newFakeCache()
	cache.setErr = errors.New("redis down")
	resolver := NewResolver(profiles, cache, zap.NewNop())

	sess := resolver.Resolve(context.Background(), Event{User: alice()})
	require.Equal(t, domain.RoleAgent, sess.Role)
}

func TestWatchResolvesAuthTransitions(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{profile: &domain.Profile{ID: "u-alice", Role: domain.RoleAdmin}}
	resolver := NewResolver(profiles, newFakeCache(), zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()

	var seen []Session
	unwatch := resolver.Watch(dispatcher, func(sess Session) {
		seen = append(seen, sess)
	})

	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventSignedIn,
		Payload: events.AuthChangedPayload{User: alice()},
	}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventSignedOut,
		Payload: events.AuthChangedPayload{},
	}))

	require.Len(t, seen, 2)
	require.Equal(t, domain.RoleAdmin, seen[0].Role)
	require.False(t, seen[1].SignedIn())

	unwatch()
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventSignedIn,
		Payload: events.AuthChangedPayload{User: alice()},
	}))
	require.Len(t, seen, 2, "no callbacks after unsubscribe")
}
