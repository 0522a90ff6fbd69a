package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/events"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

// Event is one observation of the authentication state. A nil User
// means signed out.
type Event struct {
	User *domain.User
}

// Session is the resolved (user, role) pair. Role is RoleUnknown when
// the profile lookup failed for a reason other than a missing row;
// callers display it as agent but must not persist it.
type Session struct {
	User *domain.User
	Role domain.Role
}

// SignedIn reports whether the session carries an authenticated user.
func (s Session) SignedIn() bool {
	return s.User != nil
}

// RoleCache is the persistent key-value slot holding the last-resolved
// role per user. It is write-through and never authoritative.
type RoleCache interface {
	GetRole(ctx context.Context, userID string) (domain.Role, error)
	SetRole(ctx context.Context, userID string, role domain.Role) error
}

// Resolver turns authentication events into sessions, provisioning a
// default agent profile on first sight of a user.
type Resolver struct {
	profiles repository.ProfileRepository
	cache    RoleCache
	logger   *zap.Logger
}

// NewResolver constructs the resolver. cache may be nil.
func NewResolver(profiles repository.ProfileRepository, cache RoleCache, logger *zap.Logger) *Resolver {
	return &Resolver{profiles: profiles, cache: cache, logger: logger}
}

// Resolve maps an auth event to a session.
//
// Profile found: the stored role is returned unchanged. Missing row:
// an agent profile is inserted; insert failure is swallowed and the
// session still reports agent locally, so remote state may lag until
// the next resolution. Any other lookup error yields RoleUnknown. The
// asymmetry between the last two branches mirrors the upstream client
// behavior on purpose.
func (r *Resolver) Resolve(ctx context.Context, ev Event) Session {
	if ev.User == nil {
		return Session{}
	}
	user := ev.User

	profile, err := r.profiles.GetByID(ctx, user.ID)
	if err == nil {
		r.cacheRole(ctx, user.ID, profile.Role)
		return Session{User: user, Role: profile.Role}
	}

	if apperrors.IsNotFound(err) {
		fresh := &domain.Profile{ID: user.ID, Email: user.Email, Role: domain.RoleAgent}
		if insertErr := r.profiles.Create(ctx, fresh); insertErr != nil {
			r.logger.Warn("profile provisioning failed",
				zap.String("user_id", user.ID), zap.Error(insertErr))
		}
		r.cacheRole(ctx, user.ID, domain.RoleAgent)
		return Session{User: user, Role: domain.RoleAgent}
	}

	r.logger.Error("profile lookup failed",
		zap.String("user_id", user.ID), zap.Error(err))
	return Session{User: user, Role: domain.RoleUnknown}
}

// Watch subscribes the resolver to the auth event stream and invokes
// onChange with each resolved session. The returned Unsubscribe
// releases both subscriptions.
func (r *Resolver) Watch(dispatcher events.Dispatcher, onChange func(Session)) events.Unsubscribe {
	handler := func(ctx context.Context, ev events.Event) error {
		payload, ok := ev.Payload.(events.AuthChangedPayload)
		if !ok {
			return nil
		}
		onChange(r.Resolve(ctx, Event{User: payload.User}))
		return nil
	}

	offIn := r.dispatcherSubscribe(dispatcher, events.EventSignedIn, handler)
	offOut := r.dispatcherSubscribe(dispatcher, events.EventSignedOut, handler)
	return func() {
		offIn()
		offOut()
	}
}

func (r *Resolver) dispatcherSubscribe(d events.Dispatcher, t events.EventType, h events.EventHandler) events.Unsubscribe {
	if d == nil {
		return func() {}
	}
	return d.Subscribe(t, h)
}

func (r *Resolver) cacheRole(ctx context.Context, userID string, role domain.Role) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetRole(ctx, userID, role); err != nil {
		r.logger.Warn("role cache write failed",
			zap.String("user_id", userID), zap.Error(err))
	}
}
