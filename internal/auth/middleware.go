package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/mobdesk/helpdesk-core/internal/domain"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	"github.com/mobdesk/helpdesk-core/internal/session"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

const sessionKey = "auth_session"

// Middleware validates bearer tokens and resolves the session. Each
// request is one auth observation, so role resolution (including lazy
// profile provisioning) runs here.
type Middleware struct {
	tokens   *TokenManager
	users    repository.UserRepository
	resolver *session.Resolver
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, resolver *session.Resolver) *Middleware {
	return &Middleware{tokens: tokens, users: users, resolver: resolver}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}

	sess := m.resolver.Resolve(c.Context(), session.Event{User: user})
	c.Locals(sessionKey, sess)
	return c.Next()
}

// SessionFromContext retrieves the resolved session.
func SessionFromContext(c *fiber.Ctx) (session.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return session.Session{}, false
	}
	sess, ok := val.(session.Session)
	if !ok || !sess.SignedIn() {
		return session.Session{}, false
	}
	return sess, true
}

// RequireAdmin gates a route on the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if sess.Role != domain.RoleAdmin {
			return apperrors.NewDomainError("FORBIDDEN", "admin role required", fiber.StatusForbidden, nil)
		}
		return c.Next()
	}
}
