package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mobdesk/helpdesk-core/internal/config"
	"github.com/mobdesk/helpdesk-core/internal/domain"
)

const roleKeyPrefix = "userRole:"

// Redis wraps the go-redis client. It backs the persistent key-value
// slot that caches the last-resolved role per user; the profiles table
// stays authoritative.
type Redis struct {
	Client  *redis.Client
	roleTTL time.Duration
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client, roleTTL: cfg.RoleTTL()}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// GetRole reads the cached role for a user. A missing key returns
// RoleUnknown with no error.
func (r *Redis) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	if r == nil || r.Client == nil {
		return domain.RoleUnknown, errors.New("redis client not configured")
	}
	val, err := r.Client.Get(ctx, roleKeyPrefix+userID).Result()
	if err == redis.Nil {
		return domain.RoleUnknown, nil
	}
	if err != nil {
		return domain.RoleUnknown, err
	}
	return domain.Role(val), nil
}

// SetRole writes through the resolved role for a user.
func (r *Redis) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Set(ctx, roleKeyPrefix+userID, string(role), r.roleTTL).Err()
}
