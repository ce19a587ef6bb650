package state

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a state store backed by Redis. Expiration is delegated to Redis
// TTLs, and GETDEL makes Consume a single atomic operation, so the store is
// safe to share across multiple application instances.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// RedisOption configures the Redis state store.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix:     "oauth_state",
		defaultTTL: 5 * time.Minute,
	}
}

// WithRedisDefaultTTL sets the expiration applied when Save is called with
// a zero TTL. Default: 5 minutes.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		if d > 0 {
			o.defaultTTL = d
		}
	}
}

// WithPrefix sets the key prefix for all operations. Keys are stored as
// "{prefix}:{token}". Default: "oauth_state".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

// NewRedis creates a new Redis-backed state store.
// The client lifecycle is managed by the caller.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Redis{
		client: client,
		opts:   o,
	}
}

// Save stores a token with the given TTL.
func (r *Redis) Save(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.opts.defaultTTL
	}
	return r.client.Set(ctx, r.key(token), "1", ttl).Err()
}

// Consume validates and removes a token atomically via GETDEL.
// Returns ErrNotFound if the token is absent, expired, or already consumed.
func (r *Redis) Consume(ctx context.Context, token string) error {
	if err := r.client.GetDel(ctx, r.key(token)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Close is a no-op for Redis. The client lifecycle is managed separately
// by the caller.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) key(token string) string {
	if r.opts.prefix == "" {
		return token
	}
	return r.opts.prefix + ":" + token
}
