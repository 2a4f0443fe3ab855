package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/stumped/internal/common/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	lockKeyPrefix = "lock:"

	defaultTTL   = 5 * time.Second
	defaultWait  = 2 * time.Second
	defaultRetry = 25 * time.Millisecond
)

// releaseScript deletes the lock only if it still carries our token, so a
// holder whose TTL lapsed cannot free a lock someone else now owns.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds configuration for the Redis locker
type RedisConfig struct {
	RedisClient *redis.Client

	// UUID generates lock tokens
	UUID uuid.UUID

	// TTL is how long a lock survives a crashed holder
	TTL time.Duration

	// Wait bounds how long Acquire retries
	Wait time.Duration

	// Retry is the pause between attempts
	Retry time.Duration

	Logger zerolog.Logger
}

type redisLocker struct {
	client *redis.Client
	uuid   uuid.UUID
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
	logger zerolog.Logger
}

// NewRedis creates a locker backed by SET NX PX
func NewRedis(cfg *RedisConfig) (*redisLocker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	l := &redisLocker{
		client: cfg.RedisClient,
		uuid:   cfg.UUID,
		ttl:    cfg.TTL,
		wait:   cfg.Wait,
		retry:  cfg.Retry,
		logger: cfg.Logger,
	}

	if l.uuid == nil {
		l.uuid = uuid.New()
	}
	if l.ttl <= 0 {
		l.ttl = defaultTTL
	}
	if l.wait <= 0 {
		l.wait = defaultWait
	}
	if l.retry <= 0 {
		l.retry = defaultRetry
	}

	return l, nil
}

// Acquire retries SET NX until it wins, the wait elapses or ctx ends
func (l *redisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := lockKeyPrefix + key
	token := l.uuid.NewUUID()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ErrLockTimeout
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ErrLockTimeout
		case <-ticker.C:
		}
	}

	return func() {
		// The caller's ctx may already be cancelled; release must still happen
		releaseCtx, cancel := context.WithTimeout(context.Background(), l.ttl)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{lockKey}, token).Err(); err != nil {
			l.logger.Warn().Err(err).Str("lock", key).Msg("failed to release lock")
		}
	}, nil
}
