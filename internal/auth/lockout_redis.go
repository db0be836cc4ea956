package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisKeyPrefix = "gofolio:lockout:"

// RedisTracker is a Tracker backed by a shared redis instance, for
// deployments running more than one server process. Failure timestamps live
// in a sorted set per identifier, scored by unix nanoseconds, pruned to the
// same sliding "now minus LockoutDuration" cutoff as the in-memory tracker.
//
// Redis errors fail open: an unreachable cache must not lock the admin out
// of their own site.
type RedisTracker struct {
	client *redis.Client
	now    timeNow
}

// NewRedisTracker creates a RedisTracker from a redis URL
// (redis://[user:pass@]host:port/db).
func NewRedisTracker(url string) (*RedisTracker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &RedisTracker{
		client: redis.NewClient(opts),
		now:    time.Now,
	}, nil
}

// IsLocked prunes stale failures and reports whether the identifier is
// currently locked out.
func (t *RedisTracker) IsLocked(id string) bool {
	ctx, cancel := t.ctx()
	defer cancel()

	key := redisKeyPrefix + id
	cutoff := t.now().Add(-LockoutDuration).UnixNano()

	if err := t.client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		log.Error().Err(err).Msg("lockout: redis prune failed")
		return false
	}

	count, err := t.client.ZCard(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Msg("lockout: redis count failed")
		return false
	}

	return count >= FailureThreshold
}

// RecordFailure appends a failure timestamp for the identifier.
func (t *RedisTracker) RecordFailure(id string) {
	ctx, cancel := t.ctx()
	defer cancel()

	key := redisKeyPrefix + id
	now := t.now().UnixNano()

	pipe := t.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: strconv.FormatInt(now, 10)})
	// key expiry bounds storage even for identifiers never checked again
	pipe.Expire(ctx, key, LockoutDuration)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Msg("lockout: redis record failed")
	}
}

// Clear discards all recorded failures for the identifier.
func (t *RedisTracker) Clear(id string) {
	ctx, cancel := t.ctx()
	defer cancel()

	if err := t.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		log.Error().Err(err).Msg("lockout: redis clear failed")
	}
}

func (t *RedisTracker) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
