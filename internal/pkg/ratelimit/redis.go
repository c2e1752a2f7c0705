package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Limiter backed by a shared Redis instance, for deployments
// where login limits must hold across replicas.
// Key format: login_attempt:<identifier>, expiring after the window.
type Redis struct {
	client *redis.Client
	window time.Duration
}

// NewRedis returns a Redis limiter. A non-positive window falls back to
// DefaultWindow.
func NewRedis(client *redis.Client, window time.Duration) *Redis {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Redis{client: client, window: window}
}

// Attempt allows the call iff no key exists for the identifier. SET NX with
// expiry makes the check-and-record atomic, so two concurrent attempts for
// the same identifier cannot both be accepted inside one window.
func (r *Redis) Attempt(ctx context.Context, identifier string) (Result, error) {
	ok, err := r.client.SetNX(ctx, r.key(identifier), time.Now().Unix(), r.window).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit attempt: %w", err)
	}
	if ok {
		return Result{Allowed: true}, nil
	}

	ttl, err := r.client.PTTL(ctx, r.key(identifier)).Result()
	if err != nil || ttl <= 0 {
		// Key expired between SETNX and PTTL; the shortest honest answer.
		return Result{RetryAfterSeconds: 1}, nil
	}
	return Result{RetryAfterSeconds: ceilSeconds(ttl)}, nil
}

func (r *Redis) key(identifier string) string {
	return "login_attempt:" + identifier
}
