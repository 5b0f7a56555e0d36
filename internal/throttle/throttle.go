// Package throttle rate-limits outbound campaign sends with a Redis
// fixed-window counter.
package throttle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter caps sends per minute across server instances. A nil Redis
// client or a zero limit disables throttling entirely, so the campaign
// dispatcher can run without Redis in development.
type Limiter struct {
	redis         *redis.Client
	ratePerMinute int
}

// NewLimiter creates a limiter. Pass a nil client to disable.
func NewLimiter(redisClient *redis.Client, ratePerMinute int) *Limiter {
	return &Limiter{redis: redisClient, ratePerMinute: ratePerMinute}
}

// Allow reports whether one more send fits in the current minute window
// and reserves the slot if so. Redis errors fail open: a broken throttle
// must not stop a campaign.
func (l *Limiter) Allow(ctx context.Context, provider string) bool {
	if l.redis == nil || l.ratePerMinute <= 0 {
		return true
	}

	key := fmt.Sprintf("throttle:%s:%s", provider, time.Now().UTC().Format("200601021504"))

	n, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("[throttle] redis error, failing open: %v", err)
		return true
	}
	if n == 1 {
		l.redis.Expire(ctx, key, 2*time.Minute)
	}

	return n <= int64(l.ratePerMinute)
}

// Wait blocks until a send slot is available or the context is done.
func (l *Limiter) Wait(ctx context.Context, provider string) error {
	for {
		if l.Allow(ctx, provider) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
