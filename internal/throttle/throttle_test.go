package throttle

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestAllowWithinLimit(t *testing.T) {
	l := NewLimiter(setupRedis(t), 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !l.Allow(ctx, "ses") {
			t.Fatalf("send %d should be allowed", i+1)
		}
	}
	if l.Allow(ctx, "ses") {
		t.Error("fourth send in the window should be throttled")
	}
}

func TestProvidersAreIndependent(t *testing.T) {
	l := NewLimiter(setupRedis(t), 1)
	ctx := context.Background()

	if !l.Allow(ctx, "ses") {
		t.Fatal("first ses send should be allowed")
	}
	if !l.Allow(ctx, "sparkpost") {
		t.Error("other providers get their own window")
	}
}

func TestNilRedisDisablesThrottling(t *testing.T) {
	l := NewLimiter(nil, 1)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if !l.Allow(ctx, "ses") {
			t.Fatal("nil redis must never throttle")
		}
	}
}

func TestZeroRateDisablesThrottling(t *testing.T) {
	l := NewLimiter(setupRedis(t), 0)
	if !l.Allow(context.Background(), "ses") {
		t.Fatal("zero rate means unlimited")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	l := NewLimiter(setupRedis(t), 1)
	ctx := context.Background()

	if err := l.Wait(ctx, "ses"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := l.Wait(cancelled, "ses"); err == nil {
		t.Error("wait on an exhausted window with a cancelled context should fail")
	}
}
