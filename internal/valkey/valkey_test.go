// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package valkey

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a client on DB 15. Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnect(t *testing.T) {
	client, err := Connect(context.Background(), envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379"), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Errorf("ping after Connect: %v", err)
	}
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect(context.Background(), "127.0.0.1", "1", "")
	if err == nil {
		t.Error("expected error for unreachable server")
	}
}

func TestLimiterDisabled(t *testing.T) {
	// A zero limit never touches the client.
	l := NewLimiter(nil, 0, time.Minute)
	ok, _, err := l.Allow(context.Background(), "anyone")
	if err != nil || !ok {
		t.Errorf("Allow = %v, %v; want true, nil", ok, err)
	}
}

func TestLimiterSlidingWindow(t *testing.T) {
	client := testValkeyClient(t)
	ctx := context.Background()
	key := "test-" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, KeyPrefix+key) })

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLimiter(client, 2, 10*time.Second)
	l.now = func() time.Time { return clock }

	for i := range 2 {
		ok, _, err := l.Allow(ctx, key)
		if err != nil || !ok {
			t.Fatalf("hit %d: Allow = %v, %v", i+1, ok, err)
		}
		clock = clock.Add(4 * time.Second)
	}

	// Hits at 0s and 4s; now 8s.
	ok, wait, err := l.Allow(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("third hit inside the window should be rejected")
	}
	if wait != 2*time.Second {
		t.Errorf("wait = %v, want 2s", wait)
	}

	clock = clock.Add(2 * time.Second)
	if ok, _, _ := l.Allow(ctx, key); !ok {
		t.Error("hit should be allowed once the oldest expires")
	}

	ttl, err := client.PTTL(ctx, KeyPrefix+key).Result()
	if err != nil || ttl <= 0 || ttl > 10*time.Second {
		t.Errorf("key TTL = %v, %v; want within the window", ttl, err)
	}
}

func TestLimiterSeparateKeys(t *testing.T) {
	client := testValkeyClient(t)
	ctx := context.Background()
	a, b := "test-"+uuid.NewString(), "test-"+uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, KeyPrefix+a, KeyPrefix+b) })

	l := NewLimiter(client, 1, time.Minute)
	if ok, _, _ := l.Allow(ctx, a); !ok {
		t.Fatal("first hit for a should pass")
	}
	if ok, _, _ := l.Allow(ctx, a); ok {
		t.Error("second hit for a should be rejected")
	}
	if ok, _, _ := l.Allow(ctx, b); !ok {
		t.Error("b has its own window")
	}
}
