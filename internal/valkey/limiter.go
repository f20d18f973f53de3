// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package valkey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces the rate limiter's sorted sets.
const KeyPrefix = "ratelimit:"

// slidingWindow keeps one sorted set per client, scored by hit time in
// milliseconds. It drops hits older than the window, then either records
// the new hit or reports how long until the oldest one expires.
var slidingWindow = redis.NewScript(`
local key    = KEYS[1]
local now    = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit  = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  return {0, tonumber(oldest[2]) + window - now}
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return {1, 0}
`)

// Limiter is a sliding-window rate limiter whose state lives in Valkey.
type Limiter struct {
	client redis.Scripter
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter allows limit hits per window and key. A limit of zero or less
// allows everything.
func NewLimiter(client redis.Scripter, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window, now: time.Now}
}

// Allow records a hit for key. When the window is full it returns false and
// the time until a slot frees up.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}

	now := l.now().UnixMilli()
	res, err := slidingWindow.Run(ctx, l.client,
		[]string{KeyPrefix + key},
		now, l.window.Milliseconds(), l.limit, fmt.Sprintf("%d-%s", now, uuid.NewString()),
	).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("rate limit %s: unexpected reply %v", key, res)
	}
	return res[0] == 1, time.Duration(res[1]) * time.Millisecond, nil
}
