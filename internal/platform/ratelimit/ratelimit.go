// Package ratelimit implements a Redis fixed-window counter.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mindease/mindease-backend/internal/platform/logger"
)

// Connect dials addr and verifies it with PING.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

type Limiter struct {
	log    *logger.Logger
	rdb    goredis.Cmdable
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// New allows limit hits per key per window.
func New(log *logger.Logger, rdb goredis.Cmdable, prefix string, limit int, window time.Duration) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	if limit <= 0 {
		limit = 1
	}
	return &Limiter{
		log:    log.With("component", "RateLimiter", "prefix", prefix),
		rdb:    rdb,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Allow counts one hit for key and reports whether it fits in the window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	bucketKey := l.bucketKey(key, l.now())
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, bucketKey)
	pipe.Expire(ctx, bucketKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", bucketKey, err)
	}
	return incr.Val() <= l.limit, nil
}

func (l *Limiter) bucketKey(key string, now time.Time) string {
	bucket := now.UnixNano() / int64(l.window)
	return l.prefix + ":" + key + ":" + strconv.FormatInt(bucket, 10)
}
