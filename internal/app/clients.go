package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mindease/mindease-backend/internal/platform/inference"
	"github.com/mindease/mindease-backend/internal/platform/logger"
	"github.com/mindease/mindease-backend/internal/platform/ratelimit"
)

type Clients struct {
	Inference inference.Client
	Redis     *goredis.Client
	Limiter   *ratelimit.Limiter
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	gen, err := inference.New(ctx, log, cfg.Inference)
	if err != nil {
		return Clients{}, fmt.Errorf("init inference client: %w", err)
	}

	// Redis is optional; without it AI calls are not rate limited.
	var (
		rdb     *goredis.Client
		limiter *ratelimit.Limiter
	)
	if cfg.RedisAddr != "" {
		rdb, err = ratelimit.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, chat inference is not rate limited", "error", err)
		} else {
			limiter = ratelimit.New(log, rdb, "mindease:chat-ai", cfg.ChatRatePerMinute, time.Minute)
		}
	}

	return Clients{
		Inference: gen,
		Redis:     rdb,
		Limiter:   limiter,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
