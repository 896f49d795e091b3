package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/platform/config"
)

const pingTimeout = 5 * time.Second

// NewClient は Redis へ接続し、Ping で疎通を確認します。
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}

	if logger != nil {
		logger.Info("redis connected", zap.String("addr", cfg.Addr), zap.String("stream", cfg.Stream))
	}
	return rdb, nil
}
