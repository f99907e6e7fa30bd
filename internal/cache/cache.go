package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cache 為健康檢查所需的 Redis 操作
type Cache interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	PingFn  func(ctx context.Context) *redis.StatusCmd
	CloseFn func() error
}

// Ping 執行 Fake 設定或 panic
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
