package redis

import (
	"context"
	"encoding/json"
	"time"

	"voice-srv/internal/platform/repository"
	"voice-srv/pkg/log"
	pkgRedis "voice-srv/pkg/redis"
)

const (
	configCachePrefix = "voice:platform:"
	configCacheTTL    = 15 * time.Minute
)

type implConfigCache struct {
	l     log.Logger
	redis pkgRedis.IRedis
	inner repository.ConfigRepository
}

var _ repository.ConfigRepository = &implConfigCache{}

// NewConfigCache wraps a config repository with a Redis read-through cache.
func NewConfigCache(l log.Logger, redis pkgRedis.IRedis, inner repository.ConfigRepository) repository.ConfigRepository {
	return &implConfigCache{l: l, redis: redis, inner: inner}
}

// GetConfig serves from cache when possible; cache failures fall through to
// the inner repository.
func (r *implConfigCache) GetConfig(ctx context.Context, name string) (map[string]any, error) {
	key := configCachePrefix + name

	if cached, err := r.redis.Get(ctx, key); err == nil {
		var config map[string]any
		if err := json.Unmarshal([]byte(cached), &config); err == nil {
			return config, nil
		}
		r.l.Warnf(ctx, "platform.repository.redis.GetConfig: corrupt cache entry for %s, dropping", name)
		if err := r.redis.Delete(ctx, key); err != nil {
			r.l.Warnf(ctx, "platform.repository.redis.GetConfig: drop cache entry: %v", err)
		}
	}

	config, err := r.inner.GetConfig(ctx, name)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(config); err == nil {
		if err := r.redis.Set(ctx, key, string(data), configCacheTTL); err != nil {
			r.l.Warnf(ctx, "platform.repository.redis.GetConfig: fill cache: %v", err)
		}
	}
	return config, nil
}
