package redis

import (
	"context"
	"encoding/json"
	"time"

	"voice-srv/internal/analysis/repository"
	"voice-srv/internal/model"
	"voice-srv/pkg/log"
	pkgRedis "voice-srv/pkg/redis"
)

const (
	profileCacheKey = "voice:profile"
	profileCacheTTL = time.Hour
)

type implProfileCache struct {
	l     log.Logger
	redis pkgRedis.IRedis
	inner repository.ProfileRepository
}

var _ repository.ProfileRepository = &implProfileCache{}

// NewProfileCache wraps a profile repository with a Redis read-through cache.
// The cache entry is dropped on every save.
func NewProfileCache(l log.Logger, redis pkgRedis.IRedis, inner repository.ProfileRepository) repository.ProfileRepository {
	return &implProfileCache{l: l, redis: redis, inner: inner}
}

// Save writes through to the inner repository and invalidates the cache.
func (r *implProfileCache) Save(ctx context.Context, profile model.VoiceProfile) error {
	if err := r.inner.Save(ctx, profile); err != nil {
		return err
	}
	if err := r.redis.Delete(ctx, profileCacheKey); err != nil {
		r.l.Warnf(ctx, "analysis.repository.redis.Save: invalidate cache: %v", err)
	}
	return nil
}

// Load serves from cache when possible. Cache failures fall through to the
// inner repository; the cache never makes a load fail.
func (r *implProfileCache) Load(ctx context.Context) (model.VoiceProfile, error) {
	if cached, err := r.redis.Get(ctx, profileCacheKey); err == nil {
		var profile model.VoiceProfile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return profile, nil
		}
		r.l.Warnf(ctx, "analysis.repository.redis.Load: corrupt cache entry, dropping")
		if err := r.redis.Delete(ctx, profileCacheKey); err != nil {
			r.l.Warnf(ctx, "analysis.repository.redis.Load: drop cache entry: %v", err)
		}
	}

	profile, err := r.inner.Load(ctx)
	if err != nil {
		return model.VoiceProfile{}, err
	}

	if data, err := json.Marshal(profile); err == nil {
		if err := r.redis.Set(ctx, profileCacheKey, string(data), profileCacheTTL); err != nil {
			r.l.Warnf(ctx, "analysis.repository.redis.Load: fill cache: %v", err)
		}
	}
	return profile, nil
}
