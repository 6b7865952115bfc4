package cache

import (
	"strings"

	"channel-crawler-go/internal/config"
)

// NewFromConfig returns nil when caching is disabled; callers treat a nil
// cache as a miss on every lookup.
func NewFromConfig(cfg config.Config) Cache {
	backend := strings.ToLower(strings.TrimSpace(cfg.CacheBackend))
	switch backend {
	case "memory":
		return NewMemoryCache()
	case "redis":
		addr := strings.TrimSpace(cfg.RedisAddr)
		if addr == "" {
			return NewMemoryCache()
		}
		rc, err := NewRedisCache(RedisOptions{
			Addr:     addr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisKeyPrefix,
		})
		if err != nil {
			return NewMemoryCache()
		}
		return rc
	default:
		return nil
	}
}
