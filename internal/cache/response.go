package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix is the Valkey key prefix for cached API responses.
	keyPrefix = "api:"

	// DefaultResponseTTL is how long a serialized response stays cached.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache stores serialized JSON response bodies in Valkey, keyed by
// route. A nil *ResponseCache is a valid no-op cache, so handlers never have
// to branch on whether Valkey is configured.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached response body. Returns false on miss, on error, or
// on a nil cache.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores a response body under the given key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, keyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached response. Content is immutable for the
// in-memory driver, but the Postgres driver can grow new records.
func (rc *ResponseCache) Invalidate(ctx context.Context, key string) {
	if rc == nil {
		return
	}
	if err := rc.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		slog.Warn("response cache invalidate error", "key", key, "error", err)
	}
}

// BlogListKey returns the cache key for the blog listing.
func BlogListKey() string {
	return "blog"
}

// BlogPostKey returns the cache key for a single blog post.
func BlogPostKey(slug string) string {
	return "blog:" + slug
}

// CaseStudyListKey returns the cache key for a case-study listing with the
// given category filter ("" and "all" share an entry at the handler level).
func CaseStudyListKey(category string) string {
	return "case-studies:" + category
}

// CaseStudyKey returns the cache key for a single case study.
func CaseStudyKey(slug string) string {
	return "case-study:" + slug
}
