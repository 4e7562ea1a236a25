// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nuukmedia/polarnews/internal/platform/constants"
)

// # Feed Cache

// Cache keys, one per served document.
const (
	CacheKeySitemapEN   = constants.RedisPrefixFeed + "sitemap-en"
	CacheKeySitemapDK   = constants.RedisPrefixFeed + "sitemap-dk"
	CacheKeySitemapKL   = constants.RedisPrefixFeed + "sitemap-kl"
	CacheKeySitemapNews = constants.RedisPrefixFeed + "sitemap-news"
)

// Cache keeps rendered sitemap documents in Redis so crawler traffic does
// not hit Postgres on every fetch. Misses and Redis failures are both
// treated as a miss; the documents are cheap to rebuild.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    constants.FeedCacheTTL,
		logger: logger,
	}
}

// Get returns the cached document for the key, or nil on a miss.
func (cache *Cache) Get(ctx context.Context, key string) []byte {
	body, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("feed_cache_get_failed", "key", key, "error", err)
		}
		return nil
	}

	return body
}

// Set stores a rendered document under the key. Failures are logged and
// swallowed; serving the response matters more than caching it.
func (cache *Cache) Set(ctx context.Context, key string, body []byte) {
	if err := cache.client.Set(ctx, key, body, cache.ttl).Err(); err != nil {
		cache.logger.Warn("feed_cache_set_failed", "key", key, "error", err)
	}
}

// Invalidate drops every cached document. Called after article mutations
// so the next fetch re-renders.
func (cache *Cache) Invalidate(ctx context.Context) {
	keys := []string{
		CacheKeySitemapEN,
		CacheKeySitemapDK,
		CacheKeySitemapKL,
		CacheKeySitemapNews,
	}

	if err := cache.client.Del(ctx, keys...).Err(); err != nil {
		cache.logger.Warn("feed_cache_invalidate_failed", "error", err)
	}
}
