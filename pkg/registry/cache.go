package registry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/rutkit/pkg/cache"
)

// Entry is a cached lookup answer. Missing marks a cached ErrNotFound.
type Entry struct {
	Record  Record `json:"record"`
	Missing bool   `json:"missing,omitempty"`
}

// Cache stores lookup answers keyed by correlative.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry, ttl time.Duration) error
}

// MemoryCache is a process-local Cache on top of a TTL-aware LRU.
type MemoryCache struct {
	lru *cache.LRUCache[string, Entry]
}

// NewMemoryCache holds at most size entries. Non-positive sizes fall back to 1024.
func NewMemoryCache(size int, opts ...cache.Option) *MemoryCache {
	if size <= 0 {
		size = 1024
	}
	return &MemoryCache{lru: cache.NewLRUCache[string, Entry](size, opts...)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (Entry, bool, error) {
	e, ok := c.lru.Get(key)
	return e, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, e Entry, ttl time.Duration) error {
	c.lru.PutWithTTL(key, e, ttl)
	return nil
}

// Len reports the number of stored entries, expired ones included until touched.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

const defaultRedisPrefix = "rut:registry:"

// RedisCache shares lookup answers between processes. Entries are JSON encoded.
type RedisCache struct {
	client goredis.UniversalClient
	prefix string
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithKeyPrefix replaces the default "rut:registry:" key prefix.
func WithKeyPrefix(prefix string) RedisCacheOption {
	return func(c *RedisCache) { c.prefix = prefix }
}

func NewRedisCache(client goredis.UniversalClient, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{client: client, prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) Get(ctx context.Context, key string) (Entry, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, false, errors.Join(ErrBadResponse, err)
	}
	return e, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}
