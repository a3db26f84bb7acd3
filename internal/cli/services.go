package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/rutkit/pkg/config"
	"github.com/dmitrymomot/rutkit/pkg/pg"
	"github.com/dmitrymomot/rutkit/pkg/redis"
	"github.com/dmitrymomot/rutkit/pkg/registry"
)

// Registry sources and caches selectable with --source and --cache.
const (
	sourceNone     = "none"
	sourceHTTP     = "http"
	sourcePostgres = "postgres"

	cacheNone   = "none"
	cacheMemory = "memory"
	cacheRedis  = "redis"
)

var errUnknownOption = errors.New("unknown option")

// metrics is set by commands that export Prometheus metrics; nil records nothing.
var metrics *registry.Metrics

// registryBackend is a configured lookup plus what must be released afterwards.
type registryBackend struct {
	lookup registry.Lookup
	config registry.Config
	health map[string]func(context.Context) error
	close  func()
}

// openRegistry builds the lookup selected by source and cacheKind from the
// environment. It is a variable so tests can replace the backends.
var openRegistry = func(ctx context.Context, source, cacheKind string) (*registryBackend, error) {
	var cfg registry.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	b := &registryBackend{config: cfg, health: map[string]func(context.Context) error{}, close: func() {}}
	closers := []func(){}
	b.close = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch source {
	case sourceHTTP:
		if cfg.URL == "" {
			return nil, errors.New("RUT_REGISTRY_URL is not set")
		}
		b.lookup = registry.NewHTTPLookupFromConfig(cfg)
	case sourcePostgres:
		pool, _, err := connectPostgres(ctx)
		if err != nil {
			return nil, err
		}
		closers = append(closers, pool.Close)
		b.lookup = registry.NewPostgresLookup(pool)
		b.health[sourcePostgres] = pg.Healthcheck(pool)
	default:
		return nil, fmt.Errorf("%w: source %q", errUnknownOption, source)
	}

	var cache registry.Cache
	switch cacheKind {
	case cacheNone, "":
	case cacheMemory:
		cache = registry.NewMemoryCache(cfg.CacheSize)
	case cacheRedis:
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			b.close()
			return nil, err
		}
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			b.close()
			return nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		cache = registry.NewRedisCache(client)
		b.health[cacheRedis] = redis.Healthcheck(client)
	default:
		b.close()
		return nil, fmt.Errorf("%w: cache %q", errUnknownOption, cacheKind)
	}

	if cache != nil {
		opts := append(cfg.CacheOptions(), registry.WithCacheLogger(log), registry.WithCacheMetrics(metrics))
		b.lookup = registry.NewCachedLookup(b.lookup, cache, opts...)
	}
	return b, nil
}

func connectPostgres(ctx context.Context) (*pgxpool.Pool, pg.Config, error) {
	var cfg pg.Config
	if err := config.Load(&cfg); err != nil {
		return nil, cfg, err
	}
	pool, err := pg.Connect(ctx, cfg)
	return pool, cfg, err
}
