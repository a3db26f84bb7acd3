package registry

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// CachedLookup puts a Cache in front of another Lookup. Found records and,
// when NegativeTTL is set, ErrNotFound answers are cached. Concurrent misses
// for the same correlative share one upstream call. Cache failures are logged
// and bypassed.
type CachedLookup struct {
	next          Lookup
	cache         Cache
	ttl           time.Duration
	negativeTTL   time.Duration
	flightTimeout time.Duration
	group         singleflight.Group
	log           *slog.Logger
	metrics       *Metrics
}

// CacheOption configures a CachedLookup.
type CacheOption func(*CachedLookup)

// WithTTL sets the lifetime of cached records. Default 10m.
func WithTTL(d time.Duration) CacheOption {
	return func(c *CachedLookup) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithNegativeTTL caches "not found" answers for d. Zero disables negative caching.
func WithNegativeTTL(d time.Duration) CacheOption {
	return func(c *CachedLookup) {
		if d >= 0 {
			c.negativeTTL = d
		}
	}
}

// WithFlightTimeout bounds a shared upstream call. Default 10s.
func WithFlightTimeout(d time.Duration) CacheOption {
	return func(c *CachedLookup) {
		if d > 0 {
			c.flightTimeout = d
		}
	}
}

func WithCacheLogger(log *slog.Logger) CacheOption {
	return func(c *CachedLookup) {
		if log != nil {
			c.log = log
		}
	}
}

func WithCacheMetrics(m *Metrics) CacheOption {
	return func(c *CachedLookup) { c.metrics = m }
}

func NewCachedLookup(next Lookup, cache Cache, opts ...CacheOption) *CachedLookup {
	c := &CachedLookup{
		next:          next,
		cache:         cache,
		ttl:           10 * time.Minute,
		flightTimeout: 10 * time.Second,
		log:           logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CachedLookup) Lookup(ctx context.Context, r rut.RUT) (Record, error) {
	key := strconv.Itoa(r.Correlative())

	entry, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.IncCache("error")
		c.log.WarnContext(ctx, "registry cache read failed", logger.RUT(r), logger.Error(err))
	case ok && entry.Missing:
		c.metrics.IncCache("negative_hit")
		return Record{}, ErrNotFound
	case ok:
		c.metrics.IncCache("hit")
		return entry.Record, nil
	default:
		c.metrics.IncCache("miss")
	}

	// The shared call must not die with whichever caller started it.
	ch := c.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		defer cancel()
		return c.fetch(fctx, key, r)
	})

	select {
	case <-ctx.Done():
		return Record{}, errors.Join(ErrRegistryUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return Record{}, res.Err
		}
		return res.Val.(Record), nil
	}
}

func (c *CachedLookup) fetch(ctx context.Context, key string, r rut.RUT) (Record, error) {
	rec, err := c.next.Lookup(ctx, r)
	switch {
	case errors.Is(err, ErrNotFound):
		if c.negativeTTL > 0 {
			c.store(ctx, key, r, Entry{Missing: true}, c.negativeTTL)
		}
		return Record{}, err
	case err != nil:
		return Record{}, err
	}
	c.store(ctx, key, r, Entry{Record: rec}, c.ttl)
	return rec, nil
}

func (c *CachedLookup) store(ctx context.Context, key string, r rut.RUT, e Entry, ttl time.Duration) {
	if err := c.cache.Set(ctx, key, e, ttl); err != nil {
		c.metrics.IncCache("error")
		c.log.WarnContext(ctx, "registry cache write failed", logger.RUT(r), logger.Error(err))
	}
}
