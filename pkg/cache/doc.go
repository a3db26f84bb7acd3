// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// It backs the in-process registry lookup cache: entries are bounded by
// capacity (least recently used are evicted first) and by age (WithTTL or
// PutWithTTL), so stale registry answers are never served forever.
//
// # Usage
//
//	c := cache.NewLRUCache[string, Record](10_000, cache.WithTTL(time.Hour))
//	c.Put("12345678-5", rec)
//	c.PutWithTTL("1-9", notFound, 5*time.Minute)
//
//	if rec, ok := c.Get("12345678-5"); ok {
//	    // fresh hit
//	}
//
// WithClock injects a time source for deterministic tests. All operations are
// O(1) and guarded by a single mutex.
package cache
