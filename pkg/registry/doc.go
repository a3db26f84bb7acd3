// Package registry validates RUTs against an external registry.
//
// The core rut package only proves that a RUT is well formed and that its
// verifier matches the checksum. This package adds the question "does the
// registry know this person", exposed as a rut.Validator so it composes with
// rut.Chain:
//
//	lookup := registry.NewCachedLookup(
//	    registry.NewHTTPLookupFromConfig(cfg),
//	    registry.NewMemoryCache(cfg.CacheSize),
//	    cfg.CacheOptions()...,
//	)
//	chain := rut.NewChain(rut.ChecksumValidator{}, registry.NewValidator(lookup,
//	    registry.WithTimeout(cfg.Timeout),
//	    registry.WithLogger(log),
//	    registry.WithMetrics(registry.NewMetrics(prometheus.DefaultRegisterer)),
//	))
//	r, err := rut.ParseWith(ctx, input, chain)
//
// # Architecture
//
// Lookup is the backend contract. Three implementations are provided:
//
//   - HTTPLookup calls GET {base}/ruts/{rut} with an API key, a uuid request
//     id and client-side rate limiting.
//   - PostgresLookup reads the rut_registry table. Its schema ships as goose
//     migrations in Migrations.
//   - CachedLookup wraps another Lookup with a Cache (MemoryCache or
//     RedisCache), negative caching and duplicate suppression.
//
// # Error Handling
//
// Validator.Validate returns a *rut.InvalidError (matching
// rut.ErrInvalidIdentity) when the registry has no record, the record is
// inactive, or it carries a different verifier. Every other failure,
// timeouts included, matches ErrRegistryUnavailable and is never reported as
// acceptance. Callers decide whether to retry or surface it.
//
// RUTs are logged in the Hidden layout only.
package registry
