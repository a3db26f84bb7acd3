package registry

import (
	"net/http"
	"time"
)

// Config is the environment-driven registry setup used by cmd/rut.
type Config struct {
	URL              string        `env:"RUT_REGISTRY_URL"`
	APIKey           string        `env:"RUT_REGISTRY_API_KEY"`
	Timeout          time.Duration `env:"RUT_REGISTRY_TIMEOUT" envDefault:"5s"`
	RateLimit        float64       `env:"RUT_REGISTRY_RATE_LIMIT" envDefault:"10"`
	RateBurst        int           `env:"RUT_REGISTRY_RATE_BURST" envDefault:"5"`
	CacheTTL         time.Duration `env:"RUT_REGISTRY_CACHE_TTL" envDefault:"10m"`
	NegativeCacheTTL time.Duration `env:"RUT_REGISTRY_NEGATIVE_CACHE_TTL" envDefault:"1m"`
	CacheSize        int           `env:"RUT_REGISTRY_CACHE_SIZE" envDefault:"10000"`
}

// NewHTTPLookupFromConfig builds an HTTPLookup with the client timeout,
// API key and rate limit taken from cfg.
func NewHTTPLookupFromConfig(cfg Config, opts ...HTTPOption) *HTTPLookup {
	base := []HTTPOption{
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		WithAPIKey(cfg.APIKey),
		WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	}
	return NewHTTPLookup(cfg.URL, append(base, opts...)...)
}

// CacheOptions translates cfg into CachedLookup options.
func (cfg Config) CacheOptions() []CacheOption {
	return []CacheOption{
		WithTTL(cfg.CacheTTL),
		WithNegativeTTL(cfg.NegativeCacheTTL),
	}
}
