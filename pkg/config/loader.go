package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles loads the given .env files before parsing. Unlike the implicit
// ./.env lookup, a missing file here is an error. Variables already present in
// the process environment win over file values.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix prepends prefix to every env tag of the target struct, so one
// struct type can be loaded for several named instances.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load populates v from environment variables according to its `env` tags.
//
// The first call also tries ./.env and silently ignores its absence.
//
// Example:
//
//	type RegistryConfig struct {
//		URL     string        `env:"RUT_REGISTRY_URL"`
//		Timeout time.Duration `env:"RUT_REGISTRY_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg RegistryConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for process start-up.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
