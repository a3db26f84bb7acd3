package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/config"
)

type defaultsConfig struct {
	URL     string        `env:"CFGTEST_DEFAULT_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"CFGTEST_DEFAULT_TIMEOUT" envDefault:"5s"`
	Enabled bool          `env:"CFGTEST_DEFAULT_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Key string `env:"CFGTEST_REQUIRED_KEY,required"`
}

type prefixedConfig struct {
	URL string `env:"URL"`
}

type fileConfig struct {
	URL     string        `env:"CFGTEST_REGISTRY_URL"`
	Timeout time.Duration `env:"CFGTEST_REGISTRY_TIMEOUT"`
	Sources []string      `env:"CFGTEST_REGISTRY_SOURCES" envSeparator:","`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:8080", cfg.URL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.Enabled)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("CFGTEST_DEFAULT_URL", "https://registry.local")
		t.Setenv("CFGTEST_DEFAULT_TIMEOUT", "250ms")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://registry.local", cfg.URL)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CFGTEST_DEFAULT_TIMEOUT", "soon")

		var cfg defaultsConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Setenv("BACKUP_URL", "https://backup.local")

		var cfg prefixedConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("BACKUP_")))
		assert.Equal(t, "https://backup.local", cfg.URL)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var cfg fileConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("values from file", func(t *testing.T) {
		t.Setenv("CFGTEST_REGISTRY_TIMEOUT", "7s")

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/registry.env")))
		assert.Equal(t, "https://registry.example.cl", cfg.URL)
		assert.Equal(t, 7*time.Second, cfg.Timeout, "process environment wins over the file")
		assert.Equal(t, []string{"http", "postgres"}, cfg.Sources)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
