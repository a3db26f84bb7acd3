// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags; .env files are read
// through godotenv. Process environment always takes precedence over files.
//
// # Usage
//
//	type RegistryConfig struct {
//		URL     string        `env:"RUT_REGISTRY_URL"`
//		APIKey  string        `env:"RUT_REGISTRY_API_KEY"`
//		Timeout time.Duration `env:"RUT_REGISTRY_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg RegistryConfig
//	if err := config.Load(&cfg, config.WithEnvFiles(".env.local")); err != nil {
//		log.Fatal(err)
//	}
//
// WithPrefix loads the same struct under a different namespace, for example
// a secondary registry configured with BACKUP_RUT_REGISTRY_URL.
//
// # Error Handling
//
// Failures wrap one of ErrNilPointer, ErrLoadingEnvFile or ErrParsingConfig
// and can be matched with errors.Is. The underlying env or godotenv error is
// joined to the sentinel.
package config
