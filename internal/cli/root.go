// Package cli implements the rut command line tool.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/internal/api"
	"github.com/dmitrymomot/rutkit/pkg/config"
	"github.com/dmitrymomot/rutkit/pkg/logger"
)

var version = "dev"

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

var (
	envFile string
	log     = logger.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "rut",
	Short: "Parse, format, generate and validate Chilean RUTs",
	Long: `rut works with Chilean national identifiers (RUT).
It normalizes any common spelling, checks the modulus-11 verifier digit,
formats identifiers in several layouts and can confirm them against an
external registry over HTTP or PostgreSQL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var opts []config.Option
		if envFile != "" {
			opts = append(opts, config.WithEnvFiles(envFile))
		}
		var cfg appConfig
		if err := config.Load(&cfg, opts...); err != nil {
			return err
		}
		log = logger.New(
			logger.WithEnvironment(cfg.Env, "rut"),
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithContextExtractors(api.RequestID),
		)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion overrides the version printed by "rut version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
