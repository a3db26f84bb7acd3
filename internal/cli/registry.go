package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/pg"
	"github.com/dmitrymomot/rutkit/pkg/registry"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

var (
	registryName     string
	registryInactive bool
	healthSource     string
	healthCache      string
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage the PostgreSQL registry",
}

var registryMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the rut_registry table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		pool, cfg, err := connectPostgres(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, registry.Migrations, registry.MigrationsDir, cfg, log); err != nil {
			return err
		}
		cmd.Println("registry schema is up to date")
		return nil
	},
}

var registryAddCmd = &cobra.Command{
	Use:   "add [rut]",
	Short: "Insert or update a registry record",
	Long: `Stores a RUT in the rut_registry table. The verifier must match the
checksum; use --inactive to record a cancelled registration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		r, err := rut.ParseWith(ctx, args[0], rut.ChecksumValidator{})
		if err != nil {
			return err
		}

		pool, _, err := connectPostgres(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		rec := registry.Record{RUT: r, Active: !registryInactive, Name: registryName}
		if err := registry.NewPostgresLookup(pool).Upsert(ctx, rec); err != nil {
			return err
		}
		cmd.Printf("stored %s\n", r)
		return nil
	},
}

var registryHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Ping the configured registry backends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		backend, err := openRegistry(ctx, healthSource, healthCache)
		if err != nil {
			return err
		}
		defer backend.close()

		var errs []error
		for name, probe := range backend.health {
			if err := probe(ctx); err != nil {
				cmd.Printf("%s: down\n", name)
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			cmd.Printf("%s: ok\n", name)
		}
		return errors.Join(errs...)
	},
}

func init() {
	registryAddCmd.Flags().StringVar(&registryName, "name", "", "holder name")
	registryAddCmd.Flags().BoolVar(&registryInactive, "inactive", false, "mark the registration as inactive")
	registryHealthCmd.Flags().StringVarP(&healthSource, "source", "s", sourcePostgres, "registry source: http or postgres")
	registryHealthCmd.Flags().StringVar(&healthCache, "cache", cacheNone, "registry cache: none, memory or redis")

	registryCmd.AddCommand(registryMigrateCmd, registryAddCmd, registryHealthCmd)
	rootCmd.AddCommand(registryCmd)
}
