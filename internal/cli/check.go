package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/registry"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

var (
	checkSource string
	checkCache  string
)

var errRejected = errors.New("rut check failed")

var checkCmd = &cobra.Command{
	Use:   "check [rut...]",
	Short: "Validate RUTs, optionally against a registry",
	Long: `Validates each RUT with the modulus-11 checksum and, when --source is
set, confirms it with the external registry. The checksum always runs first,
so malformed identifiers never reach the registry.

Registry settings come from RUT_REGISTRY_* (http), PG_* (postgres) and
REDIS_* (redis cache) environment variables.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkSource, "source", "s", sourceNone, "registry source: none, http or postgres")
	checkCmd.Flags().StringVar(&checkCache, "cache", cacheNone, "registry cache: none, memory or redis")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	chain := rut.NewChain(rut.ChecksumValidator{})

	if checkSource != sourceNone {
		backend, err := openRegistry(ctx, checkSource, checkCache)
		if err != nil {
			return fmt.Errorf("failed to open registry: %w", err)
		}
		defer backend.close()
		chain.Append(registry.NewValidator(backend.lookup,
			registry.WithName(checkSource),
			registry.WithTimeout(backend.config.Timeout),
			registry.WithLogger(log),
		))
	}

	failed := 0
	for _, raw := range args {
		r, err := rut.ParseWith(ctx, raw, chain)

		var invalid *rut.InvalidError
		switch {
		case err == nil:
			cmd.Printf("%s: valid\n", r)
		case errors.As(err, &invalid):
			failed++
			cmd.Printf("%s: invalid (%s)\n", invalid.RUT, invalid.Reason)
		case errors.Is(err, rut.ErrMalformedInput):
			failed++
			cmd.Printf("%q: malformed\n", raw)
		default:
			failed++
			cmd.Printf("%q: error (%v)\n", raw, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, failed, len(args))
	}
	return nil
}
