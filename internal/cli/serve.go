package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/internal/api"
	"github.com/dmitrymomot/rutkit/pkg/config"
	"github.com/dmitrymomot/rutkit/pkg/httpserver"
	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/registry"
)

var (
	serveSource string
	serveCache  string
	serveAddr   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the RUT HTTP API",
	Long: `Starts an HTTP API with the endpoints:

  GET  /health
  GET  /metrics
  GET  /ruts/{rut}?mode=
  GET  /ruts/generate?count=&mode=
  POST /ruts/validate   (form field "rut")

Listener settings come from HTTP_* environment variables; --source and
--cache select the registry exactly like "rut check".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveSource, "source", "s", sourceNone, "registry source: none, http or postgres")
	serveCmd.Flags().StringVar(&serveCache, "cache", cacheNone, "registry cache: none, memory or redis")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides HTTP_ADDR")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var cfg httpserver.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	httpLog := log.With(logger.Component("api"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics = registry.NewMetrics(reg)
	defer func() { metrics = nil }()

	opts := []api.Option{
		api.WithLogger(httpLog),
		api.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	}
	if serveSource != sourceNone {
		backend, err := openRegistry(ctx, serveSource, serveCache)
		if err != nil {
			return fmt.Errorf("failed to open registry: %w", err)
		}
		defer backend.close()

		opts = append(opts, api.WithValidator(registry.NewValidator(backend.lookup,
			registry.WithName(serveSource),
			registry.WithTimeout(backend.config.Timeout),
			registry.WithLogger(httpLog),
			registry.WithMetrics(metrics),
		)))
		for name, probe := range backend.health {
			opts = append(opts, api.WithHealthCheck(name, probe))
		}
	}

	srv := httpserver.New(cfg, httpserver.WithLogger(httpLog))
	return srv.Run(ctx, api.NewRouter(opts...))
}
