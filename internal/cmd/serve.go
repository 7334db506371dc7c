package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"health-advisor/internal/catalog"
	"health-advisor/internal/config"
	"health-advisor/internal/decision"
	"health-advisor/internal/handler"
	"health-advisor/internal/logging"
	"health-advisor/internal/pricing"
)

// NewServeCommand creates the serve subcommand
func NewServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Start the fasthttp server. Settings come from defaults, then the YAML
file given by --config (or CONFIG_PATH), then environment variables such
as PORT, LOG_LEVEL and PRICE_REGISTRY_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	c, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if cfg.Pricing.RegistryURL != "" {
		c = applyPrices(c, pricing.New(cfg.Pricing.RegistryURL, cfg.Pricing.Timeout))
	}
	r, err := decision.NewDefaultResolver(c)
	if err != nil {
		return err
	}

	srv := &fasthttp.Server{
		Handler: handler.New(c, r).Handle,
		Name:    "health-advisor",
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", cfg.Addr()).
			Int("questions", len(c.Questions)).
			Msg("health advisor listening")
		errc <- srv.ListenAndServe(cfg.Addr())
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
		return srv.Shutdown()
	}
}

func applyPrices(c *catalog.Catalog, reg *pricing.Registry) *catalog.Catalog {
	fallback := make(map[string]int64, len(c.Packages))
	for _, p := range c.Packages {
		fallback[p.Slug] = p.Price
	}
	return c.WithPrices(reg.Prices(fallback))
}
