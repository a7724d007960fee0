package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/investment-calculator/internal/api"
	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr, redisAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator over HTTP.

Settings come from CALC_ADDR, CALC_REDIS_ADDR, CALC_RATE_LIMIT, CALC_RATE_WINDOW,
CALC_CACHE_TTL and CALC_LOG_LEVEL. Flags override the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				printError(cmd, "invalid server configuration", err)
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.RedisAddr = redisAddr
			}
			if !cmd.Flags().Changed("log-level") && !opts.verbose {
				opts.logLevel = cfg.LogLevel
			}

			logger := opts.logger(cmd)
			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			engine.Debug = opts.verbose

			server, cleanup := api.NewServer(cfg, engine, logger)
			defer cleanup()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, server, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (overrides CALC_ADDR)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the result cache (overrides CALC_REDIS_ADDR)")
	return cmd
}
