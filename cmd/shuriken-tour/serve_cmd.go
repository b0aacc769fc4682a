package main

import (
	"github.com/spf13/cobra"

	"github.com/shuriken-cli/tour/internal/config"
	"github.com/shuriken-cli/tour/internal/log"
	"github.com/shuriken-cli/tour/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the documentation over HTTP",
		GroupID: GroupTour,
		Args:    cobra.NoArgs,
		Long: `Serve the documentation pages over HTTP.

Endpoints:
  GET /              JSON index of all pages
  GET /docs/{slug}   Raw markdown for one page
  GET /healthz       Health check
  GET /metrics       Prometheus metrics

The server runs until interrupted and shuts down gracefully.`,
		Example: `  shuriken-tour serve               # Listen on the configured address
  shuriken-tour serve --addr :9000  # Override the listen address`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := log.FromContext(ctx)

			listen := cfg.Serve.Addr
			if cmd.Flags().Changed("addr") {
				listen = addr
			}

			return server.New().Run(ctx, listen, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
