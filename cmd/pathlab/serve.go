package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/internal/api"
	"github.com/katalvlaran/pathlab/internal/config"
)

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the searches over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(api.Config{
				Addr:    c.cfg.HTTPAddr,
				BaseURL: "/api",
				Mode:    c.cfg.GinMode,
				Controllers: []api.Controller{
					api.NewSearchController(c.cfg.DepthLimit, c.log),
				},
				Logger: c.log,
			})
			return router.Run(ctx)
		},
	}
	cmd.Flags().String("addr", config.DefaultHTTPAddr, "listen address")
	cmd.Flags().String("gin-mode", config.DefaultGinMode, "gin mode (release, debug, test)")
	c.bind(config.KeyHTTPAddr, cmd.Flags().Lookup("addr"))
	c.bind(config.KeyGinMode, cmd.Flags().Lookup("gin-mode"))
	return cmd
}
