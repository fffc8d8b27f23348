package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cixtor/binarycookies/v2/internal/clock"
	"github.com/cixtor/binarycookies/v2/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the codec over HTTP",
		Long: `Serve starts an HTTP server that decodes and encodes cookie jars.

Endpoints:
  GET  /api/v1/health
  POST /api/v1/decode   body: jar file, ?format=netscape for text output
  POST /api/v1/encode   body: {"pages":[{"cookies":[...]}]}
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.Config{
				Bind: a.config.Server.Bind,
				Port: a.config.Server.Port,
			}

			if cmd.Flags().Changed("bind") {
				cfg.Bind, _ = cmd.Flags().GetString("bind")
			}
			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, a.logger, clock.Real{}).ListenAndServe(ctx)
		},
	}

	c.Flags().String("bind", "", "address to listen on")
	c.Flags().IntP("port", "p", 0, "port to listen on")

	return c
}
