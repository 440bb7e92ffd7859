package main

import (
	"os/signal"
	"syscall"

	"github.com/n0rdy/palindromes/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the HTTP API until interrupted",
		Long: `Serve the HTTP API:
  GET /api/httpexample?min=&max=   plain text "min <value> max <value>"
  GET /api/palindromes?min=&max=   JSON with the factor pairs
  GET /healthz

The port is taken from --port, PALINDROMES_SERVER_PORT or FUNCTIONS_CUSTOMHANDLER_PORT, 3000 by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return httpapi.New(a.conf.Server, a.searcher, a.logger).Run(ctx)
		},
	}

	cmd.Flags().IntP("port", "p", 0, "port to listen on")
	cmd.Flags().Int("max-concurrent", 0, "searches running at the same time, 0 means no limit")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = a.v.BindPFlag("server.max_concurrent", cmd.Flags().Lookup("max-concurrent"))

	return cmd
}
