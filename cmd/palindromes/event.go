package main

import (
	"fmt"
	"io"

	"github.com/n0rdy/palindromes/adapters/event"
	"github.com/spf13/cobra"
)

func newEventCmd(a *app) *cobra.Command {
	var payload string

	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"e"},
		Short:   "Answer a serverless event, read from --payload or stdin",
		Example: `  palindromes event --payload '{"min": 10, "max": 99}'
  echo '{"min": 100, "max": 999}' | palindromes event`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := []byte(payload)
			if !cmd.Flags().Changed("payload") {
				var err error
				if in, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			out, err := event.NewHandler(a.searcher, a.logger).Handle(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVar(&payload, "payload", "", "event JSON, stdin is read if not set")
	return cmd
}
