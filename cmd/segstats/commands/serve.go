package commands

import (
	"os/signal"
	"syscall"

	"segstats/internal/mcp"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the statistics as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return mcp.NewServer(a.trim).Run(ctx)
		},
	}
	addTrimFlag(cmd, a)
	return cmd
}
