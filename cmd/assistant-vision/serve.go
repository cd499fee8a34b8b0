package main

import (
	"github.com/spf13/cobra"

	"github.com/team1160/assistant-vision/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the vision tools over MCP on stdin/stdout",
		Long: `Serve the vision pipeline as MCP tools. The server communicates via
JSON-RPC over stdin/stdout; configure it in your MCP client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			server.Version = Version
			return server.New(cfg).Run()
		},
	}
}
