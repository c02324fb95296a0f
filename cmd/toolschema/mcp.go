package main

import (
	"github.com/spf13/cobra"

	"github.com/spetersoncode/toolschema/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the example tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := exampleRegistry(a.provider)
			a.logger.Info("serving tools over stdio", "tools", registry.Len())
			return mcp.ServeStdio(registry,
				mcp.WithName("toolschema"),
				mcp.WithLogger(a.logger),
			)
		},
	}
}
