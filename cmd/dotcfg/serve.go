package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	dotcfgmcp "github.com/gorewood/dotcfg/internal/mcp"
	"github.com/gorewood/dotcfg/internal/resolver"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run dotcfg as a Model Context Protocol (MCP) server over stdio.

The location flags set the defaults for every tool call; each call may
override them.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "dotcfg": {
        "command": "dotcfg",
        "args": ["serve", "--base-dir", "/home/me/.dotfiles"]
      }
    }
  }

Available tools: config_read, config_profile_list, config_theme_list,
config_profile_update`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			engine := resolver.New(newLogger(cmd))
			server := dotcfgmcp.NewServer(buildVersion(), engine, loaded.Overrides)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
	addOverrideFlags(cmd)
	return cmd
}
