// Package mcp provides a Model Context Protocol server for dotcfg.
// It exposes the profile resolution operations as MCP tools so an agent can
// inspect and switch dotfiles configuration without shelling out.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/dotcfg/internal/resolver"
)

// NewServer creates an MCP server with all dotcfg tools registered.
// defaults supplies the overrides used when a tool call leaves a field empty.
func NewServer(version string, engine *resolver.Engine, defaults resolver.Overrides) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dotcfg",
		Version: version,
	}, nil)
	registerTools(server, engine, defaults)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for the field update tool.
// It overwrites one existing value, so it is not idempotent but not destructive either.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all dotcfg tools to the server.
func registerTools(server *mcp.Server, engine *resolver.Engine, defaults resolver.Overrides) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        resolver.OpConfigRead,
		Description: "Resolve the active profile: validates the configuration file, profile directory, profile name and profile file, and returns their paths.",
		Annotations: readOnlyAnnotations(),
	}, handleConfigRead(engine, defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        resolver.OpProfileList,
		Description: "List the entries of the profile directory and return their count.",
		Annotations: readOnlyAnnotations(),
	}, handleProfileList(engine, defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        resolver.OpThemeList,
		Description: "List the entries of the theme directory and return their count.",
		Annotations: readOnlyAnnotations(),
	}, handleThemeList(engine, defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        resolver.OpProfileUpdate,
		Description: "Advance a field (default: theme) in the active profile's global section and return the new value. The field must already exist.",
		Annotations: writeAnnotations(),
	}, handleProfileUpdate(engine, defaults))
}
