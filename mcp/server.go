package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "jumia-reseller"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server with every catalog tool registered.
func NewServer(tools *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)
	tools.register(s)
	return s
}

// Serve runs the MCP server over stdio until the client disconnects.
func Serve(tools *Tools) error {
	return server.ServeStdio(NewServer(tools))
}
