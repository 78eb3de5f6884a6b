// Package server provides the MCP server implementation for the Google Maps integration.
package server

import (
	"fmt"
	"log/slog"

	"github.com/geoserve/gmapsmcp/pkg/tools"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the name of the MCP server
	ServerName = "gmaps-mcp-server"

	// ServerVersion is the version of the MCP server
	ServerVersion = "0.1.0"
)

// Transport names accepted by Run.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Server encapsulates the MCP server with Google Maps tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates a new Google Maps MCP server with all tools
// registered against the given provider client.
func NewServer(maps tools.Provider) (*Server, error) {
	if maps == nil {
		return nil, fmt.Errorf("maps provider must not be nil")
	}

	logger := slog.Default()
	logger.Info("initializing Google Maps MCP server",
		"name", ServerName,
		"version", ServerVersion)

	// Create MCP server with options
	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	// Create tool registry and register all tools
	registry := tools.NewRegistry(logger, maps)
	registry.RegisterTools(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server on the named transport. The stdio transport
// serves a single client over stdin/stdout; the sse transport binds an
// HTTP listener on addr.
func (s *Server) Run(transport, addr string) error {
	switch transport {
	case TransportStdio:
		return server.ServeStdio(s.srv)
	case TransportSSE:
		return server.NewSSEServer(s.srv).Start(addr)
	default:
		return fmt.Errorf("unknown transport %q: must be %s or %s", transport, TransportStdio, TransportSSE)
	}
}
