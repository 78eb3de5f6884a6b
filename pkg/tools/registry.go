// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registry holds all MCP tool registrations for the Google Maps service.
// The provider client is injected once at construction; handlers hold no
// other state, so concurrent invocations are independent.
type Registry struct {
	logger *slog.Logger
	maps   Provider
}

// NewRegistry creates a new MCP tool registry backed by the given
// Google Maps provider.
func NewRegistry(logger *slog.Logger, maps Provider) *Registry {
	return &Registry{
		logger: logger,
		maps:   maps,
	}
}

// ToolDefinition represents a Google Maps MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all Google Maps MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Directions Tools
		{
			Name:        "get_directions",
			Description: "Get step-by-step directions between two locations",
			Tool:        GetDirectionsTool(),
			Handler:     r.HandleGetDirections,
		},
		{
			Name:        "get_distance",
			Description: "Get total travel distance and duration between two locations",
			Tool:        GetDistanceTool(),
			Handler:     r.HandleGetDistance,
		},

		// Geocoding Tools
		{
			Name:        "geocode_address",
			Description: "Convert an address or place name to geographic coordinates",
			Tool:        GeocodeAddressTool(),
			Handler:     r.HandleGeocodeAddress,
		},

		// Place Tools
		{
			Name:        "find_place",
			Description: "Find a place by name, establishment type, or phone number",
			Tool:        FindPlaceTool(),
			Handler:     r.HandleFindPlace,
		},
		{
			Name:        "place_nearby",
			Description: "Find places of a given type within a radius of a location",
			Tool:        PlaceNearbyTool(),
			Handler:     r.HandlePlaceNearby,
		},
		{
			Name:        "place_details",
			Description: "Get details for a place identified by a place_id",
			Tool:        PlaceDetailsTool(),
			Handler:     r.HandlePlaceDetails,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
