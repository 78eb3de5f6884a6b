// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// noDirectionsMsg is the sentinel returned when the provider has no
// route between the requested locations.
const noDirectionsMsg = "No directions found for the specified locations."

// GetDirectionsTool returns a tool definition for step-by-step directions.
func GetDirectionsTool() mcp.Tool {
	return mcp.NewTool("get_directions",
		mcp.WithDescription("Get step-by-step directions between two locations. "+
			"Total distance and duration describe the first leg of the route."),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("The originating address or place name"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("The destination address or place name"),
		),
		mcp.WithString("mode",
			mcp.Description("Mode of transportation: driving, walking, bicycling, or transit"),
			mcp.DefaultString("driving"),
		),
	)
}

// HandleGetDirections implements the directions lookup.
func (r *Registry) HandleGetDirections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_directions")

	origin := mcp.ParseString(req, "origin", "")
	destination := mcp.ParseString(req, "destination", "")
	mode := mcp.ParseString(req, "mode", "driving")

	if origin == "" {
		return ErrorResult("origin must not be empty"), nil
	}
	if destination == "" {
		return ErrorResult("destination must not be empty"), nil
	}
	if err := validateTravelMode(mode); err != nil {
		return ErrorResult(err.Error()), nil
	}

	routes, err := r.maps.Directions(ctx, origin, destination, mode)
	if err != nil {
		logger.Error("directions lookup failed", "error", err)
		return UpstreamErrorResult("directions", err), nil
	}
	if len(routes) == 0 {
		return mcp.NewToolResultText(noDirectionsMsg), nil
	}

	route := routes[0]
	if len(route.Legs) == 0 {
		return mcp.NewToolResultText(noDirectionsMsg), nil
	}

	// Totals come from the first leg only. Steps span every leg so
	// multi-waypoint routes still list all instructions.
	output := DirectionsOutput{
		Summary:       route.Summary,
		TotalDistance: textOf(route.Legs[0].Distance),
		TotalDuration: textOf(route.Legs[0].Duration),
		Steps:         make([]DirectionsStep, 0),
	}
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			output.Steps = append(output.Steps, DirectionsStep{
				Instruction: stripMarkup(step.HTMLInstructions),
				Distance:    textOf(step.Distance),
				Duration:    textOf(step.Duration),
			})
		}
	}

	return jsonResult(output)
}
