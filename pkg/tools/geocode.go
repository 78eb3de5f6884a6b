// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// addressNotFoundMsg is the sentinel returned when forward geocoding
// yields no results.
const addressNotFoundMsg = "Address not found"

// GeocodeAddressTool returns a tool definition for forward geocoding.
func GeocodeAddressTool() mcp.Tool {
	return mcp.NewTool("geocode_address",
		mcp.WithDescription("Convert an address or place name to geographic coordinates"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("The address or place name to geocode"),
		),
	)
}

// HandleGeocodeAddress implements the forward geocoding lookup.
func (r *Registry) HandleGeocodeAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "geocode_address")

	address := mcp.ParseString(req, "address", "")
	if address == "" {
		return ErrorResult("address must not be empty"), nil
	}

	results, err := r.maps.Geocode(ctx, address)
	if err != nil {
		logger.Error("geocode lookup failed", "error", err)
		return UpstreamErrorResult("geocode", err), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(addressNotFoundMsg), nil
	}

	location := results[0].Geometry.Location
	output := GeocodeOutput{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}
	return jsonResult(output)
}
