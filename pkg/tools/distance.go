// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"context"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
	"github.com/mark3labs/mcp-go/mcp"
)

// noDistanceMsg is the sentinel returned when the provider has no
// distance information for the requested pair.
const noDistanceMsg = "No distance found for the specified locations."

// GetDistanceTool returns a tool definition for total travel distance
// and duration between two locations.
func GetDistanceTool() mcp.Tool {
	return mcp.NewTool("get_distance",
		mcp.WithDescription("Get total travel distance and duration between two locations"),
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

// HandleGetDistance implements the distance lookup.
func (r *Registry) HandleGetDistance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_distance")

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

	matrix, err := r.maps.DistanceMatrix(ctx, origin, destination, mode)
	if err != nil {
		logger.Error("distance lookup failed", "error", err)
		return UpstreamErrorResult("distance", err), nil
	}

	element, ok := firstElement(matrix)
	if !ok {
		return mcp.NewToolResultText(noDistanceMsg), nil
	}

	output := DistanceOutput{
		TotalDistance: element.Distance.Text,
		TotalDuration: element.Duration.Text,
	}
	return jsonResult(output)
}

// firstElement extracts the single element of a one-pair distance matrix,
// reporting false when the matrix has no usable element: no rows, no
// elements, a non-OK element status, or missing distance/duration fields.
func firstElement(matrix *gmaps.DistanceMatrix) (gmaps.DistanceElement, bool) {
	if matrix == nil || len(matrix.Rows) == 0 {
		return gmaps.DistanceElement{}, false
	}
	elements := matrix.Rows[0].Elements
	if len(elements) == 0 {
		return gmaps.DistanceElement{}, false
	}
	element := elements[0]
	if element.Status != "" && element.Status != "OK" {
		return gmaps.DistanceElement{}, false
	}
	if element.Distance == nil || element.Duration == nil {
		return gmaps.DistanceElement{}, false
	}
	return element, true
}

// textOf returns the text form of a quantity, or empty when absent.
func textOf(tv *gmaps.TextValue) string {
	if tv == nil {
		return ""
	}
	return tv.Text
}
