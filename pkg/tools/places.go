// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"context"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
	"github.com/mark3labs/mcp-go/mcp"
)

// Sentinels for the place lookups. Distinct wordings are load-bearing:
// callers tell the outcomes apart by the exact string.
const (
	noSuchPlaceMsg       = "No such place found"
	nothingNearbyMsg     = "Nothing nearby that matches the search criteria was found."
	noSuchPlaceDetailMsg = "No such place found."
	noDetailsMsg         = "No details found for the specified place."
	missingEssentialsMsg = "Essential place details (e.g. name) are missing."
)

// Default response field lists requested from the Places API.
var (
	defaultFindPlaceFields = []string{"place_id", "formatted_address", "name", "geometry", "types", "rating"}

	defaultPlaceDetailFields = []string{"name", "formatted_address", "formatted_phone_number", "website", "types", "rating", "user_ratings_total"}
)

// FindPlaceTool returns a tool definition for free-text place search.
func FindPlaceTool() mcp.Tool {
	return mcp.NewTool("find_place",
		mcp.WithDescription("Find a place by name, establishment type, or phone number. "+
			"Returns basic information for the top match."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Name of the place to look for. Extra detail (city, country) improves accuracy. "+
				"Can also be an establishment type (bakery, bank) or, with query_type=phonenumber, a phone number"),
		),
		mcp.WithString("query_type",
			mcp.Description("The type of query: textquery or phonenumber"),
			mcp.DefaultString("textquery"),
		),
		mcp.WithArray("fields",
			mcp.Description("Response fields to request from the provider"),
			mcp.DefaultArray(toAnySlice(defaultFindPlaceFields)),
		),
	)
}

// HandleFindPlace implements the place search lookup.
func (r *Registry) HandleFindPlace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "find_place")

	query := mcp.ParseString(req, "query", "")
	queryType := mcp.ParseString(req, "query_type", "textquery")
	fields := parseStringArray(req, "fields", defaultFindPlaceFields)

	if query == "" {
		return ErrorResult("query must not be empty"), nil
	}
	if err := validateQueryType(queryType); err != nil {
		return ErrorResult(err.Error()), nil
	}

	resp, err := r.maps.FindPlace(ctx, query, queryType, fields)
	if err != nil {
		logger.Error("find place lookup failed", "error", err)
		return UpstreamErrorResult("find place", err), nil
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return mcp.NewToolResultText(noSuchPlaceMsg), nil
	}

	place := resp.Candidates[0]
	output := FindPlaceOutput{
		Name:             place.Name,
		PlaceID:          place.PlaceID,
		FormattedAddress: place.FormattedAddress,
		Location:         place.Geometry.Location,
		Types:            place.Types,
		Rating:           place.Rating,
	}
	return jsonResult(output)
}

// PlaceNearbyTool returns a tool definition for nearby place search.
func PlaceNearbyTool() mcp.Tool {
	return mcp.NewTool("place_nearby",
		mcp.WithDescription("Find places of a given type within a radius of a location. "+
			"Returns a mapping from place name to place identifier."),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("The latitude coordinate of the center point"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("The longitude coordinate of the center point"),
		),
		mcp.WithNumber("radius",
			mcp.Required(),
			mcp.Description("Search radius in meters (e.g. 2500 = 2.5km)"),
		),
		mcp.WithString("place_type",
			mcp.Required(),
			mcp.Description("Type of place to look for (e.g. \"italian restaurant\", \"hotel\")"),
		),
	)
}

// HandlePlaceNearby implements the nearby search lookup.
func (r *Registry) HandlePlaceNearby(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "place_nearby")

	latitude := mcp.ParseFloat64(req, "latitude", 0)
	longitude := mcp.ParseFloat64(req, "longitude", 0)
	radius := int(mcp.ParseFloat64(req, "radius", 0))
	placeType := mcp.ParseString(req, "place_type", "")

	if latitude < -90 || latitude > 90 {
		return ErrorResult("latitude must be between -90 and 90"), nil
	}
	if longitude < -180 || longitude > 180 {
		return ErrorResult("longitude must be between -180 and 180"), nil
	}
	if radius <= 0 {
		return ErrorResult("radius must be greater than 0"), nil
	}
	if placeType == "" {
		return ErrorResult("place_type must not be empty"), nil
	}

	resp, err := r.maps.PlacesNearby(ctx, gmaps.LatLng{Lat: latitude, Lng: longitude}, radius, placeType)
	if err != nil {
		logger.Error("nearby search failed", "error", err)
		return UpstreamErrorResult("nearby search", err), nil
	}
	if resp == nil {
		return mcp.NewToolResultText(nothingNearbyMsg), nil
	}

	// An empty results list is a distinct outcome from no response at
	// all and yields an empty mapping. Duplicate names overwrite: the
	// last candidate wins.
	output := make(map[string]string, len(resp.Results))
	for _, place := range resp.Results {
		output[place.Name] = place.PlaceID
	}
	return jsonResult(output)
}

// PlaceDetailsTool returns a tool definition for place detail lookups.
func PlaceDetailsTool() mcp.Tool {
	return mcp.NewTool("place_details",
		mcp.WithDescription("Get details for a place identified by a place_id, "+
			"as obtained from find_place or place_nearby"),
		mcp.WithString("place_id",
			mcp.Required(),
			mcp.Description("The place identifier to look up"),
		),
		mcp.WithArray("fields",
			mcp.Description("Response fields to request from the provider"),
			mcp.DefaultArray(toAnySlice(defaultPlaceDetailFields)),
		),
	)
}

// HandlePlaceDetails implements the place details lookup.
func (r *Registry) HandlePlaceDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "place_details")

	placeID := mcp.ParseString(req, "place_id", "")
	fields := parseStringArray(req, "fields", defaultPlaceDetailFields)

	if placeID == "" {
		return ErrorResult("place_id must not be empty"), nil
	}

	resp, err := r.maps.PlaceDetails(ctx, placeID, fields)
	if err != nil {
		logger.Error("place details lookup failed", "error", err)
		return UpstreamErrorResult("place details", err), nil
	}
	if resp == nil {
		return mcp.NewToolResultText(noSuchPlaceDetailMsg), nil
	}
	detail := resp.Result
	if detail == nil || detail.IsEmpty() {
		return mcp.NewToolResultText(noDetailsMsg), nil
	}
	if detail.Name == "" {
		return mcp.NewToolResultText(missingEssentialsMsg), nil
	}

	output := PlaceDetailsOutput{
		Name:                 detail.Name,
		FormattedAddress:     detail.FormattedAddress,
		FormattedPhoneNumber: detail.FormattedPhoneNumber,
		Website:              detail.Website,
		Types:                detail.Types,
		Rating:               detail.Rating,
		UserRatingsTotal:     detail.UserRatingsTotal,
	}
	return jsonResult(output)
}

// parseStringArray extracts a string array parameter, falling back to
// def when the parameter is absent or malformed.
func parseStringArray(req mcp.CallToolRequest, name string, def []string) []string {
	raw, ok := req.Params.Arguments[name]
	if !ok {
		return def
	}
	items, ok := raw.([]any)
	if !ok {
		return def
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	if len(values) == 0 {
		return def
	}
	return values
}

// toAnySlice widens a string slice for schema default declarations.
func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
