package tools

import (
	"context"
	"testing"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
	"github.com/geoserve/gmapsmcp/pkg/testutil"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeProvider is a canned-response Provider for handler tests. It
// counts invocations so tests can assert the provider was never called
// on validation failure.
type fakeProvider struct {
	routes  []gmaps.Route
	matrix  *gmaps.DistanceMatrix
	geocode []gmaps.GeocodeResult
	found   *gmaps.FindPlaceResponse
	nearby  *gmaps.PlacesNearbyResponse
	details *gmaps.PlaceDetailsResponse
	err     error

	calls int
}

func (f *fakeProvider) Directions(ctx context.Context, origin, destination, mode string) ([]gmaps.Route, error) {
	f.calls++
	return f.routes, f.err
}

func (f *fakeProvider) DistanceMatrix(ctx context.Context, origin, destination, mode string) (*gmaps.DistanceMatrix, error) {
	f.calls++
	return f.matrix, f.err
}

func (f *fakeProvider) Geocode(ctx context.Context, address string) ([]gmaps.GeocodeResult, error) {
	f.calls++
	return f.geocode, f.err
}

func (f *fakeProvider) FindPlace(ctx context.Context, input, inputType string, fields []string) (*gmaps.FindPlaceResponse, error) {
	f.calls++
	return f.found, f.err
}

func (f *fakeProvider) PlacesNearby(ctx context.Context, location gmaps.LatLng, radius int, keyword string) (*gmaps.PlacesNearbyResponse, error) {
	f.calls++
	return f.nearby, f.err
}

func (f *fakeProvider) PlaceDetails(ctx context.Context, placeID string, fields []string) (*gmaps.PlaceDetailsResponse, error) {
	f.calls++
	return f.details, f.err
}

// newTestRegistry creates a registry wired to the given fake provider.
func newTestRegistry(p Provider) *Registry {
	return NewRegistry(testutil.DiscardLogger(), p)
}

// newToolRequest builds a CallToolRequest the way the MCP transport would.
func newToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments,omitempty"`
			Meta      *struct {
				ProgressToken mcp.ProgressToken `json:"progressToken,omitempty"`
			} `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText extracts the text content of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil {
		t.Fatal("result is nil")
	}
	for _, content := range res.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text
		}
	}
	t.Fatal("result has no text content")
	return ""
}

func float64Ptr(v float64) *float64 {
	return &v
}
