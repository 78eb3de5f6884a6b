package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
)

func TestHandleFindPlaceInvalidQueryType(t *testing.T) {
	provider := &fakeProvider{}
	r := newTestRegistry(provider)

	res, err := r.HandleFindPlace(context.Background(),
		newToolRequest("find_place", map[string]any{
			"query":      "Googleplex",
			"query_type": "voicequery",
		}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected an error result for invalid query type")
	}
	if provider.calls != 0 {
		t.Errorf("provider was invoked %d times despite invalid query type", provider.calls)
	}
}

func TestHandleFindPlaceNoCandidates(t *testing.T) {
	r := newTestRegistry(&fakeProvider{
		found: &gmaps.FindPlaceResponse{Candidates: []gmaps.PlaceCandidate{}},
	})

	res, err := r.HandleFindPlace(context.Background(),
		newToolRequest("find_place", map[string]any{"query": "Random temple, Wakanda"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != noSuchPlaceMsg {
		t.Errorf("got %q, want %q", got, noSuchPlaceMsg)
	}
}

func TestHandleFindPlaceSuccess(t *testing.T) {
	r := newTestRegistry(&fakeProvider{
		found: &gmaps.FindPlaceResponse{Candidates: []gmaps.PlaceCandidate{
			{
				Name:             "Googleplex",
				PlaceID:          "ChIJj61dQgK6j4AR4GeTYWZsKWw",
				FormattedAddress: "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
				Geometry:         gmaps.Geometry{Location: gmaps.LatLng{Lat: 37.4224, Lng: -122.0842}},
				Types:            []string{"point_of_interest", "establishment"},
				Rating:           float64Ptr(4.5),
			},
			{Name: "Second candidate"},
		}},
	})

	res, err := r.HandleFindPlace(context.Background(),
		newToolRequest("find_place", map[string]any{"query": "Googleplex"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var output FindPlaceOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if output.Name != "Googleplex" {
		t.Errorf("name = %q, want the first candidate", output.Name)
	}
	if output.PlaceID != "ChIJj61dQgK6j4AR4GeTYWZsKWw" {
		t.Errorf("place_id = %q", output.PlaceID)
	}
	if output.Location.Lat != 37.4224 || output.Location.Lng != -122.0842 {
		t.Errorf("location = %+v", output.Location)
	}
	if output.Rating == nil || *output.Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", output.Rating)
	}
}

func TestHandleFindPlaceNullRating(t *testing.T) {
	r := newTestRegistry(&fakeProvider{
		found: &gmaps.FindPlaceResponse{Candidates: []gmaps.PlaceCandidate{
			{Name: "City Hall", PlaceID: "abc123"},
		}},
	})

	res, err := r.HandleFindPlace(context.Background(),
		newToolRequest("find_place", map[string]any{"query": "City Hall"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rating must serialize as an explicit null, not be omitted.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(resultText(t, res)), &raw); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	rating, ok := raw["rating"]
	if !ok {
		t.Fatal("rating key missing from output")
	}
	if string(rating) != "null" {
		t.Errorf("rating = %s, want null", rating)
	}
}

func TestHandlePlaceNearbyNoResponse(t *testing.T) {
	r := newTestRegistry(&fakeProvider{nearby: nil})

	res, err := r.HandlePlaceNearby(context.Background(),
		newToolRequest("place_nearby", map[string]any{
			"latitude":   43.4643,
			"longitude":  -80.5204,
			"radius":     2500,
			"place_type": "italian restaurant",
		}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != nothingNearbyMsg {
		t.Errorf("got %q, want %q", got, nothingNearbyMsg)
	}
}

func TestHandlePlaceNearbyEmptyResults(t *testing.T) {
	// An empty results list is a distinct outcome from no response at
	// all: it yields an empty mapping, not the sentinel.
	r := newTestRegistry(&fakeProvider{
		nearby: &gmaps.PlacesNearbyResponse{Results: []gmaps.NearbyPlace{}},
	})

	res, err := r.HandlePlaceNearby(context.Background(),
		newToolRequest("place_nearby", map[string]any{
			"latitude":   43.4643,
			"longitude":  -80.5204,
			"radius":     2500,
			"place_type": "hotel",
		}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != "{}" {
		t.Errorf("got %q, want an empty mapping", got)
	}
}

func TestHandlePlaceNearbyDuplicateNames(t *testing.T) {
	r := newTestRegistry(&fakeProvider{
		nearby: &gmaps.PlacesNearbyResponse{Results: []gmaps.NearbyPlace{
			{Name: "Tim Hortons", PlaceID: "first"},
			{Name: "McCabe's Irish Pub", PlaceID: "pub"},
			{Name: "Tim Hortons", PlaceID: "second"},
		}},
	})

	res, err := r.HandlePlaceNearby(context.Background(),
		newToolRequest("place_nearby", map[string]any{
			"latitude":   43.4643,
			"longitude":  -80.5204,
			"radius":     1000,
			"place_type": "coffee",
		}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var output map[string]string
	if err := json.Unmarshal([]byte(resultText(t, res)), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(output) != 2 {
		t.Fatalf("got %d entries, want 2", len(output))
	}
	if output["Tim Hortons"] != "second" {
		t.Errorf("duplicate name resolved to %q, want the last candidate", output["Tim Hortons"])
	}
	if output["McCabe's Irish Pub"] != "pub" {
		t.Errorf("unexpected mapping: %v", output)
	}
}

func TestHandlePlaceNearbyBadParams(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{
			name: "latitude out of range",
			args: map[string]any{"latitude": 91.0, "longitude": 0.0, "radius": 100, "place_type": "cafe"},
		},
		{
			name: "longitude out of range",
			args: map[string]any{"latitude": 0.0, "longitude": -200.0, "radius": 100, "place_type": "cafe"},
		},
		{
			name: "zero radius",
			args: map[string]any{"latitude": 0.0, "longitude": 0.0, "radius": 0, "place_type": "cafe"},
		},
		{
			name: "empty place type",
			args: map[string]any{"latitude": 0.0, "longitude": 0.0, "radius": 100, "place_type": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			r := newTestRegistry(provider)

			res, err := r.HandlePlaceNearby(context.Background(),
				newToolRequest("place_nearby", tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.IsError {
				t.Error("expected an error result")
			}
			if provider.calls != 0 {
				t.Error("provider was invoked despite invalid parameters")
			}
		})
	}
}

func TestHandlePlaceDetailsSentinels(t *testing.T) {
	tests := []struct {
		name    string
		details *gmaps.PlaceDetailsResponse
		want    string
	}{
		{
			name:    "no response",
			details: nil,
			want:    noSuchPlaceDetailMsg,
		},
		{
			name:    "missing result object",
			details: &gmaps.PlaceDetailsResponse{Result: nil},
			want:    noDetailsMsg,
		},
		{
			name:    "empty result object",
			details: &gmaps.PlaceDetailsResponse{Result: &gmaps.PlaceDetail{}},
			want:    noDetailsMsg,
		},
		{
			name: "name missing",
			details: &gmaps.PlaceDetailsResponse{Result: &gmaps.PlaceDetail{
				FormattedAddress: "30 Muirlands Dr",
			}},
			want: missingEssentialsMsg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(&fakeProvider{details: tt.details})

			res, err := r.HandlePlaceDetails(context.Background(),
				newToolRequest("place_details", map[string]any{"place_id": "ChIJr6vaxLHW1IkRgrdDqsWyvN4"}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := resultText(t, res); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandlePlaceDetailsSuccess(t *testing.T) {
	r := newTestRegistry(&fakeProvider{
		details: &gmaps.PlaceDetailsResponse{Result: &gmaps.PlaceDetail{
			Name:             "Alton Chinese Restaurant",
			FormattedAddress: "123 Main St, Scarborough, ON",
			Types:            []string{"restaurant", "food"},
			Rating:           float64Ptr(4.2),
			UserRatingsTotal: 87,
		}},
	})

	res, err := r.HandlePlaceDetails(context.Background(),
		newToolRequest("place_details", map[string]any{"place_id": "abc123"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	text := resultText(t, res)
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	// Null-valued optional fields are dropped from the output.
	for _, absent := range []string{"formatted_phone_number", "website"} {
		if _, ok := raw[absent]; ok {
			t.Errorf("expected %q to be omitted, got %s", absent, raw[absent])
		}
	}

	var output PlaceDetailsOutput
	if err := json.Unmarshal([]byte(text), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if output.Name != "Alton Chinese Restaurant" {
		t.Errorf("name = %q", output.Name)
	}
	if output.UserRatingsTotal != 87 {
		t.Errorf("user_ratings_total = %d, want 87", output.UserRatingsTotal)
	}
}

func TestHandlePlaceDetailsRatingCountDefault(t *testing.T) {
	r := newTestRegistry(&fakeProvider{
		details: &gmaps.PlaceDetailsResponse{Result: &gmaps.PlaceDetail{
			Name: "New Cafe",
		}},
	})

	res, err := r.HandlePlaceDetails(context.Background(),
		newToolRequest("place_details", map[string]any{"place_id": "abc123"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(resultText(t, res)), &raw); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	count, ok := raw["user_ratings_total"]
	if !ok {
		t.Fatal("user_ratings_total missing from output")
	}
	if string(count) != "0" {
		t.Errorf("user_ratings_total = %s, want default 0", count)
	}
}
