// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"context"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
)

// Provider is the subset of the Google Maps client the tools consume.
// It is satisfied by *gmaps.Client and by test doubles.
type Provider interface {
	Directions(ctx context.Context, origin, destination, mode string) ([]gmaps.Route, error)
	DistanceMatrix(ctx context.Context, origin, destination, mode string) (*gmaps.DistanceMatrix, error)
	Geocode(ctx context.Context, address string) ([]gmaps.GeocodeResult, error)
	FindPlace(ctx context.Context, input, inputType string, fields []string) (*gmaps.FindPlaceResponse, error)
	PlacesNearby(ctx context.Context, location gmaps.LatLng, radius int, keyword string) (*gmaps.PlacesNearbyResponse, error)
	PlaceDetails(ctx context.Context, placeID string, fields []string) (*gmaps.PlaceDetailsResponse, error)
}

// DirectionsStep is one instruction of a directions result, with markup
// stripped from the instruction text.
type DirectionsStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

// DirectionsOutput is the stable output shape of the get_directions tool.
// Totals reflect the first leg only; steps span all legs of the route.
type DirectionsOutput struct {
	Summary       string           `json:"summary,omitempty"`
	TotalDistance string           `json:"total_distance"`
	TotalDuration string           `json:"total_duration"`
	Steps         []DirectionsStep `json:"steps"`
}

// DistanceOutput is the stable output shape of the get_distance tool.
type DistanceOutput struct {
	TotalDistance string `json:"total_distance"`
	TotalDuration string `json:"total_duration"`
}

// GeocodeOutput is the stable output shape of the geocode_address tool.
type GeocodeOutput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FindPlaceOutput is the stable output shape of the find_place tool.
// Rating is null when the provider has no rating for the place.
type FindPlaceOutput struct {
	Name             string       `json:"name"`
	PlaceID          string       `json:"place_id"`
	FormattedAddress string       `json:"formatted_address"`
	Location         gmaps.LatLng `json:"location"`
	Types            []string     `json:"types"`
	Rating           *float64     `json:"rating"`
}

// PlaceDetailsOutput is the stable output shape of the place_details
// tool. Optional fields are omitted when the provider returned nothing
// for them; the rating count defaults to 0.
type PlaceDetailsOutput struct {
	Name                 string   `json:"name"`
	FormattedAddress     string   `json:"formatted_address,omitempty"`
	FormattedPhoneNumber string   `json:"formatted_phone_number,omitempty"`
	Website              string   `json:"website,omitempty"`
	Types                []string `json:"types,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	UserRatingsTotal     int      `json:"user_ratings_total"`
}
