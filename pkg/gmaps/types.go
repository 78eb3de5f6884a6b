// Package gmaps provides a client for the Google Maps Platform web services.
package gmaps

// TextValue is a quantity as returned by the Maps API: a human-readable
// text form alongside the raw numeric value (meters or seconds).
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry holds the location of a place or geocoding result.
type Geometry struct {
	Location LatLng `json:"location"`
}

// Step is one atomic instruction within a route leg. The instruction text
// arrives with embedded HTML markup.
type Step struct {
	HTMLInstructions string     `json:"html_instructions"`
	Distance         *TextValue `json:"distance"`
	Duration         *TextValue `json:"duration"`
}

// Leg is one origin-to-destination segment of a route. Routes with
// waypoints have multiple legs.
type Leg struct {
	Distance *TextValue `json:"distance"`
	Duration *TextValue `json:"duration"`
	Steps    []Step     `json:"steps"`
}

// Route is a single route returned by the Directions API.
type Route struct {
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`
}

// DistanceElement is one origin/destination pairing in a distance matrix.
// Distance and Duration are absent when the element status is not OK.
type DistanceElement struct {
	Status   string     `json:"status"`
	Distance *TextValue `json:"distance"`
	Duration *TextValue `json:"duration"`
}

// DistanceRow is one origin's row of a distance matrix.
type DistanceRow struct {
	Elements []DistanceElement `json:"elements"`
}

// DistanceMatrix is the rows of a Distance Matrix API response.
type DistanceMatrix struct {
	Rows []DistanceRow `json:"rows"`
}

// GeocodeResult is a single forward-geocoding match.
type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
}

// PlaceCandidate is a match for a free-text place query, ranked by
// provider relevance.
type PlaceCandidate struct {
	Name             string   `json:"name"`
	PlaceID          string   `json:"place_id"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	Types            []string `json:"types"`
	Rating           *float64 `json:"rating"`
}

// FindPlaceResponse holds the candidates of a Find Place query.
type FindPlaceResponse struct {
	Candidates []PlaceCandidate `json:"candidates"`
}

// NearbyPlace is one result of a Nearby Search query.
type NearbyPlace struct {
	Name    string `json:"name"`
	PlaceID string `json:"place_id"`
}

// PlacesNearbyResponse holds the results of a Nearby Search query.
type PlacesNearbyResponse struct {
	Results []NearbyPlace `json:"results"`
}

// PlaceDetail is the detail record of a Place Details lookup. Optional
// fields are pointers or zero values so callers can detect absence.
type PlaceDetail struct {
	Name                 string   `json:"name"`
	FormattedAddress     string   `json:"formatted_address"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Website              string   `json:"website"`
	Types                []string `json:"types"`
	Rating               *float64 `json:"rating"`
	UserRatingsTotal     int      `json:"user_ratings_total"`
}

// IsEmpty reports whether the detail record carries no data at all,
// which is how the API answers a details lookup for an unknown place.
func (d *PlaceDetail) IsEmpty() bool {
	return d.Name == "" &&
		d.FormattedAddress == "" &&
		d.FormattedPhoneNumber == "" &&
		d.Website == "" &&
		len(d.Types) == 0 &&
		d.Rating == nil &&
		d.UserRatingsTotal == 0
}

// PlaceDetailsResponse holds the result of a Place Details lookup.
// Result is nil when the response carried no result object.
type PlaceDetailsResponse struct {
	Result *PlaceDetail `json:"result"`
}

// statusEnvelope is the status wrapper every Maps API response carries.
type statusEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type directionsResponse struct {
	statusEnvelope
	Routes []Route `json:"routes"`
}

type distanceMatrixResponse struct {
	statusEnvelope
	Rows []DistanceRow `json:"rows"`
}

type geocodeResponse struct {
	statusEnvelope
	Results []GeocodeResult `json:"results"`
}

type findPlaceResponse struct {
	statusEnvelope
	Candidates []PlaceCandidate `json:"candidates"`
}

type placesNearbyResponse struct {
	statusEnvelope
	Results []NearbyPlace `json:"results"`
}

type placeDetailsResponse struct {
	statusEnvelope
	Result *PlaceDetail `json:"result"`
}
