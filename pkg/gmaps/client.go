// Package gmaps provides a client for the Google Maps Platform web services.
package gmaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Google Maps Platform web service endpoint.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultTimeout bounds every outbound request.
	DefaultTimeout = 10 * time.Second

	// UserAgent identifies this client to the API.
	UserAgent = "gmaps-mcp-server/0.1.0"

	// statusOK and statusZeroResults are the two Maps API statuses that
	// describe a successful exchange. Everything else is an error.
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client is a Google Maps Platform API client. All lookups are read-only
// and idempotent; transient transport failures are retried once with
// exponential backoff. Outbound calls are rate limited.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLogger sets the logger for the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRateLimit overrides the outbound request rate limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a Google Maps Platform client authenticated with the
// given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		// Maps Platform accepts far more, but human-interactive tool
		// calls never need more than this.
		limiter: rate.NewLimiter(rate.Limit(10), 5),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a rate-limited GET against the given service path and
// decodes the response body into out. Network errors and 5xx responses
// are retried once with backoff; everything else fails immediately.
func (c *Client) getJSON(ctx context.Context, service, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	query.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + query.Encode()

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Debug("request failed, may retry", "service", service, "error", err)
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			c.logger.Debug("server error, may retry", "service", service, "status", resp.StatusCode)
			return NewAPIError(service, resp.StatusCode, "the service is unavailable", "")
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(NewAPIError(service, resp.StatusCode,
				fmt.Sprintf("unexpected response status %d", resp.StatusCode), ""))
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(NewAPIError(service, resp.StatusCode,
				"failed to parse response", GuidanceGeneral))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, 1), ctx))
}

// checkStatus validates the Maps API status envelope of a decoded response.
func checkStatus(service string, env statusEnvelope) error {
	switch env.Status {
	case statusOK, statusZeroResults:
		return nil
	default:
		return newStatusError(service, env.Status, env.ErrorMessage)
	}
}

// Directions looks up routes between two free-text locations for the
// given travel mode.
func (c *Client) Directions(ctx context.Context, origin, destination, mode string) ([]Route, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", mode)

	var resp directionsResponse
	if err := c.getJSON(ctx, "directions", "/maps/api/directions/json", q, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus("directions", resp.statusEnvelope); err != nil {
		return nil, err
	}
	return resp.Routes, nil
}

// DistanceMatrix looks up travel distance and duration for a single
// origin/destination pair.
func (c *Client) DistanceMatrix(ctx context.Context, origin, destination, mode string) (*DistanceMatrix, error) {
	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("mode", mode)

	var resp distanceMatrixResponse
	if err := c.getJSON(ctx, "distancematrix", "/maps/api/distancematrix/json", q, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus("distancematrix", resp.statusEnvelope); err != nil {
		return nil, err
	}
	return &DistanceMatrix{Rows: resp.Rows}, nil
}

// Geocode forward-geocodes a free-text address or place name.
func (c *Client) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	q := url.Values{}
	q.Set("address", address)

	var resp geocodeResponse
	if err := c.getJSON(ctx, "geocode", "/maps/api/geocode/json", q, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus("geocode", resp.statusEnvelope); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// FindPlace searches for a place from free text or a phone number,
// requesting the given response fields.
func (c *Client) FindPlace(ctx context.Context, input, inputType string, fields []string) (*FindPlaceResponse, error) {
	q := url.Values{}
	q.Set("input", input)
	q.Set("inputtype", inputType)
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var resp findPlaceResponse
	if err := c.getJSON(ctx, "findplace", "/maps/api/place/findplacefromtext/json", q, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus("findplace", resp.statusEnvelope); err != nil {
		return nil, err
	}
	return &FindPlaceResponse{Candidates: resp.Candidates}, nil
}

// PlacesNearby searches for places matching a keyword within a radius
// (in meters) of a center point.
func (c *Client) PlacesNearby(ctx context.Context, location LatLng, radius int, keyword string) (*PlacesNearbyResponse, error) {
	q := url.Values{}
	q.Set("location", formatLatLng(location))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("keyword", keyword)

	var resp placesNearbyResponse
	if err := c.getJSON(ctx, "placesnearby", "/maps/api/place/nearbysearch/json", q, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus("placesnearby", resp.statusEnvelope); err != nil {
		return nil, err
	}
	return &PlacesNearbyResponse{Results: resp.Results}, nil
}

// PlaceDetails looks up the detail record for a place identifier,
// requesting the given response fields.
func (c *Client) PlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetailsResponse, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var resp placeDetailsResponse
	if err := c.getJSON(ctx, "placedetails", "/maps/api/place/details/json", q, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus("placedetails", resp.statusEnvelope); err != nil {
		return nil, err
	}
	return &PlaceDetailsResponse{Result: resp.Result}, nil
}

// formatLatLng renders a coordinate pair in the "lat,lng" form the
// Places API expects.
func formatLatLng(l LatLng) string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}
