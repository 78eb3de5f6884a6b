// Package gmaps provides a client for the Google Maps Platform web services.
package gmaps

import (
	"fmt"
	"net/http"
)

// APIError represents an error returned while communicating with the
// Google Maps Platform, with information to help users recover.
type APIError struct {
	Service     string // The API service name (e.g., "directions", "geocode")
	StatusCode  int    // HTTP status code
	Status      string // Maps API status field (e.g., "REQUEST_DENIED"), if any
	Message     string // Error message
	Recoverable bool   // Whether the error can be recovered from
	Guidance    string // Guidance for users on how to recover
}

// Error implements the error interface and provides a formatted error message.
func (e *APIError) Error() string {
	detail := e.Message
	if e.Status != "" {
		detail = fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	if e.Guidance != "" {
		return fmt.Sprintf("%s API error (%d): %s. %s", e.Service, e.StatusCode, detail, e.Guidance)
	}
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, detail)
}

// Common error guidance messages
const (
	GuidanceRequestDenied = "Check that the API key is valid and the service is enabled for it."
	GuidanceQuotaExceeded = "The API key's quota is exhausted. Please try again later."
	GuidanceInvalidInput  = "Check the request parameters and try again."
	GuidanceGeneral       = "Please try again later or modify your request parameters."
	GuidanceNetworkError  = "Check your internet connection and try again."
)

// NewAPIError creates a new APIError with appropriate guidance based on status code.
func NewAPIError(service string, statusCode int, message, guidance string) *APIError {
	if guidance == "" {
		switch statusCode {
		case http.StatusTooManyRequests:
			guidance = "Rate limit exceeded. Please try again in a few moments."
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			guidance = "The request timed out. Please try again."
		case http.StatusBadRequest:
			guidance = GuidanceInvalidInput
		case http.StatusInternalServerError, http.StatusServiceUnavailable:
			guidance = "The service encountered an error. This is likely temporary, please try again later."
		default:
			guidance = GuidanceGeneral
		}
	}

	return &APIError{
		Service:     service,
		StatusCode:  statusCode,
		Message:     message,
		Recoverable: statusCode != http.StatusBadRequest,
		Guidance:    guidance,
	}
}

// newStatusError creates an APIError for a Maps API response whose status
// field indicates failure despite a successful HTTP exchange.
func newStatusError(service, status, errorMessage string) *APIError {
	guidance := GuidanceGeneral
	switch status {
	case "REQUEST_DENIED":
		guidance = GuidanceRequestDenied
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		guidance = GuidanceQuotaExceeded
	case "INVALID_REQUEST":
		guidance = GuidanceInvalidInput
	}
	if errorMessage == "" {
		errorMessage = "the service rejected the request"
	}
	return &APIError{
		Service:     service,
		StatusCode:  http.StatusOK,
		Status:      status,
		Message:     errorMessage,
		Recoverable: status != "INVALID_REQUEST",
		Guidance:    guidance,
	}
}
