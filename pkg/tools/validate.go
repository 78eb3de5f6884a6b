// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"fmt"
	"strings"
)

// allowedTravelModes are the travel modes the Directions and Distance
// Matrix APIs accept.
var allowedTravelModes = []string{"driving", "walking", "bicycling", "transit"}

// allowedQueryTypes are the input types the Find Place API accepts.
var allowedQueryTypes = []string{"textquery", "phonenumber"}

// ValidationError reports an enum parameter whose value is outside the
// allowed set. The message names the offending value and the full set.
type ValidationError struct {
	Param   string
	Value   string
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' is not one of the allowed %ss: [%s]",
		e.Value, e.Param, strings.Join(e.Allowed, ", "))
}

// validateTravelMode checks that mode is an accepted travel mode.
func validateTravelMode(mode string) error {
	for _, m := range allowedTravelModes {
		if mode == m {
			return nil
		}
	}
	return &ValidationError{Param: "travel mode", Value: mode, Allowed: allowedTravelModes}
}

// validateQueryType checks that inputType is an accepted place query type.
func validateQueryType(inputType string) error {
	for _, t := range allowedQueryTypes {
		if inputType == t {
			return nil
		}
	}
	return &ValidationError{Param: "query type", Value: inputType, Allowed: allowedQueryTypes}
}
