// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// errorPayload is the structured error shape returned for validation and
// upstream failures. Callers branch on it, so the key name is stable.
type errorPayload struct {
	Error string `json:"error"`
}

// ErrorResult returns a structured {"error": message} tool result flagged
// as an error. Used for validation failures and transport failures, never
// for not-found outcomes, which are plain sentinel strings.
func ErrorResult(message string) *mcp.CallToolResult {
	data, err := json.Marshal(errorPayload{Error: message})
	if err != nil {
		return mcp.NewToolResultError(message)
	}
	return mcp.NewToolResultError(string(data))
}

// UpstreamErrorResult returns a structured error result for a failed
// provider call. Kept distinct from the not-found sentinels so callers
// can tell an outage apart from an empty answer.
func UpstreamErrorResult(operation string, err error) *mcp.CallToolResult {
	return ErrorResult(fmt.Sprintf("%s lookup failed: %v", operation, err))
}

// jsonResult marshals v as compact JSON into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return ErrorResult("failed to encode result"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
