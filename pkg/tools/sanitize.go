// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"regexp"
	"strings"
)

var (
	markupTag = regexp.MustCompile(`<[^>]*>`)
	spaceRun  = regexp.MustCompile(` {2,}`)
)

// stripMarkup removes HTML tags from provider-supplied instruction text,
// collapses runs of spaces, and trims the result. Idempotent.
func stripMarkup(s string) string {
	s = markupTag.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
