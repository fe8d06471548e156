// Package sanitize strips markup from user-supplied free text before it is
// stored and later rendered by the web client.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML and trims surrounding whitespace. Entities escaped by
// the policy are unescaped again since the value is stored as plain text.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Ptr applies Text to an optional value.
func Ptr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}
