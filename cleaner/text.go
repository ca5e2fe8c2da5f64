// Package cleaner normalizes free-text fields from the marketplace API
// into plain, single-spaced text.
package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	reTag        = regexp.MustCompile(`<[^>]+>`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// StripHTML removes markup from a text blob and collapses whitespace.
// Entities are decoded before tags are dropped, so an entity-encoded
// fragment resolves to its real characters before the tag pattern runs.
func StripHTML(text string) string {
	if text == "" {
		return ""
	}
	t := html.UnescapeString(text)
	t = reTag.ReplaceAllString(t, " ")
	t = reWhitespace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
