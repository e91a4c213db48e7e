package exercise

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug converts s to lowercase kebab-case: runs of
// non-alphanumeric characters collapse to a single hyphen and leading or
// trailing hyphens are trimmed. Idempotent for already-normalized input.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// TitleFromSlug derives a display title from a normalized slug:
// "functions-and-relations" becomes "Functions And Relations".
// Total — an empty slug yields an empty title.
func TitleFromSlug(slug string) string {
	if slug == "" {
		return ""
	}
	parts := strings.Split(slug, "-")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(words, " ")
}
