package exercise

import (
	"fmt"
	"strings"
)

// Source classifies where an exercise originates.
type Source string

const (
	// SourceSection is an exercise from a numbered section (e.g. 1.1).
	SourceSection Source = "section"
	// SourceReview is an exercise from a chapter-end review.
	SourceReview Source = "review"
)

// ParseSource converts a CLI string into a Source.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "section":
		return SourceSection, nil
	case "review":
		return SourceReview, nil
	default:
		return "", fmt.Errorf("%w: unknown source %q (must be section or review)", ErrValidation, s)
	}
}

// Metadata describes one exercise to generate. It is constructed per
// invocation, validated, consumed once, and discarded.
type Metadata struct {
	Source  Source
	Chapter int
	Section string // "1.1" form; required when Source is section
	Number  int
	Variant string // optional single letter; "(a)" and "A" inputs accepted
	Slug    string
	Title   string // optional; derived from Slug when empty
}

// Validate checks required fields and field combinations. It does not
// mutate m; normalization happens during derivation.
func (m *Metadata) Validate() error {
	if m.Chapter <= 0 {
		return fmt.Errorf("%w: chapter must be a positive integer (got %d)", ErrValidation, m.Chapter)
	}
	if m.Number <= 0 {
		return fmt.Errorf("%w: number must be a positive integer (got %d)", ErrValidation, m.Number)
	}
	if m.Source == SourceSection && strings.TrimSpace(m.Section) == "" {
		return fmt.Errorf("%w: section is required when source is %q", ErrValidation, SourceSection)
	}
	if m.Source == SourceSection {
		if _, _, err := splitSection(m.Section); err != nil {
			return err
		}
	}
	if NormalizeSlug(m.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrValidation)
	}
	if _, err := normalizeVariant(m.Variant); err != nil {
		return err
	}
	return nil
}

// DisplayTitle resolves the optional title: the explicit value when set,
// otherwise derived from the slug.
func (m *Metadata) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return TitleFromSlug(NormalizeSlug(m.Slug))
}

// DisplayVariant returns the parenthesized in-document form, e.g. "(a)",
// or the empty string when no variant is set.
func (m *Metadata) DisplayVariant() string {
	v, err := normalizeVariant(m.Variant)
	if err != nil || v == "" {
		return ""
	}
	return "(" + v + ")"
}

// DisplaySection returns the section for in-document use, or a single
// space when the exercise has no section (review exercises). A bare
// space keeps the template's field declaration non-empty.
func (m *Metadata) DisplaySection() string {
	if m.Source != SourceSection {
		return " "
	}
	return m.Section
}

// normalizeVariant reduces variant input to a bare lowercase letter.
// Accepts "", "a", "A", "(a)", "(A)". Anything longer is malformed.
func normalizeVariant(v string) (string, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "(")
	v = strings.TrimSuffix(v, ")")
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "", nil
	}
	if len(v) != 1 || v[0] < 'a' || v[0] > 'z' {
		return "", fmt.Errorf("%w: variant %q must be a single letter", ErrFormat, v)
	}
	return v, nil
}
