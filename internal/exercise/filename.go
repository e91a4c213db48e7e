package exercise

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix identifies the document series when no config overrides it.
const DefaultPrefix = "abramson-2021"

// Filename derives the canonical filename for m under the given series
// prefix. Pure: the same metadata always yields the same name.
//
//	section: <prefix>-sec-01-01-ex-06-functions-and-relations.tex
//	review:  <prefix>-ch-01-review-ex-01a-determine-function.tex
//
// Chapter, number, and section components are two-digit zero-padded so
// names sort in exercise order.
func Filename(m *Metadata, prefix string) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}

	number := fmt.Sprintf("%02d", m.Number)
	slug := NormalizeSlug(m.Slug)
	variant, err := normalizeVariant(m.Variant)
	if err != nil {
		return "", err
	}

	switch m.Source {
	case SourceSection:
		a, b, err := splitSection(m.Section)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s-sec-%02d-%02d-ex-%s%s-%s.tex", prefix, a, b, number, variant, slug), nil
	case SourceReview:
		return fmt.Sprintf("%s-ch-%02d-review-ex-%s%s-%s.tex", prefix, m.Chapter, number, variant, slug), nil
	default:
		return "", fmt.Errorf("%w: unknown source %q", ErrValidation, m.Source)
	}
}

// splitSection parses a "1.1" (or "1-1") section identifier into its two
// numeric components. Extra components beyond the first two are ignored.
func splitSection(section string) (int, int, error) {
	parts := strings.FieldsFunc(section, func(r rune) bool {
		return r == '.' || r == '-'
	})
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: section %q must have two dot-separated parts (e.g. 1.1)", ErrFormat, section)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: section %q: chapter part %q is not a number", ErrFormat, section, parts[0])
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: section %q: section part %q is not a number", ErrFormat, section, parts[1])
	}
	return a, b, nil
}
