// Package template loads exercise templates and fills in their metadata
// field declarations.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/mbenitez/exgen/internal/exercise"
)

// Fields holds the six values substituted into a template.
type Fields struct {
	Source  string // "section" or "review"
	Chapter string
	Section string // single space when not applicable
	Number  string
	Variant string // "(a)" display form, or empty
	Title   string
}

// Load reads a template file. A missing file is reported as a not-found
// error naming the path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: template %s", exercise.ErrNotFound, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Render replaces each of the six \newcommand field declarations in text
// with its value from f. Each field is replaced exactly once (first
// occurrence); everything else is preserved byte-for-byte. A field
// missing from the template is a hard error — silently emitting an
// incomplete document is worse than failing early.
func Render(text string, f Fields) (string, error) {
	subs := []struct {
		name  string
		value string
	}{
		{"exSource", f.Source},
		{"exChapter", f.Chapter},
		{"exSection", f.Section},
		{"exNumber", f.Number},
		{"exVariant", f.Variant},
		{"exTitle", f.Title},
	}
	for _, s := range subs {
		out, err := setField(text, s.name, s.value)
		if err != nil {
			return "", err
		}
		text = out
	}
	return text, nil
}

// setField rewrites the first \newcommand{\name}{...} declaration so its
// body is value. The search is pattern-based but the replacement is a
// plain string splice: value goes in literally, never reinterpreted as a
// replacement pattern (a backslash or $ in a title must survive as-is).
func setField(text, name, value string) (string, error) {
	re := regexp.MustCompile(`\\newcommand\{\\` + regexp.QuoteMeta(name) + `\}\{[^}]*\}`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", fmt.Errorf("%w: template has no \\newcommand{\\%s} declaration", exercise.ErrFormat, name)
	}
	return text[:loc[0]] + `\newcommand{\` + name + `}{` + value + `}` + text[loc[1]:], nil
}
