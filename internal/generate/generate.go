// Package generate renders one exercise file from a template and writes
// it to the output directory.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mbenitez/exgen/internal/exercise"
	"github.com/mbenitez/exgen/internal/fsutil"
	"github.com/mbenitez/exgen/internal/manifest"
	"github.com/mbenitez/exgen/internal/template"
)

// Options is the explicit configuration for one generation: no ambient
// working-directory or default-path state.
type Options struct {
	TemplatePath string
	OutputDir    string
	Prefix       string // series prefix; exercise.DefaultPrefix when empty
	ExgenDir     string // project .exgen dir for the manifest; empty skips recording
}

// Result reports what a generation produced.
type Result struct {
	Filename string
	Path     string
	UID      string
}

// FieldsFor maps metadata onto the six template fields. Chapter and
// number appear unpadded in the document; padding is a filename concern.
func FieldsFor(m *exercise.Metadata) template.Fields {
	return template.Fields{
		Source:  string(m.Source),
		Chapter: strconv.Itoa(m.Chapter),
		Section: m.DisplaySection(),
		Number:  strconv.Itoa(m.Number),
		Variant: m.DisplayVariant(),
		Title:   m.DisplayTitle(),
	}
}

// Run validates m, derives the canonical filename, renders the template
// fully in memory, and writes the result atomically. On any error no
// partial file is left in the output directory.
func Run(m *exercise.Metadata, opts Options) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	filename, err := exercise.Filename(m, opts.Prefix)
	if err != nil {
		return nil, err
	}

	text, err := template.Load(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	rendered, err := template.Render(text, FieldsFor(m))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", opts.OutputDir, err)
	}

	outPath := filepath.Join(opts.OutputDir, filename)
	if err := fsutil.WriteFileAtomic(outPath, []byte(rendered), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	res := &Result{Filename: filename, Path: outPath, UID: manifest.UID(filename)}

	if opts.ExgenDir != "" {
		if err := record(m, res, opts.ExgenDir); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func record(m *exercise.Metadata, res *Result, exgenDir string) error {
	man, err := manifest.Load(exgenDir)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	section := ""
	if m.Source == exercise.SourceSection {
		section = m.Section
	}
	man.Upsert(manifest.Record{
		UID:     res.UID,
		File:    res.Filename,
		Source:  string(m.Source),
		Chapter: m.Chapter,
		Section: section,
		Number:  m.Number,
		Variant: m.DisplayVariant(),
		Slug:    exercise.NormalizeSlug(m.Slug),
		Title:   m.DisplayTitle(),
		Created: time.Now().UTC(),
	})
	if err := man.Save(exgenDir); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	return nil
}
