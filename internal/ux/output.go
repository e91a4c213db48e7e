// Package ux holds terminal output helpers for exgen.
package ux

import (
	"fmt"

	"github.com/mbenitez/exgen/internal/template"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Generated prints a success line for a written exercise file.
func Generated(path string) {
	fmt.Printf("%s%s✓ Generated%s %s\n", Bold, Green, Reset, path)
}

// DryRun prints the filename and field values that a generation would
// produce, without writing anything.
func DryRun(filename string, f template.Fields) {
	fmt.Printf("%sdry run — nothing written%s\n\n", Yellow, Reset)
	fmt.Printf("  %sFilename:%s %s\n\n", Bold, Reset, filename)
	rows := []struct{ name, value string }{
		{"exSource", f.Source},
		{"exChapter", f.Chapter},
		{"exSection", f.Section},
		{"exNumber", f.Number},
		{"exVariant", f.Variant},
		{"exTitle", f.Title},
	}
	for _, r := range rows {
		fmt.Printf("  %s%-10s%s %q\n", Dim, r.name, Reset, r.value)
	}
}
