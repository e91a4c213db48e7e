package ux

import (
	"fmt"

	"github.com/mbenitez/exgen/internal/manifest"
)

// RenderList prints the generated-exercise manifest, oldest first.
func RenderList(man *manifest.Manifest) {
	if len(man.Exercises) == 0 {
		fmt.Printf("%sNo exercises generated yet.%s Run 'exgen new' to create one.\n", Dim, Reset)
		return
	}

	fmt.Printf("%s%d generated exercise(s):%s\n\n", Bold, len(man.Exercises), Reset)
	for _, r := range man.Exercises {
		where := fmt.Sprintf("ch %d review", r.Chapter)
		if r.Source == "section" {
			where = "sec " + r.Section
		}
		variant := ""
		if r.Variant != "" {
			variant = r.Variant
		}
		fmt.Printf("  %s%-12s%s ex %d%s  %s\n", Dim, where, Reset, r.Number, variant, r.Title)
		fmt.Printf("    %s%s%s\n", Cyan, r.File, Reset)
	}
}
