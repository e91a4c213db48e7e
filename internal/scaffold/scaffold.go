// Package scaffold creates a fresh .exgen/ project directory.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbenitez/exgen/internal/ux"
)

var configTemplate = `name: my-solutions
# prefix identifies the document series in every generated filename.
prefix: abramson-2021
template: .exgen/templates/exercise.tex
output-dir: exercises
`

var exerciseTemplate = `% Exercise metadata. These declarations are rewritten by 'exgen new';
% the values below are placeholders.
\newcommand{\exSource}{section}
\newcommand{\exChapter}{1}
\newcommand{\exSection}{1.1}
\newcommand{\exNumber}{1}
\newcommand{\exVariant}{}
\newcommand{\exTitle}{Exercise Title}

\documentclass[11pt]{article}
\usepackage{amsmath,amssymb}

\begin{document}

\section*{\exTitle}
\noindent\textit{Chapter \exChapter, \exSource\ \exSection, exercise \exNumber\exVariant}

% Problem statement goes here.

\subsection*{Solution}

% Solution goes here.

\end{document}
`

// Init creates a new .exgen/ directory with a config, a default exercise
// template, and an empty output directory.
func Init(targetDir string) error {
	exgenDir := filepath.Join(targetDir, ".exgen")
	if _, err := os.Stat(exgenDir); err == nil {
		return fmt.Errorf(".exgen directory already exists in %s", targetDir)
	}

	templatesDir := filepath.Join(exgenDir, "templates")
	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		return fmt.Errorf("creating .exgen/templates: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(targetDir, "exercises"), 0755); err != nil {
		return fmt.Errorf("creating exercises dir: %w", err)
	}

	configPath := filepath.Join(exgenDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}

	templatePath := filepath.Join(templatesDir, "exercise.tex")
	if err := os.WriteFile(templatePath, []byte(exerciseTemplate), 0644); err != nil {
		return fmt.Errorf("writing exercise.tex: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized .exgen/ directory%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s.exgen/config.yaml%s            — project configuration\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %s.exgen/templates/exercise.tex%s — default exercise template\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %sexercises/%s                    — output directory\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s.exgen/config.yaml%s to set your series prefix\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %sexgen new --source section --chapter 1 --section 1.1 --number 1 --slug my-first-exercise%s\n\n", ux.Cyan, ux.Reset)

	return nil
}
