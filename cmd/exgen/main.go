package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"

	"github.com/mbenitez/exgen/internal/config"
	"github.com/mbenitez/exgen/internal/docs"
	"github.com/mbenitez/exgen/internal/exercise"
	"github.com/mbenitez/exgen/internal/generate"
	"github.com/mbenitez/exgen/internal/manifest"
	"github.com/mbenitez/exgen/internal/scaffold"
	"github.com/mbenitez/exgen/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "exgen",
		Usage:       "Generate LaTeX exercise files from a template",
		Description: "Run 'exgen docs' for documentation on metadata fields, filenames, and templates.",
		Commands: []*cli.Command{
			newCmd(),
			initCmd(),
			listCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Generate a new exercise file from the template",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Usage: "Exercise source: section or review", Value: "section"},
			&cli.IntFlag{Name: "chapter", Usage: "Chapter number"},
			&cli.StringFlag{Name: "section", Usage: "Section id, e.g. 1.1 (section exercises only)"},
			&cli.IntFlag{Name: "number", Usage: "Exercise number"},
			&cli.StringFlag{Name: "variant", Usage: "Optional variant letter, e.g. a"},
			&cli.StringFlag{Name: "slug", Usage: "Short identifier for the filename"},
			&cli.StringFlag{Name: "title", Usage: "Display title (derived from slug when omitted)"},
			&cli.StringFlag{Name: "template", Usage: "Template path (overrides config)"},
			&cli.StringFlag{Name: "out", Usage: "Output directory (overrides config)"},
			&cli.StringFlag{Name: "prefix", Usage: "Series prefix (overrides config)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the filename and field values without writing"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			source, err := exercise.ParseSource(cmd.String("source"))
			if err != nil {
				return err
			}
			meta := &exercise.Metadata{
				Source:  source,
				Chapter: int(cmd.Int("chapter")),
				Section: cmd.String("section"),
				Number:  int(cmd.Int("number")),
				Variant: cmd.String("variant"),
				Slug:    cmd.String("slug"),
				Title:   cmd.String("title"),
			}
			if err := meta.Validate(); err != nil {
				return err
			}

			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			if cmd.Bool("dry-run") {
				filename, err := exercise.Filename(meta, opts.Prefix)
				if err != nil {
					return err
				}
				ux.DryRun(filename, generate.FieldsFor(meta))
				return nil
			}

			res, err := generate.Run(meta, opts)
			if err != nil {
				return err
			}
			ux.Generated(res.Path)
			return nil
		},
	}
}

// resolveOptions builds generation options from config, environment, and
// flags, in increasing order of precedence. Works without a project: a
// bare --template falls back to cwd-relative defaults and skips the
// manifest.
func resolveOptions(cmd *cli.Command) (generate.Options, error) {
	var opts generate.Options

	projectRoot, err := findProjectRoot()
	if err == nil {
		configPath := filepath.Join(projectRoot, ".exgen", "config.yaml")
		cfg, err := config.Load(configPath)
		if err != nil {
			return opts, fmt.Errorf("loading config: %w", err)
		}
		_ = godotenv.Load()
		config.ApplyEnv(cfg, os.Getenv)

		opts.TemplatePath = filepath.Join(projectRoot, cfg.Template)
		opts.OutputDir = filepath.Join(projectRoot, cfg.OutputDir)
		opts.Prefix = cfg.Prefix
		opts.ExgenDir = filepath.Join(projectRoot, ".exgen")
	} else {
		if cmd.String("template") == "" {
			return opts, fmt.Errorf("%v (run 'exgen init' or pass --template)", err)
		}
		opts.OutputDir = "exercises"
	}

	if v := cmd.String("template"); v != "" {
		opts.TemplatePath = v
	}
	if v := cmd.String("out"); v != "" {
		opts.OutputDir = v
	}
	if v := cmd.String("prefix"); v != "" {
		opts.Prefix = v
	}
	return opts, nil
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new .exgen/ directory with config and template",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List generated exercises from the manifest",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectRoot, err := findProjectRoot()
			if err != nil {
				return err
			}
			man, err := manifest.Load(filepath.Join(projectRoot, ".exgen"))
			if err != nil {
				return fmt.Errorf("loading manifest: %w", err)
			}
			ux.RenderList(man)
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'exgen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// findProjectRoot walks up from cwd looking for .exgen/config.yaml.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		configPath := filepath.Join(dir, ".exgen", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .exgen/config.yaml found (searched from cwd to root)")
		}
		dir = parent
	}
}
