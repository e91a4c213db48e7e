package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// prefixRe matches lowercase kebab-case series prefixes like abramson-2021.
var prefixRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("config: 'name' is required")
	}

	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if !prefixRe.MatchString(cfg.Prefix) {
		return fmt.Errorf("config: prefix %q must be lowercase kebab-case (e.g. abramson-2021)", cfg.Prefix)
	}

	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if filepath.IsAbs(cfg.Template) {
		return fmt.Errorf("config: 'template' must be relative to the project root, got %q", cfg.Template)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if filepath.IsAbs(cfg.OutputDir) {
		return fmt.Errorf("config: 'output-dir' must be relative to the project root, got %q", cfg.OutputDir)
	}

	return nil
}

// ApplyEnv overrides config fields from EXGEN_* environment variables.
// Used after an optional .env load so one-off runs can redirect output
// without editing the config.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("EXGEN_PREFIX"); v != "" {
		cfg.Prefix = v
	}
	if v := getenv("EXGEN_TEMPLATE"); v != "" {
		cfg.Template = v
	}
	if v := getenv("EXGEN_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
}
