package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func minimalConfig() *Config {
	return &Config{Name: "abramson-solutions"}
}

func TestValidate_NameRequired(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'name' is required") {
		t.Fatalf("expected name required error, got %v", err)
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := minimalConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Prefix != DefaultPrefix {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, DefaultPrefix)
	}
	if cfg.Template != DefaultTemplate {
		t.Errorf("Template = %q, want %q", cfg.Template, DefaultTemplate)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
}

func TestValidate_BadPrefix(t *testing.T) {
	for _, prefix := range []string{"Abramson-2021", "abramson_2021", "-abramson", "a b"} {
		cfg := minimalConfig()
		cfg.Prefix = prefix
		if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "kebab-case") {
			t.Errorf("prefix %q: expected kebab-case error, got %v", prefix, err)
		}
	}
}

func TestValidate_AbsolutePathsRejected(t *testing.T) {
	cfg := minimalConfig()
	cfg.Template = "/etc/exercise.tex"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'template'") {
		t.Fatalf("got %v", err)
	}

	cfg = minimalConfig()
	cfg.OutputDir = "/var/exercises"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'output-dir'") {
		t.Fatalf("got %v", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "name: calc-notes\nprefix: stewart-2015\ntemplate: tex/template.tex\noutput-dir: out\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "calc-notes" || cfg.Prefix != "stewart-2015" || cfg.Template != "tex/template.tex" || cfg.OutputDir != "out" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := minimalConfig()
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{
		"EXGEN_PREFIX":     "openstax-2e",
		"EXGEN_OUTPUT_DIR": "generated",
	}
	ApplyEnv(cfg, func(k string) string { return env[k] })
	if cfg.Prefix != "openstax-2e" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
	if cfg.OutputDir != "generated" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Template != DefaultTemplate {
		t.Errorf("Template should be unchanged, got %q", cfg.Template)
	}
}
