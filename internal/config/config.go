// Package config loads and validates the project configuration at
// .exgen/config.yaml.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the project-level configuration for exgen.
type Config struct {
	Name      string `yaml:"name"`
	Prefix    string `yaml:"prefix"`     // document series prefix for filenames
	Template  string `yaml:"template"`   // template path, relative to project root
	OutputDir string `yaml:"output-dir"` // where generated .tex files go
}

// Defaults applied by Validate when a field is unset.
const (
	DefaultPrefix    = "abramson-2021"
	DefaultTemplate  = ".exgen/templates/exercise.tex"
	DefaultOutputDir = "exercises"
)

// Load reads a YAML config file and returns a validated Config with
// defaults applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
