// Package models defines configuration and shared data structures.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultModel = "JF2"

// DefaultDrives is the drive scan order: E: through Z:.
var DefaultDrives = func() []string {
	var out []string
	for c := 'E'; c <= 'Z'; c++ {
		out = append(out, string(c))
	}
	return out
}()

// DefaultExcludedClasses are the accepted-part folders skipped during scans.
var DefaultExcludedClasses = []string{"01_ok_anode", "01_ok_cathode"}

// Config holds file-based defaults for CLI runs. Every field can be
// overridden by a flag; engines never read this directly.
type Config struct {
	Model            string   `yaml:"model"`
	Drives           []string `yaml:"drives"`
	OutputDir        string   `yaml:"output_dir"`
	IncludeActiveMap bool     `yaml:"include_activemap"`
	ExcludedClasses  []string `yaml:"excluded_classes"`
}

// LoadConfig reads a YAML config file. A missing file is not an error:
// it returns the built-in defaults so the tool works with flags alone.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Model:           DefaultModel,
		Drives:          append([]string(nil), DefaultDrives...),
		ExcludedClasses: append([]string(nil), DefaultExcludedClasses...),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if len(cfg.Drives) == 0 {
		cfg.Drives = append([]string(nil), DefaultDrives...)
	}
	if cfg.ExcludedClasses == nil {
		cfg.ExcludedClasses = append([]string(nil), DefaultExcludedClasses...)
	}

	return cfg, nil
}
