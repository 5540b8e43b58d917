// SPDX-License-Identifier: MIT

// Package config loads the tool's optional YAML configuration file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tool settings. Every field has a working default; a
// configuration file overrides selectively.
type Config struct {
	// OutputDir is where JSON, CSV and image files are written.
	OutputDir string `yaml:"output_dir"`

	// OutputFormat selects the export artifacts: json, csv or all.
	OutputFormat string `yaml:"output_format"`

	CSV CSVConfig `yaml:"csv"`
}

// CSVConfig holds the CSV export settings.
type CSVConfig struct {
	// Records are the record names merged into the CSV output.
	Records []string `yaml:"records"`

	// ChannelStartKeV adds the calculated keV column to spectrum rows.
	ChannelStartKeV bool `yaml:"channel_start_kev"`
}

// Default returns the settings used when no configuration file is present.
func Default() Config {
	return Config{
		OutputDir:    ".",
		OutputFormat: "all",
		CSV: CSVConfig{
			Records: []string{"XRF Spectrum"},
		},
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "all"
	}
	if len(cfg.CSV.Records) == 0 {
		cfg.CSV.Records = []string{"XRF Spectrum"}
	}
	return cfg, nil
}
