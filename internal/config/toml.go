// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Report   ReportConfig   `toml:"report"`
}

// AnalysisConfig maps repertoire and analysis settings.
type AnalysisConfig struct {
	Source  *string `toml:"source"`
	Input   *string `toml:"input"`
	Refresh *bool   `toml:"refresh"`
}

// ReportConfig maps report output settings.
type ReportConfig struct {
	Output      *string `toml:"output"`
	Format      *string `toml:"format"`
	Color       *bool   `toml:"color"`
	Occurrences *bool   `toml:"occurrences"`
	Font        *string `toml:"font"`
	FontBold    *string `toml:"font-bold"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
