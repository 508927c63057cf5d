package tracelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a logger setup that can be loaded from a file.
type Config struct {
	// Threshold names the minimum severity to write ("DEBUG" .. "FATAL").
	// Empty keeps the InfoLevel default.
	Threshold string `yaml:"threshold" json:"threshold"`
	// File is the log file path; empty leaves the logger console-only.
	File string `yaml:"file" json:"file"`
	// Colorize enables colored console output.
	Colorize bool `yaml:"colorize" json:"colorize"`
}

// LoadConfig reads a Config from a YAML (.yaml/.yml) or JSON (.json) file,
// chosen by extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	return &cfg, nil
}

// Build constructs a Logger from the config, initializing the file sink
// when File is set. An unknown Threshold name is an error.
func (c Config) Build() (*Logger, error) {
	l := New()
	if c.Threshold != "" {
		s, err := ParseSeverity(c.Threshold)
		if err != nil {
			return nil, err
		}
		l.SetThreshold(s)
	}
	l.SetColorize(c.Colorize)
	if c.File != "" {
		l.Init(c.File)
	}
	return l, nil
}
