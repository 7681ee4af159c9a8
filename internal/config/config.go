package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/connstats/internal/connector"
)

// Config holds all runtime configuration for a summarize run.
type Config struct {
	Connector   string // builtin profile name; ignored when ProfilePath is set
	ProfilePath string // YAML profile for a custom connector
	InputDir    string
	OutputDir   string
	LogFormat   string // "text" or "json"
	LogLevel    string
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Connector string `yaml:"connector"`
	Profile   string `yaml:"profile"`
	Output    string `yaml:"output"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set from flags take precedence over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.Connector == "" {
		c.Connector = yc.Connector
	}
	if c.ProfilePath == "" {
		c.ProfilePath = yc.Profile
	}
	if c.OutputDir == "" {
		c.OutputDir = yc.Output
	}
	return nil
}

// ResolveProfile returns the connector profile the run should use: a custom
// YAML profile when given, otherwise a builtin by name.
func (c *Config) ResolveProfile() (*connector.Profile, error) {
	if c.ProfilePath != "" {
		return connector.LoadProfile(c.ProfilePath)
	}
	if c.Connector == "" {
		return nil, fmt.Errorf("--connector or --profile is required")
	}
	p, ok := connector.ByName(c.Connector)
	if !ok {
		return nil, fmt.Errorf("unknown connector %q (known: %v)", c.Connector, connector.Names())
	}
	return p, nil
}

// Validate checks the input fields and returns an error if the config is invalid.
func (c *Config) Validate(extraFiles []string) error {
	if c.InputDir == "" && len(extraFiles) == 0 {
		return fmt.Errorf("--dir or at least one file argument is required")
	}
	if c.InputDir != "" {
		info, err := os.Stat(c.InputDir)
		if err != nil {
			return fmt.Errorf("input dir not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("--dir %s is not a directory", c.InputDir)
		}
	}
	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err != nil || !info.IsDir() {
			return fmt.Errorf("output dir %s is not a directory", c.OutputDir)
		}
	}
	return nil
}
