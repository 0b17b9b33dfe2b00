package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is probed when no explicit path is given
const DefaultConfigPath = "vi-invaders.yaml"

//go:embed default.yaml
var embeddedDefault []byte

// Source reports where a loaded config came from
type Source string

const (
	SourceCustom   Source = "custom"
	SourceDefault  Source = "default"
	SourceEmbedded Source = "embedded"
)

// LoadAuto loads config with priority: customPath > DefaultConfigPath > embedded
func LoadAuto(customPath string) (Config, Source, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		cfg, err := LoadFromPath(customPath)
		return cfg, SourceCustom, err
	}

	// Priority 2: Default external config
	if fileExists(DefaultConfigPath) {
		cfg, err := LoadFromPath(DefaultConfigPath)
		return cfg, SourceDefault, err
	}

	// Priority 3: Embedded fallback
	cfg, err := Parse(embeddedDefault)
	return cfg, SourceEmbedded, err
}

// LoadFromPath reads and parses a YAML file
func LoadFromPath(configPath string) (Config, error) {
	if !fileExists(configPath) {
		return Config{}, fmt.Errorf("config file not found: %s", configPath)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", configPath, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result
// Keys absent from the document keep their default values
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
