package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional configuration file looked up in the
// config directory.
const ConfigFileName = "numveil.yaml"

// numveilYAMLConfig represents the complete numveil.yaml file structure.
type numveilYAMLConfig struct {
	Defaults *Defaults               `yaml:"defaults"`
	Sites    map[string]SiteOverride `yaml:"sites"`
}

// builtinDefaults are the values used when numveil.yaml is absent or
// leaves fields unset. Masking starts disabled so a fresh deployment
// never alters page text until someone opts a site in.
func builtinDefaults() Defaults {
	return Defaults{
		Enabled:       false,
		HideMagnitude: false,
	}
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read numveil.yaml from configDir (missing file is not an error)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge parsed values over built-in defaults
//  5. Validate site domain keys
//  6. Build the in-memory site registry
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	yamlCfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	defaults := builtinDefaults()
	if yamlCfg.Defaults != nil {
		if err := mergo.Merge(yamlCfg.Defaults, defaults); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
		defaults = *yamlCfg.Defaults
	}

	if err := validateSites(yamlCfg.Sites); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		Defaults: defaults,
		Sites:    NewSiteRegistry(yamlCfg.Sites),
	}

	log.Info("Configuration initialized",
		"masking_enabled_default", cfg.Defaults.Enabled,
		"hide_magnitude_default", cfg.Defaults.HideMagnitude,
		"static_site_overrides", len(yamlCfg.Sites))

	return cfg, nil
}

// load reads and parses numveil.yaml. A missing file yields an empty
// configuration — the system runs on built-in defaults alone.
func load(configDir string) (*numveilYAMLConfig, error) {
	path := filepath.Join(configDir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using built-in defaults", "path", path)
			return &numveilYAMLConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = ExpandEnv(data)

	var cfg numveilYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}
