// Package config loads and validates numveil's configuration: system-wide
// masking defaults plus static per-site overrides from an optional YAML
// file. Dynamic per-site settings live in the database and are layered on
// top by the services package.
package config

import (
	"github.com/numveil/numveil/pkg/masking"
)

// Config is the fully resolved, ready-to-use configuration.
type Config struct {
	// Defaults are the system-wide masking defaults applied when a domain
	// has neither a static override nor a stored setting.
	Defaults Defaults

	// Sites holds static per-domain overrides from numveil.yaml.
	Sites *SiteRegistry
}

// Defaults holds the documented system-wide defaults. A missing or partial
// configuration file falls back to these: masking off, character-preserving
// policy. This is the caller-side defaulting the engine relies on — a
// malformed configuration never reaches the engine.
type Defaults struct {
	Enabled       bool `yaml:"enabled"`
	HideMagnitude bool `yaml:"hide_magnitude"`
}

// MaskingConfig converts the defaults into an engine configuration.
func (d Defaults) MaskingConfig() masking.Config {
	return masking.Config{
		Enabled:       d.Enabled,
		HideMagnitude: d.HideMagnitude,
	}
}

// SiteOverride is a static per-domain override. Fields are pointers:
// a nil field means "inherit", a set field wins over the default for that
// field only. Resolution is explicit, field by field — no generic
// structure merging.
type SiteOverride struct {
	Enabled       *bool `yaml:"enabled,omitempty"`
	HideMagnitude *bool `yaml:"hide_magnitude,omitempty"`
}

// Apply layers the override onto base, returning the effective config.
func (o SiteOverride) Apply(base masking.Config) masking.Config {
	if o.Enabled != nil {
		base.Enabled = *o.Enabled
	}
	if o.HideMagnitude != nil {
		base.HideMagnitude = *o.HideMagnitude
	}
	return base
}
