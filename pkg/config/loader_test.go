package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitialize_MissingFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	// Built-in defaults: masking off, character-preserving.
	assert.False(t, cfg.Defaults.Enabled)
	assert.False(t, cfg.Defaults.HideMagnitude)
	assert.Empty(t, cfg.Sites.Domains())
}

func TestInitialize_FullFile(t *testing.T) {
	dir := writeConfigFile(t, `
defaults:
  enabled: true
  hide_magnitude: false
sites:
  finance.example.com:
    hide_magnitude: true
  news.example.com:
    enabled: false
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, cfg.Defaults.Enabled)
	assert.False(t, cfg.Defaults.HideMagnitude)

	o, ok := cfg.Sites.Get("finance.example.com")
	require.True(t, ok)
	require.NotNil(t, o.HideMagnitude)
	assert.True(t, *o.HideMagnitude)
	assert.Nil(t, o.Enabled, "unset fields must stay nil for field-by-field resolution")

	_, ok = cfg.Sites.Get("unknown.example.com")
	assert.False(t, ok)
}

func TestInitialize_PartialDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
defaults:
  enabled: true
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, cfg.Defaults.Enabled)
	assert.False(t, cfg.Defaults.HideMagnitude, "unset default fields fall back to built-ins")
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigFile(t, "defaults: [not a mapping")

	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}

func TestInitialize_InvalidSiteDomains(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"scheme", "sites:\n  \"https://example.com\": {enabled: true}\n"},
		{"path", "sites:\n  \"example.com/app\": {enabled: true}\n"},
		{"port", "sites:\n  \"example.com:8080\": {enabled: true}\n"},
		{"uppercase", "sites:\n  \"Example.com\": {enabled: true}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigFile(t, tt.content)
			_, err := Initialize(context.Background(), dir)
			assert.Error(t, err)
		})
	}
}

func TestSiteOverride_Apply(t *testing.T) {
	base := builtinDefaults().MaskingConfig()

	boolPtr := func(b bool) *bool { return &b }

	// Empty override inherits everything.
	assert.Equal(t, base, SiteOverride{}.Apply(base))

	// Set fields win, unset fields inherit.
	got := SiteOverride{Enabled: boolPtr(true)}.Apply(base)
	assert.True(t, got.Enabled)
	assert.False(t, got.HideMagnitude)

	got = SiteOverride{Enabled: boolPtr(true), HideMagnitude: boolPtr(true)}.Apply(base)
	assert.True(t, got.Enabled)
	assert.True(t, got.HideMagnitude)
}
