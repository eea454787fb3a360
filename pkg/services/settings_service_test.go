package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numveil/numveil/ent"
	"github.com/numveil/numveil/pkg/config"
	"github.com/numveil/numveil/pkg/masking"
	"github.com/numveil/numveil/test/util"
)

func boolPtr(b bool) *bool { return &b }

// setupTestSettingsService creates a SettingsService backed by a real
// database schema, with one static override for static.example.com.
func setupTestSettingsService(t *testing.T) (*SettingsService, *ent.Client) {
	entClient, _ := util.SetupTestDatabase(t)

	cfg := &config.Config{
		Defaults: config.Defaults{Enabled: false, HideMagnitude: false},
		Sites: config.NewSiteRegistry(map[string]config.SiteOverride{
			"static.example.com": {Enabled: boolPtr(true)},
		}),
	}

	return NewSettingsService(entClient, cfg), entClient
}

func TestSettingsService_UpsertAndGet(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertSettingInput{
		Domain:        "finance.example.com",
		Enabled:       true,
		HideMagnitude: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "finance.example.com", created.Domain)
	assert.True(t, created.Enabled)
	assert.True(t, created.HideMagnitude)

	got, err := svc.Get(ctx, "finance.example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSettingsService_UpsertUpdatesExisting(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, UpsertSettingInput{Domain: "example.com", Enabled: true})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, UpsertSettingInput{Domain: "example.com", Enabled: false, HideMagnitude: true})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must update the existing row, not create a new one")
	assert.False(t, second.Enabled)
	assert.True(t, second.HideMagnitude)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingsService_UpsertNormalizesDomain(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertSettingInput{Domain: "  Finance.Example.COM ", Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, "finance.example.com", created.Domain)

	got, err := svc.Get(ctx, "FINANCE.example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSettingsService_UpsertInvalidDomain(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	tests := []string{
		"",
		"https://example.com",
		"example.com/path",
		"example.com:8080",
	}
	for _, domain := range tests {
		_, err := svc.Upsert(ctx, UpsertSettingInput{Domain: domain, Enabled: true})
		assert.True(t, IsValidationError(err), "domain %q must be rejected", domain)
	}
}

func TestSettingsService_GetNotFound(t *testing.T) {
	svc, _ := setupTestSettingsService(t)

	_, err := svc.Get(context.Background(), "missing.example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsService_List(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	for _, domain := range []string{"b.example.com", "a.example.com", "c.example.com"} {
		_, err := svc.Upsert(ctx, UpsertSettingInput{Domain: domain, Enabled: true})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a.example.com", all[0].Domain)
	assert.Equal(t, "b.example.com", all[1].Domain)
	assert.Equal(t, "c.example.com", all[2].Domain)
}

func TestSettingsService_Delete(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, UpsertSettingInput{Domain: "example.com", Enabled: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "example.com"))

	_, err = svc.Get(ctx, "example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "example.com"), ErrNotFound)
}

func TestSettingsService_Resolve(t *testing.T) {
	svc, _ := setupTestSettingsService(t)
	ctx := context.Background()

	// Unknown domain: defaults.
	cfg, err := svc.Resolve(ctx, "unknown.example.com")
	require.NoError(t, err)
	assert.Equal(t, masking.Config{Enabled: false, HideMagnitude: false}, cfg)

	// Static override layers onto defaults field by field.
	cfg, err = svc.Resolve(ctx, "static.example.com")
	require.NoError(t, err)
	assert.Equal(t, masking.Config{Enabled: true, HideMagnitude: false}, cfg)

	// A stored setting wins over the static override.
	_, err = svc.Upsert(ctx, UpsertSettingInput{Domain: "static.example.com", Enabled: false, HideMagnitude: true})
	require.NoError(t, err)

	cfg, err = svc.Resolve(ctx, "static.example.com")
	require.NoError(t, err)
	assert.Equal(t, masking.Config{Enabled: false, HideMagnitude: true}, cfg)

	// Resolution normalizes the reported hostname.
	cfg, err = svc.Resolve(ctx, "STATIC.example.com")
	require.NoError(t, err)
	assert.True(t, cfg.HideMagnitude)

	// Empty domain resolves to defaults, not an error.
	cfg, err = svc.Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, masking.Config{}, cfg)
}
