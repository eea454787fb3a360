package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numveil/numveil/pkg/masking"
)

func setupTestMaskService(t *testing.T) *MaskService {
	settings, _ := setupTestSettingsService(t)
	return NewMaskService(masking.NewEngine(), settings)
}

func TestMaskService_ExplicitConfig(t *testing.T) {
	svc := setupTestMaskService(t)
	ctx := context.Background()

	// An explicit config bypasses settings resolution entirely.
	got, err := svc.MaskText(ctx, MaskInput{
		Text:   "Revenue: 10M",
		Domain: "unknown.example.com",
		Config: &masking.Config{Enabled: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Revenue: •••", got)

	got, err = svc.MaskText(ctx, MaskInput{
		Text:   "Revenue: 10M",
		Config: &masking.Config{Enabled: false},
	})
	require.NoError(t, err)
	assert.Equal(t, "Revenue: 10M", got)
}

func TestMaskService_ResolvedConfig(t *testing.T) {
	svc := setupTestMaskService(t)
	ctx := context.Background()

	// Defaults: masking off, passthrough.
	got, err := svc.MaskText(ctx, MaskInput{Text: "total 42", Domain: "unknown.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "total 42", got)

	// static.example.com is enabled via the static override.
	got, err = svc.MaskText(ctx, MaskInput{Text: "total 42", Domain: "static.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "total ••", got)

	// Stored settings flip the policy for the same domain.
	_, err = svc.settings.Upsert(ctx, UpsertSettingInput{
		Domain: "static.example.com", Enabled: true, HideMagnitude: true,
	})
	require.NoError(t, err)

	got, err = svc.MaskText(ctx, MaskInput{Text: "total 42", Domain: "static.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "total •••", got)
}

func TestMaskService_MaskBatch(t *testing.T) {
	svc := setupTestMaskService(t)
	ctx := context.Background()

	texts := []string{
		"Price: $10,000.50",
		"Nov 22, 2025",
		"twenty three sales",
		"",
	}

	got, err := svc.MaskBatch(ctx, "static.example.com", nil, texts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Price: $••,•••.••",
		"Nov 22, 2025",
		"•••••• ••••• sales",
		"",
	}, got)

	// Explicit disabled config short-circuits the whole batch.
	got, err = svc.MaskBatch(ctx, "", &masking.Config{Enabled: false}, texts)
	require.NoError(t, err)
	assert.Equal(t, texts, got)

	// Empty batch is valid.
	got, err = svc.MaskBatch(ctx, "static.example.com", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMaskService_ResolveConfig(t *testing.T) {
	svc := setupTestMaskService(t)

	cfg, err := svc.ResolveConfig(context.Background(), MaskInput{Domain: "static.example.com"})
	require.NoError(t, err)
	assert.Equal(t, masking.Config{Enabled: true}, cfg)
}
