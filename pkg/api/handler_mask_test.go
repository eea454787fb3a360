package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskHandler_DefaultConfig(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mask", MaskRequestBody{
		Text: "Price: $10,000.50 on Nov 22, 2025",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[MaskResponse](t, w)
	assert.Equal(t, "Price: $••,•••.•• on Nov 22, 2025", resp.Masked)
}

func TestMaskHandler_ExplicitConfig(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mask", MaskRequestBody{
		Text:   "Revenue: 10M",
		Config: &MaskConfigBody{Enabled: true, HideMagnitude: true},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Revenue: •••", decodeJSON[MaskResponse](t, w).Masked)

	// Explicitly disabled: passthrough even though the default enables masking.
	w = doJSON(t, router, http.MethodPost, "/api/v1/mask", MaskRequestBody{
		Text:   "Revenue: 10M",
		Config: &MaskConfigBody{Enabled: false},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Revenue: 10M", decodeJSON[MaskResponse](t, w).Masked)
}

func TestMaskHandler_DomainSetting(t *testing.T) {
	router := setupTestServer(t)

	// Store a hide-magnitude setting, then mask with only the domain.
	w := doJSON(t, router, http.MethodPut, "/api/v1/settings/finance.example.com", SettingRequestBody{
		Enabled:       true,
		HideMagnitude: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/mask", MaskRequestBody{
		Text:   "total 10,000",
		Domain: "finance.example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "total •••", decodeJSON[MaskResponse](t, w).Masked)
}

func TestMaskBatchHandler(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mask/batch", MaskBatchRequestBody{
		Texts: []string{"Price: $10,000.50", "Nov 22, 2025", "twenty visitors"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[MaskBatchResponse](t, w)
	assert.Equal(t, []string{"Price: $••,•••.••", "Nov 22, 2025", "•••••• visitors"}, resp.Masked)
}

func TestMaskBatchHandler_ExplicitDisabled(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mask/batch", MaskBatchRequestBody{
		Texts:  []string{"Revenue: 10M", "total 42"},
		Config: &MaskConfigBody{Enabled: false},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Revenue: 10M", "total 42"}, decodeJSON[MaskBatchResponse](t, w).Masked)
}

func TestMaskHandler_EmptyText(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mask", MaskRequestBody{Text: ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", decodeJSON[MaskResponse](t, w).Masked)
}

func TestMaskHandler_InvalidBody(t *testing.T) {
	router := setupTestServer(t)

	req := doJSON(t, router, http.MethodPost, "/api/v1/mask", nil)
	assert.Equal(t, http.StatusBadRequest, req.Code)
}
