package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settingsListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

func TestSettingsHandlers_CRUD(t *testing.T) {
	router := setupTestServer(t)

	// Empty to start.
	w := doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[settingsListResponse](t, w).Settings)

	// Put, get, list.
	w = doJSON(t, router, http.MethodPut, "/api/v1/settings/news.example.com", SettingRequestBody{Enabled: true})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeJSON[SettingResponse](t, w)
	assert.Equal(t, "news.example.com", created.Domain)
	assert.True(t, created.Enabled)
	assert.False(t, created.HideMagnitude)

	w = doJSON(t, router, http.MethodGet, "/api/v1/settings/news.example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Domain, decodeJSON[SettingResponse](t, w).Domain)

	w = doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[settingsListResponse](t, w).Settings, 1)

	// Delete, then gone.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/settings/news.example.com", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/settings/news.example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/settings/news.example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsHandlers_InvalidDomain(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPut, "/api/v1/settings/Example.com:8080", SettingRequestBody{Enabled: true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandlers_DomainNormalization(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodPut, "/api/v1/settings/Finance.Example.COM", SettingRequestBody{Enabled: true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "finance.example.com", decodeJSON[SettingResponse](t, w).Domain)

	w = doJSON(t, router, http.MethodGet, "/api/v1/settings/finance.example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
