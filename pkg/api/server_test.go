package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/numveil/numveil/pkg/config"
	"github.com/numveil/numveil/pkg/masking"
	"github.com/numveil/numveil/pkg/services"
	testdb "github.com/numveil/numveil/test/database"
)

// setupTestServer builds a router backed by a real database schema, with
// masking enabled by default so handler tests exercise actual
// substitution.
func setupTestServer(t *testing.T) *gin.Engine {
	dbClient := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults: config.Defaults{Enabled: true},
		Sites:    config.NewSiteRegistry(nil),
	}

	settings := services.NewSettingsService(dbClient.Client, cfg)
	maskSvc := services.NewMaskService(masking.NewEngine(), settings)

	return NewServer(dbClient, settings, maskSvc).Router()
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthHandler(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[HealthResponse](t, w)
	require.Equal(t, "healthy", resp.Status)
	require.NotNil(t, resp.Database)
}
