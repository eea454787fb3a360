package api

import (
	"time"

	"github.com/numveil/numveil/ent"
	"github.com/numveil/numveil/pkg/database"
)

// MaskResponse is returned by POST /api/v1/mask.
type MaskResponse struct {
	Masked string `json:"masked"`
}

// MaskBatchResponse is returned by POST /api/v1/mask/batch.
// Masked entries are in the same order as the request texts.
type MaskBatchResponse struct {
	Masked []string `json:"masked"`
}

// SettingResponse describes one stored site setting.
type SettingResponse struct {
	Domain        string    `json:"domain"`
	Enabled       bool      `json:"enabled"`
	HideMagnitude bool      `json:"hide_magnitude"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// settingResponse converts an entity into its API representation.
func settingResponse(s *ent.SiteSetting) SettingResponse {
	return SettingResponse{
		Domain:        s.Domain,
		Enabled:       s.Enabled,
		HideMagnitude: s.HideMagnitude,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
}
