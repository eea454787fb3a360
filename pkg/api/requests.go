package api

// MaskConfigBody is the optional explicit configuration in a mask request.
// When present it is used verbatim; when absent the effective configuration
// is resolved from the domain's stored and static settings.
type MaskConfigBody struct {
	Enabled       bool `json:"enabled"`
	HideMagnitude bool `json:"hide_magnitude"`
}

// MaskRequestBody is the request body for POST /api/v1/mask.
type MaskRequestBody struct {
	Text   string          `json:"text"`
	Domain string          `json:"domain,omitempty"`
	Config *MaskConfigBody `json:"config,omitempty"`
}

// MaskBatchRequestBody is the request body for POST /api/v1/mask/batch.
// Texts are masked under one configuration, resolved once for the batch.
type MaskBatchRequestBody struct {
	Texts  []string        `json:"texts"`
	Domain string          `json:"domain,omitempty"`
	Config *MaskConfigBody `json:"config,omitempty"`
}

// SettingRequestBody is the request body for PUT /api/v1/settings/:domain.
type SettingRequestBody struct {
	Enabled       bool `json:"enabled"`
	HideMagnitude bool `json:"hide_magnitude"`
}
