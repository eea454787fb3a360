package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/numveil/numveil/pkg/services"
)

// listSettingsHandler handles GET /api/v1/settings.
func (s *Server) listSettingsHandler(c *gin.Context) {
	settings, err := s.settings.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	out := make([]SettingResponse, 0, len(settings))
	for _, setting := range settings {
		out = append(out, settingResponse(setting))
	}
	c.JSON(http.StatusOK, gin.H{"settings": out})
}

// getSettingHandler handles GET /api/v1/settings/:domain.
func (s *Server) getSettingHandler(c *gin.Context) {
	setting, err := s.settings.Get(c.Request.Context(), c.Param("domain"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingResponse(setting))
}

// putSettingHandler handles PUT /api/v1/settings/:domain.
// The toolbar popup writes through here when the user toggles masking for
// the current site.
func (s *Server) putSettingHandler(c *gin.Context) {
	var req SettingRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := s.settings.Upsert(c.Request.Context(), services.UpsertSettingInput{
		Domain:        c.Param("domain"),
		Enabled:       req.Enabled,
		HideMagnitude: req.HideMagnitude,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingResponse(setting))
}

// deleteSettingHandler handles DELETE /api/v1/settings/:domain.
// The domain falls back to its static override or the defaults.
func (s *Server) deleteSettingHandler(c *gin.Context) {
	if err := s.settings.Delete(c.Request.Context(), c.Param("domain")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
