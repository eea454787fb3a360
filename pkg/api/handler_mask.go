package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/numveil/numveil/pkg/masking"
	"github.com/numveil/numveil/pkg/services"
)

// maskHandler handles POST /api/v1/mask.
// The DOM walker sends batches of text nodes through here; the response
// text is applied to the page verbatim. An empty text field is valid and
// comes back empty.
func (s *Server) maskHandler(c *gin.Context) {
	var req MaskRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.MaskInput{
		Text:   req.Text,
		Domain: req.Domain,
	}
	if req.Config != nil {
		input.Config = &masking.Config{
			Enabled:       req.Config.Enabled,
			HideMagnitude: req.Config.HideMagnitude,
		}
	}

	masked, err := s.maskSvc.MaskText(c.Request.Context(), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MaskResponse{Masked: masked})
}

// maskBatchHandler handles POST /api/v1/mask/batch. The configuration is
// resolved once per batch, so a settings change mid-request cannot split a
// page between two configurations.
func (s *Server) maskBatchHandler(c *gin.Context) {
	var req MaskBatchRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cfg *masking.Config
	if req.Config != nil {
		cfg = &masking.Config{
			Enabled:       req.Config.Enabled,
			HideMagnitude: req.Config.HideMagnitude,
		}
	}

	masked, err := s.maskSvc.MaskBatch(c.Request.Context(), req.Domain, cfg, req.Texts)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MaskBatchResponse{Masked: masked})
}
