package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/numveil/numveil/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal response suitable for unauthenticated access; only the
// database dependency is checked.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.dbClient.Health(reqCtx)
	resp := HealthResponse{
		Status:   healthStatusHealthy,
		Version:  version.GitCommit,
		Database: dbHealth,
	}

	httpStatus := http.StatusOK
	if err != nil {
		resp.Status = healthStatusUnhealthy
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, resp)
}
