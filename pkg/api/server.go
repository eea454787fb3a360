// Package api implements the HTTP surface consumed by the extension's DOM
// text walker: masking requests and per-site settings management.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/numveil/numveil/pkg/database"
	"github.com/numveil/numveil/pkg/services"
)

// Server represents the HTTP API server.
type Server struct {
	dbClient   *database.Client
	settings   *services.SettingsService
	maskSvc    *services.MaskService
	httpServer *http.Server
}

// NewServer creates a new API server with all routes registered.
func NewServer(dbClient *database.Client, settings *services.SettingsService, maskSvc *services.MaskService) *Server {
	s := &Server{
		dbClient: dbClient,
		settings: settings,
		maskSvc:  maskSvc,
	}
	return s
}

// Router builds the gin engine with middleware and routes. Exposed for
// handler tests.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(securityHeaders())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/mask", s.maskHandler)
		v1.POST("/mask/batch", s.maskBatchHandler)
		v1.GET("/settings", s.listSettingsHandler)
		v1.GET("/settings/:domain", s.getSettingHandler)
		v1.PUT("/settings/:domain", s.putSettingHandler)
		v1.DELETE("/settings/:domain", s.deleteSettingHandler)
	}

	return router
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
