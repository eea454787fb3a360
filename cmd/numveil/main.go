// numveil server — masks numeric content for the browser extension's
// content scripts and manages per-site masking settings.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/numveil/numveil/pkg/api"
	"github.com/numveil/numveil/pkg/config"
	"github.com/numveil/numveil/pkg/database"
	"github.com/numveil/numveil/pkg/masking"
	"github.com/numveil/numveil/pkg/rpc"
	"github.com/numveil/numveil/pkg/services"
	"github.com/numveil/numveil/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	grpcPort := getEnv("GRPC_PORT", "50051")

	slog.Info("Starting numveil",
		"version", version.GitCommit,
		"http_port", httpPort,
		"grpc_port", grpcPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize the masking engine and domain services
	engine := masking.NewEngine()
	settingsService := services.NewSettingsService(dbClient.Client, cfg)
	maskService := services.NewMaskService(engine, settingsService)
	slog.Info("Services initialized")

	// 4. Create servers for both call sites: HTTP for the DOM walker,
	// gRPC for the canvas interceptor.
	httpServer := api.NewServer(dbClient, settingsService, maskService)
	grpcServer := rpc.NewServer(maskService)

	// 5. Start servers (non-blocking)
	errCh := make(chan error, 2)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()
	go func() {
		if err := grpcServer.Start(":" + grpcPort); err != nil {
			slog.Error("gRPC server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("numveil started successfully")

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown: drain gRPC streams first, then HTTP.
	done := make(chan struct{})
	go func() {
		grpcServer.Stop()
		close(done)
	}()

	grpcShutdownCtx, grpcCancel := context.WithTimeout(ctx, 10*time.Second)
	defer grpcCancel()
	select {
	case <-done:
		slog.Info("gRPC server stopped gracefully")
	case <-grpcShutdownCtx.Done():
		slog.Warn("gRPC shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
