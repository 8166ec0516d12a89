package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sahilvr03/GIS-AGENT/internal/config"
	"github.com/sahilvr03/GIS-AGENT/internal/logger"
	"github.com/sahilvr03/GIS-AGENT/internal/server"
	"github.com/sahilvr03/GIS-AGENT/internal/storage"
)

func main() {
	ctx := context.Background()

	// Optional .env for local development.
	if err := godotenv.Load(); err == nil {
		logger.Infof("Loaded environment from .env file")
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		logger.GetGlobalLogger().SetLevel(level)
	}
	if format, ok := logger.ParseFormat(cfg.LogFormat); ok {
		logger.GetGlobalLogger().SetFormat(format)
	}

	log := logger.GetGlobalLogger().WithComponent("main")
	log.Infof("Starting FarmBot GIS service on port %s", cfg.Port)
	log.Infof("Environment: %s", cfg.Environment)

	deploymentMode := storage.DeploymentLocal
	if cfg.Environment == "production" && cfg.GCSBucket != "" {
		deploymentMode = storage.DeploymentGCS
		log.Infof("GCS bucket: %s", cfg.GCSBucket)
	} else {
		log.Infof("Local reports dir: %s", cfg.LocalReportsDir)
	}

	srv, err := server.NewServer(cfg, deploymentMode)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // report generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
