package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/cache"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/config"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/session"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/storage"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Cache (Redis)
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := cache.DisconnectRedis(redisClient); err != nil {
			log.Printf("Error disconnecting from Redis: %v", err)
		}
	}()

	// Initialize session manager and upstream client.
	// The manager supplies the client's token source and 401 callback, and the
	// client is attached back afterwards for credential re-validation.
	sessionManager := session.NewManager(redisClient, cfg)
	apiClient := upstream.NewClient(
		cfg.UpstreamBaseURL,
		&http.Client{Timeout: cfg.UpstreamTimeout},
		sessionManager.TokenSource(),
		sessionManager.InvalidateFromContext,
	)
	sessionManager.SetAPI(apiClient)

	// Initialize screenshot staging
	var uploader storage.Uploader
	switch cfg.UploadMode {
	case "s3":
		uploader, err = storage.NewS3Storage(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
	default:
		uploader = storage.NewRemoteUploader(apiClient)
	}

	// Router initializes its own stores and handlers
	router := api.SetupRouter(cfg, sessionManager, apiClient, uploader)
	srv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: router,
	}

	go func() {
		fmt.Printf("Admin console API listening on :%s\n", cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
		fmt.Println("Admin console API server stopped.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	fmt.Println("Server gracefully stopped")
}
