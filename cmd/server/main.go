// Package main is the entry point for the appointment calendar bridge.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/appointment-bridge/backend/internal/api"
	"github.com/appointment-bridge/backend/internal/appointments"
	"github.com/appointment-bridge/backend/internal/calendar"
	"github.com/appointment-bridge/backend/internal/config"
	"github.com/appointment-bridge/backend/internal/syncer"
	"github.com/appointment-bridge/backend/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
// Defaults to "dev" when not provided.
var version = "dev"

func main() {
	addr := flag.String("addr", ":8080", "HTTP server address")
	healthCheck := flag.Bool("health-check", false, "Run health check and exit")
	flag.Parse()

	// Health check mode for Docker HEALTHCHECK
	if *healthCheck {
		if err := runHealthCheck(*addr); err != nil {
			log.Fatalf("Health check failed: %v", err)
		}
		os.Exit(0)
	}

	// Load .env if present, then read settings from the environment.
	// Missing values are not validated here; they surface on first use.
	_ = godotenv.Load()
	cfg := config.FromEnv()

	if envVer := os.Getenv("VERSION"); envVer != "" {
		version = envVer
	}

	log.Printf("Starting appointment calendar bridge (version: %s)...", version)

	// Initialize WebSocket hub for sync progress events
	hub := websocket.NewHub()
	go hub.Run()

	// Source and sink are rebuilt per sync run from the same settings,
	// so a credential fix takes effect without a restart.
	factory := func(ctx context.Context) (*syncer.Service, error) {
		sink, err := calendar.NewGoogleSink(ctx, cfg.GoogleCredentialsFile, cfg.GoogleCalendarID)
		if err != nil {
			return nil, err
		}
		return syncer.NewService(appointments.NewClient(cfg), sink), nil
	}

	// Background sync scheduler (disabled unless SYNC_INTERVAL_MIN is set)
	scheduler := syncer.NewScheduler(factory, websocket.NewEventBroadcaster(hub), cfg.SyncIntervalMin)
	if err := scheduler.Start(); err != nil {
		log.Printf("Warning: Failed to start sync scheduler: %v", err)
	} else if cfg.SyncIntervalMin > 0 {
		// Run one pass right away instead of waiting a full interval.
		scheduler.TriggerSync()
	}

	router := api.NewRouter(factory, hub)

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		log.Printf("Server listening on %s", *addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

// runHealthCheck performs a health check against the running server.
func runHealthCheck(addr string) error {
	url := "http://localhost" + addr + "/health"
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return http.ErrAbortHandler
	}
	return nil
}
