// cmd/server/main.go
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

	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/config"
	"github.com/eventide-app/eventide-backend/internal/database"
	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize the key-value backend
	kvStore, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	defer cleanup()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(kvStore, cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s (storage backend: %s)", cfg.Server.Port, cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// openStore builds the configured kv.Store. The returned cleanup is a no-op
// for the memory and file backends.
func openStore(cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "memory":
		return kv.NewMemoryStore(), func() {}, nil
	case "file":
		store, err := kv.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "postgres":
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store, err := kv.NewPostgresStore(db)
		if err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return store, func() { database.Close(db) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
