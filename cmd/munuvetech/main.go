// Package main is the entry point for the Munuvetech content API server.
// It loads configuration, builds the storage layer, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JBlizzard-sketch/Munuvetech/internal/cache"
	"github.com/JBlizzard-sketch/Munuvetech/internal/config"
	"github.com/JBlizzard-sketch/Munuvetech/internal/database"
	"github.com/JBlizzard-sketch/Munuvetech/internal/handlers"
	"github.com/JBlizzard-sketch/Munuvetech/internal/notify"
	"github.com/JBlizzard-sketch/Munuvetech/internal/router"
	"github.com/JBlizzard-sketch/Munuvetech/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"storage", cfg.StorageDriver,
	)

	// Build the storage layer. The in-memory store seeds itself from the
	// fixed catalog; the Postgres driver migrates and seeds on first run.
	var st store.Storage
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		pg := store.NewPostgresStore(db)
		if err := pg.Seed(context.Background()); err != nil {
			slog.Error("failed to seed content catalog", "error", err)
			os.Exit(1)
		}
		st = pg
	default:
		st = store.NewMemStore()
	}

	// Connect the optional Valkey response cache. A nil cache is a no-op.
	var respCache *cache.ResponseCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		respCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	} else {
		slog.Info("valkey not configured, response caching disabled")
	}

	// The log notifier stands in for the email channel a production
	// deployment would plug in after contact submissions.
	notifier := notify.NewLogNotifier()

	contentHandlers := handlers.NewContent(st, respCache)
	submissionHandlers := handlers.NewSubmissions(st, notifier)

	r := router.New(contentHandlers, submissionHandlers, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
