// Package main is the entry point for the GlobeTrekker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/globetrekker/globetrekker/internal/config"
	"github.com/globetrekker/globetrekker/internal/export"
	"github.com/globetrekker/globetrekker/internal/handler"
	"github.com/globetrekker/globetrekker/internal/middleware"
	"github.com/globetrekker/globetrekker/internal/state"
	"github.com/globetrekker/globetrekker/internal/storage"
)

// maxBodySize caps request bodies at 1 MiB. Trip and packing payloads are
// small; anything larger is a client bug.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg := config.Load()

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	path := cfg.StoragePath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			slog.Error("failed to resolve storage path", "error", err)
			os.Exit(1)
		}
		path = p
	}
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		slog.Error("failed to open storage", "error", err, "path", path)
		os.Exit(1)
	}
	defer kv.Close()
	slog.Info("storage opened", "path", path)

	store := storage.New(kv, logger)

	// --- State and services ----------------------------------------------
	trips := state.New(context.Background(), store, state.LogNotifier{Log: logger})
	exporter := export.NewService(store)
	api := handler.NewServer(trips, store, exporter)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	r.Mount("/", api.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
