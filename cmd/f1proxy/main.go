package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"f1proxy/internal/config"
	"f1proxy/internal/handler"
	"f1proxy/internal/store"
	"f1proxy/pkg/ergast"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("starting f1proxy server",
		"log_level", cfg.LogLevel.String(),
		"http_addr", cfg.HTTPAddr,
		"ergast_url", cfg.ErgastBaseURL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var favorites store.Favorites
	if cfg.DatabaseURL != "" {
		surreal, err := store.NewSurrealStore(ctx, store.SurrealConfig{
			URL:       cfg.DatabaseURL,
			Namespace: cfg.DatabaseNamespace,
			Database:  cfg.DatabaseName,
			Username:  cfg.DatabaseUser,
			Password:  cfg.DatabasePass,
		})
		if err != nil {
			// The proxy endpoints still work without storage.
			logger.Warn("favorites store unavailable", "error", err)
		} else {
			logger.Info("favorites store connected", "database", cfg.DatabaseName)
			favorites = surreal
		}
	} else {
		logger.Warn("DATABASE_URL not set, favorites endpoints disabled")
	}

	apiClient := ergast.New(cfg.ErgastBaseURL, cfg.UpstreamTimeout)

	f1Handler := handler.NewF1Handler(apiClient, logger)
	favHandler := handler.NewFavoritesHandler(favorites, logger)
	diagHandler := handler.NewDiagHandler(favorites)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", diagHandler.Root)
	mux.HandleFunc("GET /test", diagHandler.Test)

	mux.HandleFunc("GET /api/seasons", f1Handler.ListSeasons)
	mux.HandleFunc("GET /api/{season}/drivers", f1Handler.ListDrivers)
	mux.HandleFunc("GET /api/{season}/constructors", f1Handler.ListConstructors)
	mux.HandleFunc("GET /api/{season}/races", f1Handler.ListRaces)
	mux.HandleFunc("GET /api/{season}/{round}/results", f1Handler.RaceResults)

	mux.HandleFunc("POST /api/favorites/drivers", favHandler.AddDriver)
	mux.HandleFunc("GET /api/favorites/drivers", favHandler.ListDrivers)
	mux.HandleFunc("POST /api/favorites/constructors", favHandler.AddConstructor)
	mux.HandleFunc("GET /api/favorites/constructors", favHandler.ListConstructors)

	var root http.Handler = mux
	root = handler.GzipMiddleware(root)
	root = handler.CORSMiddleware(root)
	root = handler.LoggingMiddleware(logger)(root)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      root,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
