package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courseloom/insight/internal/adapters/catalog"
	"github.com/courseloom/insight/internal/adapters/http/api"
	"github.com/courseloom/insight/internal/adapters/http/swagger"
	"github.com/courseloom/insight/internal/adapters/llm"
	app "github.com/courseloom/insight/internal/app"
	"github.com/courseloom/insight/internal/config"
	"github.com/courseloom/insight/internal/domain/classify"
	"github.com/courseloom/insight/internal/domain/narrative"
	"github.com/courseloom/insight/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// AI is optional: without a key the deterministic paths carry the
	// whole pipeline.
	gem, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Warn(ctx, "gemini client unavailable; using deterministic fallbacks", logger.Error(err))
	}
	var cgen classify.Generator
	var ngen narrative.Generator
	if gem != nil {
		cgen = gem
		ngen = gem
	}

	opts := []app.Option{
		app.WithLogger(log.Named("service")),
		app.WithClassifier(classify.New(cgen,
			classify.WithConsistencyFloor(cfg.ConsistencyFloor),
			classify.WithTitleLimit(cfg.ClassifyTitleLimit),
		)),
		app.WithNarrator(narrative.New(ngen)),
	}

	// The catalog is optional too; without an API key the authority tool
	// reports not configured and the stateless tools keep working.
	if cfg.CatalogAPIKey != "" {
		opts = append(opts, app.WithCatalog(catalog.NewClient(cfg.CatalogAPIKey,
			catalog.WithBaseURL(cfg.CatalogBaseURL),
			catalog.WithPageSize(cfg.CatalogPageSize),
			catalog.WithMaxItems(cfg.CatalogMaxItems),
			catalog.WithHTTPClient(&http.Client{Timeout: cfg.CatalogTimeout}),
			catalog.WithLogger(log.Named("catalog")),
		)))
	} else {
		log.Warn(ctx, "no catalog API key configured; authority tool disabled")
	}

	svc := app.New(opts...)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// API docs under /api-docs
	swagger.Register(ctx, mux)

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	if gem != nil {
		_ = gem.Close()
	}

	log.Info(ctx, "server stopped")
}
