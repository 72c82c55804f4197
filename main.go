package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/api"
	"github.com/video-stream/reader/internal/api/middleware"
	"github.com/video-stream/reader/internal/config"
	"github.com/video-stream/reader/internal/db"
	"github.com/video-stream/reader/internal/logging"
	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dictionary: SQLite when configured, built-in tables otherwise
	dicts := translate.Builtin()
	if cfg.DictionaryDB != "" {
		database, err := db.Bootstrap(ctx, cfg.DictionaryDB)
		if err != nil {
			logger.Fatal("Failed to initialize dictionary", zap.String("path", cfg.DictionaryDB), zap.Error(err))
		}
		defer database.Close()

		count, err := database.WordCount(ctx)
		if err != nil {
			logger.Fatal("Failed to read dictionary", zap.Error(err))
		}
		logger.Info("Dictionary ready", zap.String("path", cfg.DictionaryDB), zap.Int("words", count))
		dicts = []translate.Dictionary{database}
	}

	translator := translate.NewService(logger, translate.Options{
		WordLatency:     cfg.WordLatency,
		SentenceLatency: cfg.SentenceLatency,
	}, dicts...)
	fetcher := subtitle.NewMirrorFetcher(logger, cfg.UpstreamTimeout, cfg.OEmbedURL, cfg.InvidiousMirrors)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	go limiter.Run(ctx, time.Minute)

	router := api.NewRouter(cfg, logger, translator, fetcher, limiter)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Strings("mirrors", cfg.InvidiousMirrors),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
