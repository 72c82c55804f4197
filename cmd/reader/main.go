package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/client"
	"github.com/video-stream/reader/internal/config"
	"github.com/video-stream/reader/internal/db"
	"github.com/video-stream/reader/internal/logging"
	"github.com/video-stream/reader/internal/reader"
	"github.com/video-stream/reader/internal/selection"
	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/translate"
)

func main() {
	serverFlag := flag.String("server", "", "Backend URL (e.g. http://localhost:3002); empty runs lookups locally")
	fileFlag := flag.String("file", "", "Plain text document to open on start")
	videoFlag := flag.String("video", "", "YouTube URL to load on start")
	dictFlag := flag.String("dict", "", "SQLite dictionary path for local lookups (overrides DICTIONARY_DB)")
	logLevelFlag := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(*logLevelFlag, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		translator selection.Translator
		videos     reader.VideoSource
		uploader   reader.Uploader
	)

	if *serverFlag != "" {
		c := client.New(*serverFlag, cfg.UpstreamTimeout*3, logger)
		if err := c.Health(ctx); err != nil {
			logger.Fatal("Backend not reachable", zap.String("server", *serverFlag), zap.Error(err))
		}
		translator, videos, uploader = c, c, c
	} else {
		dictPath := cfg.DictionaryDB
		if *dictFlag != "" {
			dictPath = *dictFlag
		}

		dicts := translate.Builtin()
		if dictPath != "" {
			database, err := db.Bootstrap(ctx, dictPath)
			if err != nil {
				logger.Fatal("Failed to initialize dictionary", zap.String("path", dictPath), zap.Error(err))
			}
			defer database.Close()
			dicts = []translate.Dictionary{database}
		}

		translator = translate.NewService(logger, translate.Options{
			WordLatency:     cfg.WordLatency,
			SentenceLatency: cfg.SentenceLatency,
		}, dicts...)
		videos = subtitle.NewMirrorFetcher(logger, cfg.UpstreamTimeout, cfg.OEmbedURL, cfg.InvidiousMirrors)
	}

	session := reader.NewSession(os.Stdout, translator, videos, uploader, reader.Options{
		OpenDelay:      reader.DefaultOpenDelay,
		RedrawInterval: reader.DefaultRedrawInterval,
	}, logger)

	if *fileFlag != "" {
		session.Execute(ctx, "open "+*fileFlag)
	}
	if *videoFlag != "" {
		session.Execute(ctx, "video "+*videoFlag)
	}

	if err := session.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error("Session ended", zap.Error(err))
		os.Exit(1)
	}
}
