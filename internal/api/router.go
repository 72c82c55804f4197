package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/api/handlers"
	"github.com/video-stream/reader/internal/api/middleware"
	"github.com/video-stream/reader/internal/config"
)

func NewRouter(cfg *config.Config, logger *zap.Logger, translator handlers.Translator, fetcher handlers.VideoFetcher, limiter *middleware.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(middleware.CORSHandler(middleware.CORSPolicy{
		Origins:          cfg.CORSOrigins,
		AllowCredentials: cfg.CORSCredentials,
		MaxAge:           cfg.CORSMaxAge,
	})))

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	subtitleHandler := handlers.NewSubtitleHandler(fetcher, logger.Named("subtitle"))
	uploadHandler := handlers.NewUploadHandler(logger.Named("upload"))
	translateHandler := handlers.NewTranslateHandler(translator, logger.Named("translate"))

	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(limiter.Handler)
			r.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

			r.Post("/subtitle", subtitleHandler.Fetch)
			r.Post("/upload", uploadHandler.Upload)
			r.Post("/translate", translateHandler.Translate)
		})
	})

	return r
}
