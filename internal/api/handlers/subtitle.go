package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/wire"
)

// VideoFetcher resolves a video URL to its captions.
type VideoFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*subtitle.Video, error)
}

type SubtitleHandler struct {
	fetcher VideoFetcher
	logger  *zap.Logger
}

func NewSubtitleHandler(fetcher VideoFetcher, logger *zap.Logger) *SubtitleHandler {
	return &SubtitleHandler{fetcher: fetcher, logger: logger}
}

func (h *SubtitleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var req wire.SubtitleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		jsonError(w, "URL is required", http.StatusBadRequest)
		return
	}

	video, err := h.fetcher.Fetch(r.Context(), req.URL)
	if errors.Is(err, subtitle.ErrInvalidURL) {
		jsonError(w, "Invalid YouTube URL", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("fetch subtitles", zap.String("url", req.URL), zap.Error(err))
		jsonError(w, "Failed to fetch subtitles", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, wire.NewSubtitleResponse(video), http.StatusOK)
}
