package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/translate"
	"github.com/video-stream/reader/internal/wire"
)

// Translator looks up a word or sentence.
type Translator interface {
	Lookup(ctx context.Context, fragment string) (translate.Result, error)
}

type TranslateHandler struct {
	translator Translator
	logger     *zap.Logger
}

func NewTranslateHandler(translator Translator, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{translator: translator, logger: logger}
}

// Translate answers with the lookup result; misses are a 200 with
// "found": false.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req wire.TranslateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "Text is required", http.StatusBadRequest)
		return
	}

	res, err := h.translator.Lookup(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("translate", zap.String("text", req.Text), zap.Error(err))
		jsonError(w, "Translation failed", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, res, http.StatusOK)
}
