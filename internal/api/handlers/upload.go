package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/wire"
)

const defaultFileName = "untitled.txt"

type UploadHandler struct {
	logger *zap.Logger
	newID  func() string
}

func NewUploadHandler(logger *zap.Logger) *UploadHandler {
	return &UploadHandler{logger: logger, newID: uuid.NewString}
}

// Upload acknowledges a document. Nothing is persisted.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req wire.UploadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == "" {
		jsonError(w, "Content is required", http.StatusBadRequest)
		return
	}

	name := req.FileName
	if name == "" {
		name = defaultFileName
	}

	resp := wire.UploadResponse{
		Success:       true,
		Message:       "Document uploaded successfully",
		FileName:      name,
		ContentLength: wire.TextLength(req.Content),
		DocumentID:    h.newID(),
	}
	h.logger.Info("document uploaded",
		zap.String("file", resp.FileName),
		zap.Int("length", resp.ContentLength),
		zap.String("document_id", resp.DocumentID))

	jsonResponse(w, resp, http.StatusOK)
}
