package handlers

import (
	"net/http"
	"time"

	"github.com/video-stream/reader/internal/wire"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, wire.HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, http.StatusOK)
}
