package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/video-stream/reader/internal/wire"
)

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	jsonResponse(w, wire.ErrorResponse{Error: msg}, status)
}

// decodeJSON reads the request body into v and writes the error response
// itself when that fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
		return false
	}
	jsonError(w, "invalid request body", http.StatusBadRequest)
	return false
}
