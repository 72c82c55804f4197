// Package client talks to the reader HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/translate"
	"github.com/video-stream/reader/internal/wire"
)

const retryDelay = 250 * time.Millisecond

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls the translate, subtitle and upload endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("client"),
	}
}

// Lookup asks the server to translate a word or sentence.
func (c *Client) Lookup(ctx context.Context, fragment string) (translate.Result, error) {
	var res translate.Result
	if err := c.post(ctx, "/api/translate", wire.TranslateRequest{Text: fragment}, &res); err != nil {
		return translate.Result{}, err
	}
	return res, nil
}

// Fetch retrieves captions for a video URL. A 400 from the server is
// reported as subtitle.ErrInvalidURL.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*subtitle.Video, error) {
	var resp wire.SubtitleResponse
	err := c.post(ctx, "/api/subtitle", wire.SubtitleRequest{URL: rawURL}, &resp)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s", subtitle.ErrInvalidURL, apiErr.Message)
	}
	if err != nil {
		return nil, err
	}

	return resp.Video(), nil
}

// Upload sends a document's text to the server.
func (c *Client) Upload(ctx context.Context, fileName, content string) (*wire.UploadResponse, error) {
	var resp wire.UploadResponse
	body := wire.UploadRequest{Content: content, FileName: fileName}
	if err := c.post(ctx, "/api/upload", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health returns nil when the server answers its health check.
func (c *Client) Health(ctx context.Context) error {
	var resp wire.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return fmt.Errorf("health: status %q", resp.Status)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

// do runs the request with a single retry on 5xx or network errors.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying request", zap.String("path", path), zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		retry, err := c.once(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry || ctx.Err() != nil {
			break
		}
	}
	return lastErr
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out interface{}) (bool, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e wire.ErrorResponse
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return resp.StatusCode >= 500, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s response: %w", path, err)
	}
	return false, nil
}
