package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/api"
	"github.com/video-stream/reader/internal/api/middleware"
	"github.com/video-stream/reader/internal/config"
	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/translate"
)

type noSource struct{}

func (noSource) Name() string { return "none" }

func (noSource) Captions(ctx context.Context, videoID string) ([]subtitle.Entry, error) {
	return nil, nil
}

func newBackend(t *testing.T) *Client {
	t.Helper()
	cfg := &config.Config{MaxBodyBytes: 1 << 20}
	svc := translate.NewService(nil, translate.Options{}, translate.NewDefaultDictionary())
	fetcher := subtitle.NewFetcher(nil, time.Second, nil, noSource{})
	router := api.NewRouter(cfg, zap.NewNop(), svc, fetcher, middleware.NewRateLimiter(100, 100))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func TestClient_AgainstRouter(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	res, err := c.Lookup(ctx, "hello")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, translate.KindWord, res.Kind)
	assert.Equal(t, "你好", res.Word.Translation)

	res, err = c.Lookup(ctx, "unknown phrase")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, "unknown phrase (not found)", res.Sentence.Translation)

	video, err := c.Fetch(ctx, "https://www.youtube.com/watch?v=jNQXAC9IVRw")
	require.NoError(t, err)
	assert.Equal(t, "jNQXAC9IVRw", video.VideoID)
	assert.Equal(t, subtitle.UnknownTitle, video.Title)
	assert.Equal(t, subtitle.CannedSubtitles["jNQXAC9IVRw"], video.Subtitles)

	_, err = c.Fetch(ctx, "https://example.com/video")
	assert.ErrorIs(t, err, subtitle.ErrInvalidURL)

	up, err := c.Upload(ctx, "notes.txt", "hello world")
	require.NoError(t, err)
	assert.True(t, up.Success)
	assert.Equal(t, 11, up.ContentLength)
	assert.NotEmpty(t, up.DocumentID)
}

func TestClient_APIError(t *testing.T) {
	c := newBackend(t)

	_, err := c.Upload(context.Background(), "a.txt", "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Content is required", apiErr.Message)
}

func TestClient_RetriesServerErrorsOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second, nil).Health(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Text is required"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, nil).Lookup(context.Background(), " ")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Text is required", apiErr.Message)
	assert.Equal(t, int32(1), calls.Load())
}
