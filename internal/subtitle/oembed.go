package subtitle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/video-stream/reader/internal/youtube"
)

// DefaultOEmbedURL is YouTube's public oEmbed endpoint.
const DefaultOEmbedURL = "https://www.youtube.com/oembed"

// TitleSource resolves a video title.
type TitleSource interface {
	Title(ctx context.Context, videoID string) (string, error)
}

// OEmbedTitles resolves titles through an oEmbed endpoint.
type OEmbedTitles struct {
	endpoint   string
	httpClient *http.Client
}

func NewOEmbedTitles(endpoint string, httpClient *http.Client) *OEmbedTitles {
	if endpoint == "" {
		endpoint = DefaultOEmbedURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OEmbedTitles{endpoint: endpoint, httpClient: httpClient}
}

func (o *OEmbedTitles) Title(ctx context.Context, videoID string) (string, error) {
	q := url.Values{}
	q.Set("url", youtube.WatchURL(videoID))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed status %d", resp.StatusCode)
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("parse oembed: %w", err)
	}
	return strings.TrimSpace(body.Title), nil
}
