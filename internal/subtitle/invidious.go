package subtitle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Source produces caption entries for a video id.
type Source interface {
	Captions(ctx context.Context, videoID string) ([]Entry, error)
	Name() string
}

// InvidiousSource reads captions from one Invidious mirror.
type InvidiousSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewInvidiousSource creates a source for the mirror at baseURL. Request
// deadlines come from the caller's context.
func NewInvidiousSource(baseURL string, httpClient *http.Client) *InvidiousSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &InvidiousSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (s *InvidiousSource) Name() string {
	return s.baseURL
}

type captionTrack struct {
	Label        string `json:"label"`
	LanguageCode string `json:"languageCode"`
	LangCodeAlt  string `json:"language_code"`
	URL          string `json:"url"`
}

func (t captionTrack) english() bool {
	return strings.Contains(strings.ToLower(t.Label), "english") ||
		t.LanguageCode == "en" || t.LangCodeAlt == "en"
}

// Captions lists the video's caption tracks, picks an English one and
// downloads it.
func (s *InvidiousSource) Captions(ctx context.Context, videoID string) ([]Entry, error) {
	body, _, err := s.get(ctx, "/api/v1/captions/"+videoID)
	if err != nil {
		return nil, fmt.Errorf("list captions: %w", err)
	}

	tracks, err := decodeTracks(body)
	if err != nil {
		return nil, fmt.Errorf("parse caption list: %w", err)
	}

	var track *captionTrack
	for i := range tracks {
		if tracks[i].english() {
			track = &tracks[i]
			break
		}
	}
	if track == nil {
		return nil, nil
	}

	body, contentType, err := s.get(ctx, track.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track %q: %w", track.Label, err)
	}

	if strings.Contains(contentType, "json") {
		return decodeJSONCaptions(body)
	}
	return ParseVTT(string(body)), nil
}

func (s *InvidiousSource) get(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("status %d from %s", resp.StatusCode, s.baseURL)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// decodeTracks accepts both {"captions":[...]} and a bare array.
func decodeTracks(body []byte) ([]captionTrack, error) {
	var wrapped struct {
		Captions []captionTrack `json:"captions"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Captions, nil
	}
	var bare []captionTrack
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}

type jsonCaption struct {
	Text      string   `json:"text"`
	Start     *float64 `json:"start"`
	StartTime *float64 `json:"startTime"`
	Duration  *float64 `json:"duration"`
	End       *float64 `json:"end"`
	EndTime   *float64 `json:"endTime"`
}

// decodeJSONCaptions handles mirrors that answer with
// {"subtitles":[{start,duration,text}]} or start/end pairs.
func decodeJSONCaptions(body []byte) ([]Entry, error) {
	var payload struct {
		Subtitles []jsonCaption `json:"subtitles"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse caption track: %w", err)
	}

	entries := make([]Entry, 0, len(payload.Subtitles))
	for _, c := range payload.Subtitles {
		start := firstOf(c.Start, c.StartTime)
		duration := 0.0
		switch {
		case c.Duration != nil:
			duration = *c.Duration
		case c.End != nil:
			duration = *c.End - start
		case c.EndTime != nil:
			duration = *c.EndTime - start
		}
		entries = append(entries, Entry{
			Text:      c.Text,
			StartTime: nonNegative(start),
			Duration:  nonNegative(duration),
		})
	}
	return entries, nil
}

func firstOf(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}
