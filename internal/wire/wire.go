// Package wire holds the JSON bodies exchanged between the HTTP API and
// its clients.
package wire

import (
	"unicode/utf16"

	"github.com/video-stream/reader/internal/subtitle"
)

// TextLength is the length of s in UTF-16 code units, the unit a browser
// reports for String.length. Every length limit and count in the API uses
// it.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// SubtitleRequest is the body of POST /api/subtitle.
type SubtitleRequest struct {
	URL string `json:"url"`
}

// SubtitleLine is the wire form of one caption line.
type SubtitleLine struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// SubtitleResponse is the body of a successful POST /api/subtitle.
type SubtitleResponse struct {
	VideoID       string         `json:"videoId"`
	Title         string         `json:"title"`
	AvailableLang []string       `json:"availableLang"`
	Subtitle      []SubtitleLine `json:"subtitle"`
}

func NewSubtitleResponse(v *subtitle.Video) SubtitleResponse {
	lines := make([]SubtitleLine, 0, len(v.Subtitles))
	for _, e := range v.Subtitles {
		lines = append(lines, SubtitleLine{Start: e.StartTime, Duration: e.Duration, Text: e.Text})
	}
	return SubtitleResponse{
		VideoID:       v.VideoID,
		Title:         v.Title,
		AvailableLang: v.AvailableLang,
		Subtitle:      lines,
	}
}

// Video converts the response back into the subtitle model.
func (r SubtitleResponse) Video() *subtitle.Video {
	entries := make([]subtitle.Entry, 0, len(r.Subtitle))
	for _, l := range r.Subtitle {
		entries = append(entries, subtitle.Entry{Text: l.Text, StartTime: l.Start, Duration: l.Duration})
	}
	return &subtitle.Video{
		VideoID:       r.VideoID,
		Title:         r.Title,
		AvailableLang: r.AvailableLang,
		Subtitles:     entries,
	}
}

// UploadRequest is the body of POST /api/upload.
type UploadRequest struct {
	Content  string `json:"content"`
	FileName string `json:"fileName"`
}

// UploadResponse is the body of a successful POST /api/upload.
type UploadResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	FileName      string `json:"fileName"`
	ContentLength int    `json:"contentLength"`
	DocumentID    string `json:"documentId"`
}

// TranslateRequest is the body of POST /api/translate. The answer is a
// translate.Result.
type TranslateRequest struct {
	Text string `json:"text"`
}

// HealthResponse is the body of GET /api/health and GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
