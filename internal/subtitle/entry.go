// Package subtitle fetches timed captions for a video, falling back through
// upstream caption mirrors, a canned dataset and finally an empty track.
package subtitle

import "errors"

var (
	// ErrInvalidURL means no video id could be extracted from the input.
	ErrInvalidURL = errors.New("invalid video url")
	// ErrUpstreamUnavailable means every caption source failed or was empty.
	ErrUpstreamUnavailable = errors.New("caption upstream unavailable")
)

// UnknownTitle is used when the title lookup fails.
const UnknownTitle = "Unknown Title"

// Entry is one timed caption line. Times are in seconds.
type Entry struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
}

// Video is the result of a fetch.
type Video struct {
	VideoID       string   `json:"videoId"`
	Title         string   `json:"title"`
	AvailableLang []string `json:"availableLang"`
	Subtitles     []Entry  `json:"subtitles"`
}
