// Package youtube recognises the URL shapes a user may paste for a video.
package youtube

import (
	"regexp"
	"strings"
)

var (
	// watch?v=, youtu.be/ and embed/ forms, then watch URLs where v is not
	// the first query parameter.
	urlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
	}
	rawIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID returns the video id contained in url, or false when the
// input is neither a recognised video URL nor a bare 11-character id.
func ExtractVideoID(url string) (string, bool) {
	if url == "" {
		return "", false
	}

	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(url); len(m) == 2 && m[1] != "" {
			return m[1], true
		}
	}

	if id := strings.TrimSpace(url); rawIDRe.MatchString(id) {
		return id, true
	}
	return "", false
}

// WatchURL is the canonical long-form URL for id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
