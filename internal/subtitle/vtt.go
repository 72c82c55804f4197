package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Timestamps may be hh:mm:ss.mmm or, as caption services often emit,
// mm:ss.mmm. SRT-style commas are accepted.
var timestampRe = regexp.MustCompile(`((?:\d{2,}:)?\d{2}:\d{2}[.,]\d{3})\s*-->\s*((?:\d{2,}:)?\d{2}:\d{2}[.,]\d{3})`)

var cueTagRe = regexp.MustCompile(`<[^>]+>`)

// ParseVTT parses WebVTT content into entries in playback order. Cue
// settings, NOTE/STYLE blocks and inline timing tags are dropped.
func ParseVTT(content string) []Entry {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	var entries []Entry
	var current *Entry
	var text []string
	skipBlock := false

	flush := func() {
		if current != nil && len(text) > 0 {
			current.Text = strings.Join(text, "\n")
			entries = append(entries, *current)
		}
		current = nil
		text = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			skipBlock = false
			continue
		}
		if skipBlock {
			continue
		}
		// Header and comment blocks only start between cues.
		if current == nil && isMetaBlock(line) {
			skipBlock = true
			continue
		}

		if m := timestampRe.FindStringSubmatch(line); len(m) == 3 {
			flush()
			start := parseTimestamp(m[1])
			end := parseTimestamp(m[2])
			current = &Entry{StartTime: start, Duration: nonNegative(end - start)}
			continue
		}

		// Cue identifiers precede the timing line.
		if current == nil {
			continue
		}

		if cleaned := strings.TrimSpace(cueTagRe.ReplaceAllString(line, "")); cleaned != "" {
			text = append(text, cleaned)
		}
	}
	flush()

	return entries
}

func isMetaBlock(line string) bool {
	return strings.HasPrefix(line, "WEBVTT") || line == "NOTE" || strings.HasPrefix(line, "NOTE ") ||
		strings.HasPrefix(line, "NOTE\t") || line == "STYLE" || line == "REGION"
}

// FormatVTT renders entries back to WebVTT.
func FormatVTT(entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", formatTimestamp(e.StartTime), formatTimestamp(e.StartTime+e.Duration)))
		sb.WriteString(e.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func parseTimestamp(ts string) float64 {
	ts = strings.Replace(ts, ",", ".", 1)
	clock, frac, _ := strings.Cut(ts, ".")

	var seconds float64
	for _, part := range strings.Split(clock, ":") {
		n, _ := strconv.Atoi(part)
		seconds = seconds*60 + float64(n)
	}
	ms, _ := strconv.Atoi(frac)
	return seconds + float64(ms)/1000.0
}

func formatTimestamp(seconds float64) string {
	totalMs := int(seconds*1000 + 0.5)
	h := totalMs / 3600000
	totalMs %= 3600000
	m := totalMs / 60000
	totalMs %= 60000
	s := totalMs / 1000
	ms := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
