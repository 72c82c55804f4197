package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVTT(t *testing.T) {
	content := "WEBVTT\r\nKind: captions\r\nLanguage: en\r\n\r\n" +
		"NOTE this block is ignored\r\nstill ignored\r\n\r\n" +
		"1\r\n00:00:00.000 --> 00:00:03.000 align:start position:0%\r\nHi guys, this is my friend!\r\n\r\n" +
		"00:03.000 --> 00:07.500\r\n<c>This is</c> the first video\r\non YouTube!\r\n\r\n" +
		"00:00:07,500 --> 00:00:07,000\r\nbackwards timing\r\n"

	entries := ParseVTT(content)

	assert.Equal(t, []Entry{
		{Text: "Hi guys, this is my friend!", StartTime: 0, Duration: 3},
		{Text: "This is the first video\non YouTube!", StartTime: 3, Duration: 4.5},
		{Text: "backwards timing", StartTime: 7.5, Duration: 0},
	}, entries)
}

func TestParseVTT_CueTextLooksLikeHeader(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Entry
	}{
		{
			name: "cue starting with NOTE word",
			content: "WEBVTT\n\n00:00.000 --> 00:02.000\nNOTEWORTHY events today\n\n" +
				"00:02.000 --> 00:03.000\nsecond\n",
			expected: []Entry{
				{Text: "NOTEWORTHY events today", StartTime: 0, Duration: 2},
				{Text: "second", StartTime: 2, Duration: 1},
			},
		},
		{
			name:    "NOTE on a later cue line",
			content: "WEBVTT\n\n00:00.000 --> 00:02.000\nPlease take\nNOTE: this matters\n",
			expected: []Entry{
				{Text: "Please take\nNOTE: this matters", StartTime: 0, Duration: 2},
			},
		},
		{
			name:    "STYLE and WEBVTT inside a cue",
			content: "WEBVTT\n\n00:00.000 --> 00:01.000\nSTYLE\nWEBVTT is a format\n",
			expected: []Entry{
				{Text: "STYLE\nWEBVTT is a format", StartTime: 0, Duration: 1},
			},
		},
		{
			name: "comment block between cues is still skipped",
			content: "WEBVTT\n\n00:00.000 --> 00:01.000\nfirst\n\nNOTE\n00:05.000 --> 00:06.000\nhidden\n\n" +
				"00:02.000 --> 00:03.000\nsecond\n",
			expected: []Entry{
				{Text: "first", StartTime: 0, Duration: 1},
				{Text: "second", StartTime: 2, Duration: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseVTT(tt.content))
		})
	}
}

func TestParseVTT_Empty(t *testing.T) {
	assert.Empty(t, ParseVTT("WEBVTT\n\n"))
	assert.Empty(t, ParseVTT(""))
}

func TestFormatVTT_RoundTrip(t *testing.T) {
	in := CannedSubtitles["jNQXAC9IVRw"]
	assert.Equal(t, in, ParseVTT(FormatVTT(in)))
}

func TestTimestamps(t *testing.T) {
	assert.InDelta(t, 3723.456, parseTimestamp("01:02:03.456"), 1e-9)
	assert.InDelta(t, 63.5, parseTimestamp("01:03,500"), 1e-9)
	assert.Equal(t, "01:02:03.456", formatTimestamp(3723.456))
}
