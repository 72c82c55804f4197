package wire

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/video-stream/reader/internal/subtitle"
)

func TestTextLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"bmp", "你好", 2},
		{"astral counts twice", "😀", 2},
		{"mixed", "hi 😀!", 6},
		{"long emoji run", strings.Repeat("😀", 50), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextLength(tt.in))
		})
	}
}

func TestSubtitleResponse_Video(t *testing.T) {
	v := &subtitle.Video{
		VideoID:       "jNQXAC9IVRw",
		Title:         "Me at the zoo",
		AvailableLang: []string{"en"},
		Subtitles:     subtitle.CannedSubtitles["jNQXAC9IVRw"],
	}

	data, err := json.Marshal(NewSubtitleResponse(v))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subtitle":[{"start":0,"duration":3,"text":"Hi guys, this is my friend!"}`)

	var resp SubtitleResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, v, resp.Video())
}

func TestNewSubtitleResponse_EmptyListNotNull(t *testing.T) {
	data, err := json.Marshal(NewSubtitleResponse(&subtitle.Video{VideoID: "x", AvailableLang: []string{}}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subtitle":[]`)
}
