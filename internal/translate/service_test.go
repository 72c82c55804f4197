package translate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDictionary struct {
	mock.Mock
}

func (m *mockDictionary) Lookup(ctx context.Context, kind Kind, key string) (Result, bool, error) {
	args := m.Called(ctx, kind, key)
	return args.Get(0).(Result), args.Bool(1), args.Error(2)
}

func newTestService(dicts ...Dictionary) *Service {
	if len(dicts) == 0 {
		dicts = []Dictionary{NewDefaultDictionary()}
	}
	return NewService(nil, Options{}, dicts...)
}

func TestService_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected Result
	}{
		{
			name:     "known word",
			fragment: "hello",
			expected: WordResult(WordTranslation{
				Word:        "hello",
				Translation: "你好",
				Definition:  "Used as a greeting or to begin a telephone conversation.",
			}),
		},
		{
			name:     "word is case insensitive",
			fragment: "  Software ",
			expected: WordResult(WordTranslation{
				Word:        "software",
				Translation: "软件",
				Definition:  "The programs and other operating information used by a computer.",
			}),
		},
		{
			name:     "known sentence",
			fragment: "hello world",
			expected: SentenceResult(SentenceTranslation{Original: "hello world", Translation: "你好，世界"}),
		},
		{
			name:     "sentence is case insensitive",
			fragment: "Reading Practice",
			expected: SentenceResult(SentenceTranslation{Original: "reading practice", Translation: "阅读练习"}),
		},
		{
			name:     "word miss",
			fragment: "zzzznotaword",
			expected: Result{Kind: KindWord, Word: WordTranslation{
				Word:        "zzzznotaword",
				Translation: "zzzznotaword (not found)",
				Definition:  "Translation not available.",
			}},
		},
		{
			name:     "sentence miss",
			fragment: "the quick fox",
			expected: Result{Kind: KindSentence, Sentence: SentenceTranslation{
				Original:    "the quick fox",
				Translation: "the quick fox (not found)",
			}},
		},
		{
			name:     "tab counts as whitespace",
			fragment: "hello\tworld",
			expected: Result{Kind: KindSentence, Sentence: SentenceTranslation{
				Original:    "hello\tworld",
				Translation: "hello\tworld (not found)",
			}},
		},
	}

	svc := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Lookup(context.Background(), tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestService_LookupMissCarriesMarker(t *testing.T) {
	res, err := newTestService().Lookup(context.Background(), "zzzznotaword")
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Contains(t, res.Translation(), NotFoundMarker)
}

func TestService_LookupChainFirstHitWins(t *testing.T) {
	primary := new(mockDictionary)
	primary.On("Lookup", mock.Anything, KindWord, "hello").Return(Result{}, false, nil)

	fallback := new(mockDictionary)
	hit := WordResult(WordTranslation{Word: "hello", Translation: "hola"})
	fallback.On("Lookup", mock.Anything, KindWord, "hello").Return(hit, true, nil)

	res, err := newTestService(primary, fallback).Lookup(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, hit, res)

	primary.AssertExpectations(t)
	fallback.AssertExpectations(t)
}

func TestService_LookupDictionaryError(t *testing.T) {
	boom := errors.New("disk on fire")
	d := new(mockDictionary)
	d.On("Lookup", mock.Anything, KindWord, "hello").Return(Result{}, false, boom)

	_, err := newTestService(d).Lookup(context.Background(), "hello")
	assert.ErrorIs(t, err, boom)
}

func TestService_LookupHonoursContext(t *testing.T) {
	svc := NewService(nil, Options{WordLatency: time.Hour}, NewDefaultDictionary())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Lookup(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_LookupLatency(t *testing.T) {
	svc := NewService(nil, Options{WordLatency: 20 * time.Millisecond}, NewDefaultDictionary())

	start := time.Now()
	_, err := svc.Lookup(context.Background(), "hello")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestResult_JSON(t *testing.T) {
	t.Run("word", func(t *testing.T) {
		in := WordResult(WordTranslation{Word: "hello", Translation: "你好", Definition: "greeting"})
		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"word":"hello","translation":"你好","definition":"greeting","found":true}`, string(data))

		var out Result
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("sentence", func(t *testing.T) {
		in := Miss(KindSentence, "a b")
		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"original":"a b","translation":"a b (not found)","found":false}`, string(data))

		var out Result
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("neither variant", func(t *testing.T) {
		var out Result
		assert.Error(t, json.Unmarshal([]byte(`{"translation":"x"}`), &out))
	})
}

func TestFormat(t *testing.T) {
	word := WordResult(WordTranslation{Word: "hello", Translation: "你好", Definition: "greeting"})
	assert.Equal(t, "Word: hello\nTranslation: 你好\nDefinition: greeting", Format(word))

	sentence := SentenceResult(SentenceTranslation{Original: "hello world", Translation: "你好，世界"})
	assert.Equal(t, "Original: hello world\nTranslation: 你好，世界", Format(sentence))
}

func TestFormat_WithExample(t *testing.T) {
	word := WordResult(WordTranslation{Word: "video", Translation: "视频", Definition: "moving images", Example: "This is the first video."})
	assert.Equal(t, "Word: video\nTranslation: 视频\nDefinition: moving images\nExample: This is the first video.", Format(word))
}

func TestResult_JSONExample(t *testing.T) {
	in := WordResult(WordTranslation{Word: "video", Translation: "视频", Definition: "moving images", Example: "A video."})
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"video","translation":"视频","definition":"moving images","example":"A video.","found":true}`, string(data))

	var out Result
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"  video.  ", "video"},
		{"Today,", "today"},
		{"\"React\"", "react"},
		{"Hello everyone!", "hello everyone"},
		{"we're", "we're"},
		{"...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.in))
		})
	}
}

func TestService_BuiltinCoversSubtitleWords(t *testing.T) {
	svc := NewService(nil, Options{}, Builtin()...)
	ctx := context.Background()

	for _, word := range []string{"Welcome", "video.", "React", "interfaces.", "Today"} {
		res, err := svc.Lookup(ctx, word)
		require.NoError(t, err, word)
		assert.True(t, res.Found, word)
		assert.NotEmpty(t, res.Word.Example, word)
	}

	res, err := svc.Lookup(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "你好", res.Word.Translation, "general table is consulted first")
}
