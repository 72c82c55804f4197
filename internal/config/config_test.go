package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no stray .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("ENV_FILE", "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3002, cfg.Port)
	assert.Equal(t, ":3002", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.WordLatency)
	assert.Equal(t, 500*time.Millisecond, cfg.SentenceLatency)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
	assert.Contains(t, cfg.CORSOrigins, "https://*.vercel.app")
	assert.True(t, cfg.CORSCredentials)
	assert.Equal(t, 5*time.Minute, cfg.CORSMaxAge)
	assert.Len(t, cfg.InvidiousMirrors, 3)
	assert.Empty(t, cfg.DictionaryDB)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8088")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("DICTIONARY_DB", "/tmp/dict.db")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("CORS_MAX_AGE", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "/tmp/dict.db", cfg.DictionaryDB)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.CORSCredentials)
	assert.Equal(t, time.Hour, cfg.CORSMaxAge)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORD_LATENCY=10ms\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("WORD_LATENCY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.WordLatency)
}

func TestLoad_ExplicitEnvFileMissing(t *testing.T) {
	dir := isolate(t)
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:            3002,
			UpstreamTimeout: time.Second,
			MaxBodyBytes:    1024,
			RateLimit:       1,
			RateBurst:       1,
			LogFormat:       "json",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero port", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.UpstreamTimeout = 0 }, wantErr: true},
		{name: "negative latency", mutate: func(c *Config) { c.WordLatency = -time.Millisecond }, wantErr: true},
		{name: "negative cors max age", mutate: func(c *Config) { c.CORSMaxAge = -time.Second }, wantErr: true},
		{name: "zero body limit", mutate: func(c *Config) { c.MaxBodyBytes = 0 }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateBurst = 0 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
