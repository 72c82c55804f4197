package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port             int           `env:"PORT" env-default:"3002"`
	CORSOrigins      []string      `env:"CORS_ORIGINS" env-separator:"," env-default:"https://new-english-17tq.vercel.app,http://localhost:5173,http://localhost:3000,https://*.vercel.app"`
	CORSCredentials  bool          `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	CORSMaxAge       time.Duration `env:"CORS_MAX_AGE" env-default:"5m"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"5s"`
	InvidiousMirrors []string      `env:"INVIDIOUS_MIRRORS" env-separator:"," env-default:"https://invidious.snopyta.org,https://invidious.kavin.rocks,https://invidious-us.kavin.rocks"`
	OEmbedURL        string        `env:"OEMBED_URL" env-default:"https://www.youtube.com/oembed"`
	DictionaryDB     string        `env:"DICTIONARY_DB"`
	WordLatency      time.Duration `env:"WORD_LATENCY" env-default:"300ms"`
	SentenceLatency  time.Duration `env:"SENTENCE_LATENCY" env-default:"500ms"`
	MaxBodyBytes     int64         `env:"MAX_BODY_BYTES" env-default:"1048576"`
	RateLimit        float64       `env:"RATE_LIMIT" env-default:"20"`
	RateBurst        int           `env:"RATE_BURST" env-default:"40"`
	LogLevel         string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat        string        `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads an optional .env file (ENV_FILE, fallback "./.env") and then
// the process environment. Variables already set win over the file.
func Load() (*Config, error) {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", c.Port)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream_timeout must be > 0 (got %s)", c.UpstreamTimeout)
	}
	if c.WordLatency < 0 || c.SentenceLatency < 0 {
		return fmt.Errorf("lookup latency must be >= 0")
	}
	if c.CORSMaxAge < 0 {
		return fmt.Errorf("cors_max_age must be >= 0 (got %s)", c.CORSMaxAge)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", c.MaxBodyBytes)
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be > 0 (got %v/%d)", c.RateLimit, c.RateBurst)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console (got %q)", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
