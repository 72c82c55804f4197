package middleware

import (
	"time"

	"github.com/go-chi/cors"
)

// CORSPolicy is the deployment's cross-origin policy, read from config.
type CORSPolicy struct {
	// Origins may contain one "*" wildcard each, e.g. "https://*.vercel.app".
	// An empty list admits any origin.
	Origins          []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// CORSHandler turns the policy into chi cors options for the browser front
// end. A bare "*" origin never carries credentials, whatever the policy says.
func CORSHandler(p CORSPolicy) cors.Options {
	origins := p.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	allowCreds := p.AllowCredentials
	for _, o := range origins {
		if o == "*" {
			allowCreds = false
			break
		}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Length", "X-Request-Id", "Retry-After"},
		AllowCredentials: allowCreds,
		MaxAge:           int(p.MaxAge / time.Second),
	}
}
