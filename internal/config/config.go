// Package config provides environment-driven configuration for the server
// and CLI. Values come from the process environment (a .env file is loaded
// by the CLI entry point); nothing here reads per-request state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults mirror a small self-hosted deployment.
const (
	DefaultPort              = 8080
	DefaultMaxTextLength     = 10000
	DefaultMinTextLength     = 10
	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = time.Minute
)

// Settings holds the full runtime configuration.
type Settings struct {
	Port              int
	MaxTextLength     int
	MinTextLength     int
	RateLimitRequests int
	RateLimitWindow   time.Duration
	LogLevel          string
	AllowedOrigins    []string
	Environment       string
	RulesPath         string // optional rule-set override file
}

// FromEnv builds Settings from environment variables, falling back to
// defaults for anything unset. Returns an error for unparseable values
// rather than silently ignoring them.
func FromEnv() (*Settings, error) {
	s := &Settings{
		Port:              DefaultPort,
		MaxTextLength:     DefaultMaxTextLength,
		MinTextLength:     DefaultMinTextLength,
		RateLimitRequests: DefaultRateLimitRequests,
		RateLimitWindow:   DefaultRateLimitWindow,
		LogLevel:          "info",
		AllowedOrigins:    []string{"http://localhost:8080"},
		Environment:       "development",
	}

	var err error
	if s.Port, err = intEnv("PORT", s.Port); err != nil {
		return nil, err
	}
	if s.MaxTextLength, err = intEnv("MAX_TEXT_LENGTH", s.MaxTextLength); err != nil {
		return nil, err
	}
	if s.MinTextLength, err = intEnv("MIN_TEXT_LENGTH", s.MinTextLength); err != nil {
		return nil, err
	}
	if s.RateLimitRequests, err = intEnv("RATE_LIMIT_REQUESTS", s.RateLimitRequests); err != nil {
		return nil, err
	}
	windowSeconds, err := intEnv("RATE_LIMIT_WINDOW", int(s.RateLimitWindow.Seconds()))
	if err != nil {
		return nil, err
	}
	s.RateLimitWindow = time.Duration(windowSeconds) * time.Second

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		s.AllowedOrigins = origins
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		s.Environment = v
	}
	s.RulesPath = os.Getenv("RULES_PATH")

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the configuration has usable values.
func (s *Settings) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("config error: 'PORT' must be in 1-65535, got %d", s.Port)
	}
	if s.MinTextLength < 1 {
		return fmt.Errorf("config error: 'MIN_TEXT_LENGTH' must be at least 1")
	}
	if s.MaxTextLength < s.MinTextLength {
		return fmt.Errorf("config error: 'MAX_TEXT_LENGTH' (%d) must be >= 'MIN_TEXT_LENGTH' (%d)",
			s.MaxTextLength, s.MinTextLength)
	}
	if s.RateLimitRequests < 1 {
		return fmt.Errorf("config error: 'RATE_LIMIT_REQUESTS' must be at least 1")
	}
	if s.RateLimitWindow < time.Second {
		return fmt.Errorf("config error: 'RATE_LIMIT_WINDOW' must be at least 1 second")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (s *Settings) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %q must be an integer, got %q", key, v)
	}
	return n, nil
}
