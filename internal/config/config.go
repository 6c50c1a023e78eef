// Package config builds the application configuration from environment
// variables. The session secret and cookie name are injected explicitly
// into the token codec and the auth gate; nothing reads them ambiently.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds every runtime setting for the board.
type Config struct {
	Addr        string
	DatabaseURL string
	// SessionSecret signs and verifies session tokens. One value feeds
	// both sides; the codec has no other secret source.
	SessionSecret string
	// CookieName is the transport slot the session token travels in.
	CookieName string
	// TokenTTL is the signed expiry window. The default is deliberately
	// short to force frequent re-login.
	TokenTTL time.Duration
	// CookieTTL is the cookie's own lifetime, independent of TokenTTL.
	CookieTTL time.Duration
}

// FromEnv reads configuration from the environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          env("ADDR", ":3000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieName:    env("SESSION_COOKIE_NAME", "accessToken"),
		TokenTTL:      envDuration("SESSION_TOKEN_TTL", 10*time.Second),
		CookieTTL:     envDuration("SESSION_COOKIE_TTL", 60*time.Minute),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
