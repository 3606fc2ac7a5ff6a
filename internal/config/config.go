// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package config defines application configuration loaded via koanf.
// Precedence: built-in defaults, then an optional YAML file, then
// BB_-prefixed environment variables.
package config

import (
	"time"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	OAuth     OAuthConfig     `koanf:"oauth"`
	Logging   LoggingConfig   `koanf:"logging"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// BaseURL is the externally reachable base URL. OAuth redirect URIs
	// are constructed from it.
	BaseURL string `koanf:"base_url"`

	// DevMode relaxes startup validation, disables the cookie Secure
	// flag and seeds demo data into an empty database.
	DevMode bool `koanf:"dev_mode"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the database file path; ":memory:" for an in-memory
	// database (used by tests).
	Path string `koanf:"path"`

	MaxMemory string `koanf:"max_memory"`

	// Threads limits DuckDB worker threads; 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// AuthConfig holds session and impersonation settings.
type AuthConfig struct {
	// JWTSecret signs session tokens (HS256). Required outside dev mode.
	JWTSecret string `koanf:"jwt_secret"`

	// CookieHashKey signs the impersonation cookie pair. Required
	// outside dev mode.
	CookieHashKey string `koanf:"cookie_hash_key"`

	// SessionTTL bounds the session token lifetime.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// ImpersonationTTL bounds the impersonation cookie max-age. Cookie
	// expiry is the only revocation mechanism.
	ImpersonationTTL time.Duration `koanf:"impersonation_ttl"`
}

// OAuthProviderConfig holds one provider's client credentials.
type OAuthProviderConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
}

// OAuthConfig holds external ad/analytics provider credentials.
type OAuthConfig struct {
	Google OAuthProviderConfig `koanf:"google"`
	Meta   OAuthProviderConfig `koanf:"meta"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CORSConfig holds allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	// RequestsPerMinute applies to the general API surface.
	RequestsPerMinute int `koanf:"requests_per_minute"`

	// LoginPerFiveMinutes applies to the login endpoint only.
	LoginPerFiveMinutes int `koanf:"login_per_five_minutes"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			BaseURL:         "http://localhost:8080",
			DevMode:         false,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:      "/data/bookingboost.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Auth: AuthConfig{
			JWTSecret:        "",
			CookieHashKey:    "",
			SessionTTL:       12 * time.Hour,
			ImpersonationTTL: 24 * time.Hour,
		},
		OAuth: OAuthConfig{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute:   300,
			LoginPerFiveMinutes: 5,
		},
	}
}
