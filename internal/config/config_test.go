// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package config

import (
	"errors"
	"testing"
)

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"BB_SERVER_PORT", "server.port"},
		{"BB_SERVER_BASE_URL", "server.base_url"},
		{"BB_SERVER_DEV_MODE", "server.dev_mode"},
		{"BB_AUTH_JWT_SECRET", "auth.jwt_secret"},
		{"BB_AUTH_COOKIE_HASH_KEY", "auth.cookie_hash_key"},
		{"BB_RATE_LIMIT_REQUESTS_PER_MINUTE", "rate_limit.requests_per_minute"},
		{"BB_OAUTH_GOOGLE_CLIENT_ID", "oauth.google.client_id"},
		{"BB_OAUTH_META_CLIENT_SECRET", "oauth.meta.client_secret"},
		{"BB_DATABASE_MAX_MEMORY", "database.max_memory"},
		{"BB_CORS_ALLOWED_ORIGINS", "cors.allowed_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransform(tt.env); got != tt.want {
				t.Errorf("envTransform(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig()
		cfg.Auth.JWTSecret = "secret"
		cfg.Auth.CookieHashKey = "hash-key"
		return cfg
	}

	t.Run("valid production config", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("missing jwt secret outside dev", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = ""
		if err := cfg.Validate(); !errors.Is(err, ErrMissingJWTSecret) {
			t.Errorf("err = %v, want ErrMissingJWTSecret", err)
		}
	})

	t.Run("missing cookie key outside dev", func(t *testing.T) {
		cfg := base()
		cfg.Auth.CookieHashKey = ""
		if err := cfg.Validate(); !errors.Is(err, ErrMissingCookieKey) {
			t.Errorf("err = %v, want ErrMissingCookieKey", err)
		}
	})

	t.Run("dev mode substitutes secrets", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Server.DevMode = true
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if cfg.Auth.JWTSecret == "" || cfg.Auth.CookieHashKey == "" {
			t.Error("Dev mode left secrets empty")
		}
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate accepted port 0")
		}
	})

	t.Run("empty database path", func(t *testing.T) {
		cfg := base()
		cfg.Database.Path = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate accepted empty database path")
		}
	})
}

func TestSecureCookies(t *testing.T) {
	cfg := defaultConfig()

	t.Run("https base url", func(t *testing.T) {
		cfg.Server.DevMode = false
		cfg.Server.BaseURL = "https://dash.example.com"
		if !cfg.SecureCookies() {
			t.Error("SecureCookies = false for https")
		}
	})

	t.Run("dev mode always insecure", func(t *testing.T) {
		cfg.Server.DevMode = true
		if cfg.SecureCookies() {
			t.Error("SecureCookies = true in dev mode")
		}
	})
}

func TestRedirectURL(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.BaseURL = "https://dash.example.com/"

	got := cfg.RedirectURL("google")
	want := "https://dash.example.com/api/v1/oauth/google/callback"
	if got != want {
		t.Errorf("RedirectURL = %q, want %q", got, want)
	}
}
