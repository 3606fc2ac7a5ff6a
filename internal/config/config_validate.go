// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validation errors returned by Config.Validate.
var (
	// ErrMissingJWTSecret indicates auth.jwt_secret is unset outside dev mode.
	ErrMissingJWTSecret = errors.New("auth.jwt_secret is required outside dev mode")

	// ErrMissingCookieKey indicates auth.cookie_hash_key is unset outside dev mode.
	ErrMissingCookieKey = errors.New("auth.cookie_hash_key is required outside dev mode")
)

// Validate checks the configuration for startup-blocking problems.
// Secrets are mandatory outside dev mode; dev mode substitutes fixed
// keys so a bare `BB_SERVER_DEV_MODE=true` run works locally.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}

	if _, err := url.Parse(c.Server.BaseURL); err != nil || c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url must be a valid URL: %q", c.Server.BaseURL)
	}

	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}

	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl must be positive")
	}
	if c.Auth.ImpersonationTTL <= 0 {
		return errors.New("auth.impersonation_ttl must be positive")
	}

	if c.Server.DevMode {
		if c.Auth.JWTSecret == "" {
			c.Auth.JWTSecret = "bookingboost-dev-jwt-secret"
		}
		if c.Auth.CookieHashKey == "" {
			c.Auth.CookieHashKey = "bookingboost-dev-cookie-hash-key"
		}
	} else {
		if c.Auth.JWTSecret == "" {
			return ErrMissingJWTSecret
		}
		if c.Auth.CookieHashKey == "" {
			return ErrMissingCookieKey
		}
	}

	return nil
}

// SecureCookies reports whether the Secure flag should be set on
// cookies. Local development runs over plain HTTP.
func (c *Config) SecureCookies() bool {
	if c.Server.DevMode {
		return false
	}
	return strings.HasPrefix(c.Server.BaseURL, "https://")
}

// RedirectURL builds the OAuth callback URL for a provider from the
// configured base URL.
func (c *Config) RedirectURL(provider string) string {
	return strings.TrimSuffix(c.Server.BaseURL, "/") + "/api/v1/oauth/" + provider + "/callback"
}
