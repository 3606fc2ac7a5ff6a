// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package oauth

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/config"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.BaseURL = "https://dash.example.com"
	cfg.OAuth.Google.ClientID = "google-client"
	cfg.OAuth.Google.ClientSecret = "google-secret"
	return cfg
}

func TestAuthCodeURL(t *testing.T) {
	registry := NewRegistry(testConfig())

	t.Run("carries hotel id as state", func(t *testing.T) {
		raw, err := registry.AuthCodeURL(models.ProviderGoogle, "hotel-42")
		if err != nil {
			t.Fatalf("AuthCodeURL failed: %v", err)
		}

		parsed, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("Failed to parse consent URL: %v", err)
		}
		query := parsed.Query()
		if query.Get("state") != "hotel-42" {
			t.Errorf("state = %q, want hotel-42", query.Get("state"))
		}
		if query.Get("access_type") != "offline" {
			t.Errorf("access_type = %q, want offline", query.Get("access_type"))
		}
		if !strings.Contains(query.Get("redirect_uri"), "/api/v1/oauth/google/callback") {
			t.Errorf("redirect_uri = %q, want callback path", query.Get("redirect_uri"))
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := registry.AuthCodeURL("tiktok", "hotel-42")
		if !errors.Is(err, ErrUnknownProvider) {
			t.Errorf("err = %v, want ErrUnknownProvider", err)
		}
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		_, err := registry.AuthCodeURL(models.ProviderMeta, "hotel-42")
		if err == nil {
			t.Error("AuthCodeURL succeeded for provider without client id")
		}
	})
}
