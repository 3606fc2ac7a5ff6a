// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package oauth wires the external ad/analytics providers (Google,
// Meta) for the authorization-code flow. The provider's state parameter
// carries the hotel id so the callback can be correlated with a tenant.
package oauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/config"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// ErrUnknownProvider is returned for provider names outside the
// registry.
var ErrUnknownProvider = errors.New("unknown oauth provider")

// googleScopes cover the Ads and Analytics read APIs.
var googleScopes = []string{
	"https://www.googleapis.com/auth/adwords",
	"https://www.googleapis.com/auth/analytics.readonly",
	"openid", "email",
}

// metaScopes cover the Marketing API read surface.
var metaScopes = []string{"ads_read", "email"}

// Registry holds the configured oauth2.Config per provider.
type Registry struct {
	configs map[string]*oauth2.Config
}

// NewRegistry builds the provider registry from configuration. Redirect
// URIs are constructed from the configured base URL. Providers with no
// client id are left unconfigured and fail at exchange time, not at
// startup.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		configs: map[string]*oauth2.Config{
			models.ProviderGoogle: {
				ClientID:     cfg.OAuth.Google.ClientID,
				ClientSecret: cfg.OAuth.Google.ClientSecret,
				Endpoint:     endpoints.Google,
				RedirectURL:  cfg.RedirectURL(models.ProviderGoogle),
				Scopes:       googleScopes,
			},
			models.ProviderMeta: {
				ClientID:     cfg.OAuth.Meta.ClientID,
				ClientSecret: cfg.OAuth.Meta.ClientSecret,
				Endpoint:     endpoints.Facebook,
				RedirectURL:  cfg.RedirectURL(models.ProviderMeta),
				Scopes:       metaScopes,
			},
		},
	}
}

// config returns the provider's oauth2.Config.
func (r *Registry) config(provider string) (*oauth2.Config, error) {
	cfg, ok := r.configs[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("provider %s is not configured", provider)
	}
	return cfg, nil
}

// AuthCodeURL builds the provider consent URL. The state parameter is
// the hotel id; offline access is requested so Google issues a refresh
// token on first consent.
func (r *Registry) AuthCodeURL(provider, hotelID string) (string, error) {
	cfg, err := r.config(provider)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(hotelID, oauth2.AccessTypeOffline), nil
}

// Exchange swaps an authorization code for a token record. No retry:
// a provider failure surfaces immediately to the caller.
func (r *Registry) Exchange(ctx context.Context, provider, code, hotelID string) (*models.OAuthToken, error) {
	cfg, err := r.config(provider)
	if err != nil {
		return nil, err
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange with %s failed: %w", provider, err)
	}

	record := &models.OAuthToken{
		HotelID:      hotelID,
		Provider:     provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		record.ExpiresAt = &expiry
	}
	return record, nil
}
