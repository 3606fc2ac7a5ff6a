// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/metrics"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// integrationStatus is one provider's connection state as shown in the
// integrations panel. Token values never leave the server whole; only
// truncated previews are exposed.
type integrationStatus struct {
	Provider           string     `json:"provider"`
	Connected          bool       `json:"connected"`
	AccessTokenPreview string     `json:"access_token_preview,omitempty"`
	HasRefreshToken    bool       `json:"has_refresh_token"`
	AccountEmail       string     `json:"account_email,omitempty"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	ViaAdminFallback   bool       `json:"via_admin_fallback,omitempty"`
}

// Integrations reports the resolved hotel's provider connections. While
// an admin impersonates a tenant without its own token, the admin's own
// token is surfaced with the fallback flag set.
func (h *Handler) Integrations(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	fallbackOwnerID := ""
	if principal.IsImpersonating {
		fallbackOwnerID = principal.OwnerID
	}

	statuses := make([]*integrationStatus, 0, 2)
	for _, provider := range []string{models.ProviderGoogle, models.ProviderMeta} {
		status := &integrationStatus{Provider: provider}

		token, err := h.db.GetTokenWithFallback(r.Context(), hotel.ID, provider, fallbackOwnerID)
		switch {
		case err == nil:
			status.Connected = true
			status.AccessTokenPreview = logging.SecretPreview(token.AccessToken)
			status.HasRefreshToken = token.RefreshToken != ""
			status.AccountEmail = token.AccountEmail
			status.ExpiresAt = token.ExpiresAt
			status.ViaAdminFallback = token.HotelID != hotel.ID
		case errors.Is(err, database.ErrTokenNotFound):
			// Not connected; plain entry.
		default:
			respondDomainError(w, err)
			return
		}

		statuses = append(statuses, status)
	}

	respondData(w, http.StatusOK, statuses)
}

// OAuthStart redirects to the provider's consent screen for the
// resolved hotel. The hotel is access-checked before the redirect so
// the callback state can be trusted to name a hotel the session could
// act on at start time.
func (h *Handler) OAuthStart(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	provider := chi.URLParam(r, "provider")
	if !models.IsValidProvider(provider) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown provider", nil)
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	url, err := h.oauth.AuthCodeURL(provider, hotel.ID)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "PROVIDER_UNAVAILABLE", "Provider is not configured", err)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallback completes the authorization-code flow: the code is
// exchanged, the token stored for the hotel carried in state, and the
// browser sent back to the integrations page. Provider errors redirect
// with an error marker instead of a JSON body because the caller is a
// browser mid-flow.
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	provider := chi.URLParam(r, "provider")
	if !models.IsValidProvider(provider) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown provider", nil)
		return
	}

	redirectBase := h.cfg.Server.BaseURL + "/integrations"

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		logging.Warn().Str("provider", provider).
			Str("error", logging.SanitizeLogValue(errParam)).
			Msg("OAuth consent denied")
		metrics.RecordOAuthCallback(provider, "error")
		http.Redirect(w, r, redirectBase+"?error=consent_denied", http.StatusTemporaryRedirect)
		return
	}

	code := r.URL.Query().Get("code")
	hotelID := r.URL.Query().Get("state")
	if code == "" || hotelID == "" {
		metrics.RecordOAuthCallback(provider, "error")
		http.Redirect(w, r, redirectBase+"?error=invalid_callback", http.StatusTemporaryRedirect)
		return
	}

	// Re-verify access: the state names a hotel, but only the resolver
	// decides whether this session may still write to it.
	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelID)
	if err != nil {
		metrics.RecordOAuthCallback(provider, "error")
		http.Redirect(w, r, redirectBase+"?error=access_denied", http.StatusTemporaryRedirect)
		return
	}

	token, err := h.oauth.Exchange(r.Context(), provider, code, hotel.ID)
	if err != nil {
		logging.Error().Err(err).Str("provider", provider).Str("hotel_id", hotel.ID).
			Msg("OAuth token exchange failed")
		metrics.RecordOAuthCallback(provider, "error")
		http.Redirect(w, r, redirectBase+"?error=exchange_failed", http.StatusTemporaryRedirect)
		return
	}

	if err := h.db.UpsertToken(r.Context(), token); err != nil {
		logging.Error().Err(err).Str("provider", provider).Str("hotel_id", hotel.ID).
			Msg("OAuth token store failed")
		metrics.RecordOAuthCallback(provider, "error")
		http.Redirect(w, r, redirectBase+"?error=store_failed", http.StatusTemporaryRedirect)
		return
	}

	logging.Info().
		Str("provider", provider).
		Str("hotel_id", hotel.ID).
		Str("token_preview", logging.SecretPreview(token.AccessToken)).
		Msg("OAuth token stored")
	metrics.RecordOAuthCallback(provider, "success")
	http.Redirect(w, r, redirectBase+"?connected="+provider, http.StatusTemporaryRedirect)
}
