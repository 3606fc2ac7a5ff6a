// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package api provides the HTTP handlers and Chi routing for the
// BookingBoost dashboard API.
package api

import (
	"net/http"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/auth"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/authz"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/config"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/oauth"
)

// Handler bundles the dependencies of all HTTP handlers.
type Handler struct {
	db       *database.DB
	cfg      *config.Config
	resolver *authz.Resolver
	jwt      *auth.JWTManager
	codec    *auth.ImpersonationCodec
	oauth    *oauth.Registry
}

// NewHandler creates the handler set.
func NewHandler(db *database.DB, cfg *config.Config, resolver *authz.Resolver,
	jwt *auth.JWTManager, codec *auth.ImpersonationCodec, registry *oauth.Registry) *Handler {
	return &Handler{
		db:       db,
		cfg:      cfg,
		resolver: resolver,
		jwt:      jwt,
		codec:    codec,
		oauth:    registry,
	}
}

// requirePrincipal pulls the effective principal set by the session
// resolver middleware. A missing principal on a protected route means a
// routing mistake; respond 401 rather than panic.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*auth.EffectivePrincipal, bool) {
	principal := auth.GetEffectivePrincipal(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required", nil)
		return nil, false
	}
	return principal, true
}

// Health reports liveness and database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "UNHEALTHY", "Database unreachable", err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me returns the session's identity and impersonation state. The
// owner's identity is always reported so the admin UI can render the
// "impersonating X" banner with an exit control.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	subject := auth.GetAuthSubject(r.Context())
	principal := auth.GetEffectivePrincipal(r.Context())
	if subject == nil || principal == nil {
		respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"principal_id":           subject.ID,
		"email":                  subject.Email,
		"effective_principal_id": principal.EffectiveID,
		"is_impersonating":       principal.IsImpersonating,
		"impersonated_role":      principal.ImpersonatedRole,
	})
}
