// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/auth"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/validation"
)

// loginRequest is the login payload.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// Login verifies credentials and mints the session cookie. Invalid
// email and wrong password produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	principal, err := h.db.GetPrincipalByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrPrincipalNotFound) {
			respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Invalid email or password", nil)
			return
		}
		respondDomainError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(req.Password)); err != nil {
		logging.Warn().Str("email", logging.SanitizeLogValue(req.Email)).Msg("Login failed")
		respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Invalid email or password", nil)
		return
	}

	token, err := h.jwt.MintToken(principal.ID, principal.Email)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.jwt.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})

	respondData(w, http.StatusOK, map[string]string{
		"principal_id": principal.ID,
		"email":        principal.Email,
	})
}

// Logout clears the session cookie and any active impersonation grant.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
	h.codec.End(w)

	respondData(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
