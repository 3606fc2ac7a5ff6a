// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/auth"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/authz"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/validation"
)

// respondJSON sends a success or error envelope with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData sends a success envelope.
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", logging.SanitizeLogValue(code)).
			Str("error", logging.SanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError sends a 400 with structured field details.
func respondValidationError(w http.ResponseWriter, verr *validation.ValidationError) {
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: verr.Error(),
			Details: verr.Details(),
		},
	})
}

// respondDomainError maps domain sentinel errors to the HTTP taxonomy.
// Anything unmapped is an internal error: logged with detail, generic
// message to the caller.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrNotFoundOrDenied), errors.Is(err, database.ErrHotelNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Hotel not found", nil)
	case errors.Is(err, authz.ErrNoHotel), errors.Is(err, database.ErrNoHotel):
		respondError(w, http.StatusNotFound, "NO_HOTEL", "No hotel for this account", nil)
	case errors.Is(err, authz.ErrForbidden):
		respondError(w, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions", nil)
	case errors.Is(err, database.ErrTokenNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "No token for this provider", nil)
	case errors.Is(err, database.ErrPrincipalNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Principal not found", nil)
	case errors.Is(err, auth.ErrNoCredentials), errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrExpiredCredentials):
		respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
	}
}

// respondAuthRequired writes the standard 401 envelope. Used by the
// session resolver middleware.
func respondAuthRequired(w http.ResponseWriter, _ *http.Request, _ error) {
	respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required", nil)
}

// decodeJSONBody decodes a bounded request body into v.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", nil)
		return false
	}
	return true
}

// hotelIDParam returns the optional hotelId query parameter. It is a
// client-side routing preference only; the access resolver enforces
// ownership regardless of its value.
func hotelIDParam(r *http.Request) string {
	return r.URL.Query().Get("hotelId")
}
