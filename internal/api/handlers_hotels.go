// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/validation"
)

// Hotels lists all hotels the effective principal owns, default first.
func (h *Handler) Hotels(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotels, err := h.db.ListHotelsByOwner(r.Context(), principal.EffectiveID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if hotels == nil {
		hotels = []*models.Hotel{}
	}
	respondData(w, http.StatusOK, hotels)
}

// SelectedHotel resolves the hotel the request acts on: the hotelId
// query parameter when present (access-checked), otherwise the
// principal's default hotel.
func (h *Handler) SelectedHotel(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondData(w, http.StatusOK, hotel)
}

// UpdateHotel writes the mutable settings of the hotel in the URL. The
// row is resolved with the effective principal first, so a foreign
// hotel id 404s before any write.
func (h *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotelID := chi.URLParam(r, "hotelID")
	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var settings models.HotelSettings
	if !decodeJSONBody(w, r, &settings) {
		return
	}
	if verr := validation.ValidateStruct(&settings); verr != nil {
		respondValidationError(w, verr)
		return
	}

	if err := h.db.UpdateHotelSettings(r.Context(), hotel.ID, &settings); err != nil {
		respondDomainError(w, err)
		return
	}

	logging.Info().Str("hotel_id", hotel.ID).Msg("Hotel settings updated")

	updated, err := h.db.GetHotelForOwner(r.Context(), hotel.ID, principal.EffectiveID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondData(w, http.StatusOK, updated)
}
