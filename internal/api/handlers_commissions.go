// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"net/http"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/authz"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/validation"
)

// commissionView is one channel's effective commission state.
type commissionView struct {
	Channel     string  `json:"channel"`
	Rate        float64 `json:"rate"`
	IsCustom    bool    `json:"is_custom"`
	IsActive    bool    `json:"is_active"`
	DefaultRate float64 `json:"default_rate"`
}

// setCommissionRequest is the payload for a rate override.
type setCommissionRequest struct {
	Channel  string  `json:"channel" validate:"required,channelname"`
	Rate     float64 `json:"rate" validate:"gte=0,lte=1"`
	IsActive bool    `json:"is_active"`
}

// mergeChannelsRequest renames a booking channel.
type mergeChannelsRequest struct {
	From string `json:"from" validate:"required,channelname"`
	To   string `json:"to" validate:"required,channelname"`
}

// hideChannelRequest toggles a channel's hidden mark.
type hideChannelRequest struct {
	Channel string `json:"channel" validate:"required,channelname"`
	Hidden  bool   `json:"hidden"`
}

// ListCommissions returns the effective commission rate per channel:
// every channel seen in the hotel's bookings plus any channel with a
// custom row, each annotated with the built-in default.
func (h *Handler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	custom, err := h.db.ListCommissionRates(r.Context(), hotel.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	customByChannel := make(map[string]*models.CommissionRate, len(custom))
	for _, rate := range custom {
		customByChannel[rate.Channel] = rate
	}

	rows, err := h.db.ChannelRevenueRows(r.Context(), hotel.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	seen := make(map[string]bool)
	views := []*commissionView{}
	appendView := func(channel string) {
		if seen[channel] {
			return
		}
		seen[channel] = true

		view := &commissionView{
			Channel:     channel,
			DefaultRate: database.DefaultCommissionRate(channel),
			Rate:        database.DefaultCommissionRate(channel),
		}
		if row, ok := customByChannel[channel]; ok {
			view.IsCustom = true
			view.IsActive = row.IsActive
			if row.IsActive {
				view.Rate = row.Rate
			}
		}
		views = append(views, view)
	}

	for _, row := range rows {
		appendView(row.Channel)
	}
	for _, rate := range custom {
		appendView(rate.Channel)
	}

	respondData(w, http.StatusOK, views)
}

// SetCommission writes a rate override for the resolved hotel. Gated to
// agency and admin roles read off the access-verified row.
func (h *Handler) SetCommission(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if err := authz.RequireRole(hotel, models.RoleAgency, models.RoleAdmin); err != nil {
		respondDomainError(w, err)
		return
	}

	var req setCommissionRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	rate := &models.CommissionRate{
		HotelID:  hotel.ID,
		Channel:  req.Channel,
		Rate:     req.Rate,
		IsActive: req.IsActive,
	}
	if err := h.db.SetCommissionRate(r.Context(), rate); err != nil {
		respondDomainError(w, err)
		return
	}

	logging.Info().Str("hotel_id", hotel.ID).Str("channel", req.Channel).
		Float64("rate", req.Rate).Msg("Commission rate set")
	respondData(w, http.StatusOK, rate)
}

// MergeChannels renames a booking channel on the resolved hotel. Gated
// to agency and admin. The response reports how many bookings moved;
// secondary rows follow best-effort and may lag on failure.
func (h *Handler) MergeChannels(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if err := authz.RequireRole(hotel, models.RoleAgency, models.RoleAdmin); err != nil {
		respondDomainError(w, err)
		return
	}

	var req mergeChannelsRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if req.From == req.To {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Source and target channel are identical", nil)
		return
	}

	moved, err := h.db.MergeChannel(r.Context(), hotel.ID, req.From, req.To)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	logging.Info().Str("hotel_id", hotel.ID).
		Str("from", logging.SanitizeLogValue(req.From)).
		Str("to", logging.SanitizeLogValue(req.To)).
		Int64("moved", moved).Msg("Channel merged")

	respondData(w, http.StatusOK, map[string]interface{}{
		"from":  req.From,
		"to":    req.To,
		"moved": moved,
	})
}

// HideChannel toggles a channel's hidden mark on the resolved hotel.
func (h *Handler) HideChannel(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var req hideChannelRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	if req.Hidden {
		err = h.db.HideChannel(r.Context(), hotel.ID, req.Channel)
	} else {
		err = h.db.UnhideChannel(r.Context(), hotel.ID, req.Channel)
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"channel": req.Channel,
		"hidden":  req.Hidden,
	})
}
