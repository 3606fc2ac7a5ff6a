// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"net/http"
	"time"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// revenueSummary is the response of the revenue summary endpoint.
type revenueSummary struct {
	HotelID       string                   `json:"hotel_id"`
	Currency      string                   `json:"currency"`
	Channels      []*models.ChannelRevenue `json:"channels"`
	TotalGross    float64                  `json:"total_gross"`
	TotalNet      float64                  `json:"total_net"`
	HiddenSkipped int                      `json:"hidden_skipped"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

// RevenueSummary aggregates per-channel revenue for the resolved hotel,
// applies the effective commission rate per channel and drops hidden
// channels from the listing.
func (h *Handler) RevenueSummary(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	hotel, err := h.resolver.ResolveHotel(r.Context(), principal.EffectiveID, hotelIDParam(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	rows, err := h.db.ChannelRevenueRows(r.Context(), hotel.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	hiddenList, err := h.db.ListHiddenChannels(r.Context(), hotel.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	hidden := make(map[string]bool, len(hiddenList))
	for _, ch := range hiddenList {
		hidden[ch] = true
	}

	summary := &revenueSummary{
		HotelID:     hotel.ID,
		Currency:    hotel.Currency,
		Channels:    []*models.ChannelRevenue{},
		GeneratedAt: time.Now(),
	}

	for _, row := range rows {
		if hidden[row.Channel] {
			summary.HiddenSkipped++
			continue
		}

		rate, err := h.db.GetCommissionRate(r.Context(), hotel.ID, row.Channel)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		row.Rate = rate
		row.Commission = row.Gross * rate
		row.Net = row.Gross - row.Commission

		summary.Channels = append(summary.Channels, row)
		summary.TotalGross += row.Gross
		summary.TotalNet += row.Net
	}

	respondData(w, http.StatusOK, summary)
}
