// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package authz

import (
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// RequireRole checks the access-verified hotel's role against the
// allowed set and returns ErrForbidden on a mismatch.
//
// The hotel must come from the Resolver. Sourcing the role anywhere
// else (a separately fetched row, a client-supplied value) opens the
// confused-deputy gap this function exists to close: role lives on the
// hotel row, so the row's ownership check and the role check must be
// the same row.
func RequireRole(hotel *models.Hotel, allowed ...string) error {
	if hotel == nil {
		return ErrForbidden
	}
	for _, role := range allowed {
		if hotel.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// IsAdmin reports whether the access-verified hotel carries the admin
// role.
func IsAdmin(hotel *models.Hotel) bool {
	return hotel != nil && hotel.Role == models.RoleAdmin
}
