// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import "errors"

// Sentinel errors returned by data access methods.
var (
	// ErrHotelNotFound is returned when a hotel lookup matches no row.
	// An ownership mismatch yields the same error as a nonexistent id so
	// callers cannot probe for existence.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrNoHotel is returned when a principal owns zero hotels. Callers
	// route to onboarding.
	ErrNoHotel = errors.New("principal owns no hotel")

	// ErrTokenNotFound is returned when no token row exists for a
	// (hotel, provider) pair.
	ErrTokenNotFound = errors.New("oauth token not found")

	// ErrPrincipalNotFound is returned when a principal lookup matches
	// no row.
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrInvalidRole is returned when an unknown role label is written.
	ErrInvalidRole = errors.New("invalid role")
)
