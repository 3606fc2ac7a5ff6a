// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package authz provides hotel-scoped access resolution and the role
// gate. Every hotel-scoped operation resolves its hotel through this
// package using the effective principal; the role check always reads
// the resolver-returned row, never a separately fetched one.
package authz

import (
	"context"
	"errors"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// Access errors mapped to the HTTP taxonomy by the API layer.
var (
	// ErrNotFoundOrDenied merges "does not exist" with "not yours" so a
	// caller cannot probe for the existence of other tenants' hotels.
	ErrNotFoundOrDenied = errors.New("hotel not found")

	// ErrNoHotel means the effective principal owns zero hotels; the UI
	// routes to onboarding.
	ErrNoHotel = errors.New("no hotel for principal")

	// ErrForbidden means the access-verified hotel's role is not in the
	// endpoint's allowed set.
	ErrForbidden = errors.New("insufficient role")
)

// Resolver performs ownership-scoped hotel lookups.
type Resolver struct {
	db *database.DB
}

// NewResolver creates a hotel access resolver backed by the database.
func NewResolver(db *database.DB) *Resolver {
	return &Resolver{db: db}
}

// ResolveHotel returns the single hotel the effective principal may act
// on for this request.
//
// With a requested id, the row must match both the id and the owner;
// a mismatch is indistinguishable from nonexistence. Without one, the
// principal's default hotel is returned: primary-flagged first, then
// earliest-created. Read-only; safe for concurrent callers.
func (r *Resolver) ResolveHotel(ctx context.Context, effectivePrincipalID, requestedHotelID string) (*models.Hotel, error) {
	if requestedHotelID != "" {
		hotel, err := r.db.GetHotelForOwner(ctx, requestedHotelID, effectivePrincipalID)
		if err != nil {
			if errors.Is(err, database.ErrHotelNotFound) {
				return nil, ErrNotFoundOrDenied
			}
			return nil, err
		}
		return hotel, nil
	}

	hotel, err := r.db.GetDefaultHotelForOwner(ctx, effectivePrincipalID)
	if err != nil {
		if errors.Is(err, database.ErrNoHotel) {
			return nil, ErrNoHotel
		}
		return nil, err
	}
	return hotel, nil
}

// ResolveOwnHotel resolves the caller's own default hotel, ignoring any
// active impersonation. System-wide admin endpoints must gate on the
// caller's own row, not on a row the caller picked by id.
func (r *Resolver) ResolveOwnHotel(ctx context.Context, ownerPrincipalID string) (*models.Hotel, error) {
	return r.ResolveHotel(ctx, ownerPrincipalID, "")
}
