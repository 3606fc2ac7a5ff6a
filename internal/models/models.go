// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package models defines the domain types shared across BookingBoost:
// tenants (hotels), principals, OAuth token records, commission rates,
// bookings and the impersonation audit trail.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role labels. The role is a property of the Hotel row, not of the
// principal: a principal's effective role is whatever the access-verified
// hotel row carries. One owner's hotels may disagree; that divergence is
// tolerated and surfaced, never normalized.
const (
	RoleAdmin  = "admin"
	RoleAgency = "agency"
	RoleClient = "client"
)

// IsValidRole reports whether the given role label is one of the three
// known roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAgency || role == RoleClient
}

// OAuth provider identifiers for external ad/analytics platforms.
const (
	ProviderGoogle = "google"
	ProviderMeta   = "meta"
)

// IsValidProvider reports whether the given provider name is supported.
func IsValidProvider(provider string) bool {
	return provider == ProviderGoogle || provider == ProviderMeta
}

// Principal is an authenticated identity. Principals are created by the
// external auth provider at signup and are read-only to this system; the
// local table mirrors just enough to verify a login.
type Principal struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Hotel is the tenant unit: one property/client account owned by a
// principal. A principal may own zero or more hotels; at most one is
// flagged primary. Ordering (primary first, then earliest-created) makes
// default selection deterministic.
type Hotel struct {
	ID               string `json:"id"`
	OwnerPrincipalID string `json:"owner_principal_id"`
	Name             string `json:"name"`
	ContactEmail     string `json:"contact_email,omitempty"`
	Currency         string `json:"currency"`
	Role             string `json:"role"`
	IsPrimary        bool   `json:"is_primary"`
	DisplayOrder     int    `json:"display_order"`

	// External integration identifiers.
	AnalyticsPropertyID string `json:"analytics_property_id,omitempty"`
	AdsCustomerID       string `json:"ads_customer_id,omitempty"`
	AdsManagerID        string `json:"ads_manager_id,omitempty"`
	BusinessLocationID  string `json:"business_location_id,omitempty"`
	AdAccountID         string `json:"ad_account_id,omitempty"`

	SettingsSyncedAt *time.Time `json:"settings_synced_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// HotelSettings carries the mutable settings of a hotel row. Ownership,
// role and the primary flag are not settable through this path.
type HotelSettings struct {
	Name         string `json:"name" validate:"required,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Currency     string `json:"currency" validate:"required,currency"`

	AnalyticsPropertyID string `json:"analytics_property_id" validate:"omitempty,max=64"`
	AdsCustomerID       string `json:"ads_customer_id" validate:"omitempty,max=64"`
	AdsManagerID        string `json:"ads_manager_id" validate:"omitempty,max=64"`
	BusinessLocationID  string `json:"business_location_id" validate:"omitempty,max=64"`
	AdAccountID         string `json:"ad_account_id" validate:"omitempty,max=64"`
}

// OAuthToken is one row per (hotel, provider) pair. RefreshToken and
// ExpiresAt are optional because providers may omit them; a missing
// refresh token on re-consent must not erase a previously stored one.
type OAuthToken struct {
	HotelID      string     `json:"hotel_id"`
	Provider     string     `json:"provider"`
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	AccountEmail string     `json:"account_email,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CommissionRate is a per (hotel, channel) override of the built-in
// default commission table. Rate is a fraction in [0,1].
type CommissionRate struct {
	HotelID  string  `json:"hotel_id"`
	Channel  string  `json:"channel"`
	Rate     float64 `json:"rate"`
	IsActive bool    `json:"is_active"`
}

// HiddenChannel marks a booking channel as hidden from a hotel's channel
// listings. Hidden rows follow channel renames on a best-effort basis.
type HiddenChannel struct {
	HotelID string `json:"hotel_id"`
	Channel string `json:"channel"`
}

// Booking is a single reservation attributed to a sales channel.
type Booking struct {
	ID       string    `json:"id"`
	HotelID  string    `json:"hotel_id"`
	Channel  string    `json:"channel"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	BookedAt time.Time `json:"booked_at"`
}

// ChannelRevenue is the per-channel aggregation served by the revenue
// summary endpoint. Commission is computed from the effective rate.
type ChannelRevenue struct {
	Channel    string  `json:"channel"`
	Bookings   int     `json:"bookings"`
	Gross      float64 `json:"gross"`
	Rate       float64 `json:"rate"`
	Commission float64 `json:"commission"`
	Net        float64 `json:"net"`
}

// TenantStats is one tenant's slice of the admin overview report.
type TenantStats struct {
	HotelID    string  `json:"hotel_id"`
	HotelName  string  `json:"hotel_name"`
	OwnerID    string  `json:"owner_id"`
	Role       string  `json:"role"`
	Bookings   int     `json:"bookings"`
	Gross      float64 `json:"gross"`
	LastBooked *string `json:"last_booked,omitempty"`
}

// RoleDivergence reports an owner whose hotels carry different role
// labels. Tolerated by the access layer, but worth a data-integrity look.
type RoleDivergence struct {
	OwnerPrincipalID string   `json:"owner_principal_id"`
	Roles            []string `json:"roles"`
	HotelCount       int      `json:"hotel_count"`
}

// Impersonation audit actions.
const (
	ImpersonationBegin = "begin"
	ImpersonationEnd   = "end"
)

// ImpersonationAuditEntry records one impersonation state transition.
// The audit trail exists for observability of the credential-sharing
// design; it is not a revocation mechanism.
type ImpersonationAuditEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id"`
	TargetID  string    `json:"target_id"`
	Action    string    `json:"action"`
}

// NewImpersonationAuditEntry creates an audit entry with a fresh id and
// the current timestamp.
func NewImpersonationAuditEntry(actorID, targetID, action string) *ImpersonationAuditEntry {
	return &ImpersonationAuditEntry{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
	}
}
