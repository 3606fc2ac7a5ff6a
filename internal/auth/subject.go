// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package auth provides session verification and the impersonation
// controller. Every inbound request passes through the session resolver
// here before any hotel-scoped access happens.
package auth

import (
	"context"
	"errors"
)

// Standard authentication errors.
var (
	// ErrNoCredentials indicates no session cookie or bearer token was provided.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrInvalidCredentials indicates the session token was invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrExpiredCredentials indicates the session token has expired.
	ErrExpiredCredentials = errors.New("credentials expired")
)

// AuthSubject is the authenticated identity extracted from the session
// token. It is the session's real principal, before impersonation
// substitution.
type AuthSubject struct {
	// ID is the principal's unique identifier.
	ID string

	// Email is the principal's email address.
	Email string
}

// EffectivePrincipal is the session resolver's output: the identity all
// data access runs as. While an impersonation grant is active,
// EffectiveID is the grant's target and OwnerID remains the admin's
// real id. Capability checks (such as the admin-token fallback) key off
// the owner; data access keys off the effective id.
//
// An expired impersonation cookie is simply absent: the resolver cannot
// distinguish "never impersonated" from "impersonation expired".
type EffectivePrincipal struct {
	// OwnerID is the session's real principal id.
	OwnerID string

	// EffectiveID is the principal all hotel-scoped access resolves
	// against. Equal to OwnerID unless impersonating.
	EffectiveID string

	// IsImpersonating reports whether an impersonation grant is active.
	IsImpersonating bool

	// ImpersonatedRole is the target's role as recorded in the grant.
	// Empty unless impersonating.
	ImpersonatedRole string
}

type contextKey string

const (
	subjectKey   contextKey = "auth_subject"
	effectiveKey contextKey = "effective_principal"
)

// WithAuthSubject returns a context carrying the authenticated subject.
func WithAuthSubject(ctx context.Context, subject *AuthSubject) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// GetAuthSubject extracts the authenticated subject from the context.
// Returns nil for unauthenticated requests.
func GetAuthSubject(ctx context.Context) *AuthSubject {
	if subject, ok := ctx.Value(subjectKey).(*AuthSubject); ok {
		return subject
	}
	return nil
}

// WithEffectivePrincipal returns a context carrying the resolver output.
func WithEffectivePrincipal(ctx context.Context, principal *EffectivePrincipal) context.Context {
	return context.WithValue(ctx, effectiveKey, principal)
}

// GetEffectivePrincipal extracts the resolver output from the context.
// Returns nil for unauthenticated requests.
func GetEffectivePrincipal(ctx context.Context) *EffectivePrincipal {
	if principal, ok := ctx.Value(effectiveKey).(*EffectivePrincipal); ok {
		return principal
	}
	return nil
}
