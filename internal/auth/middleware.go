// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package auth

import (
	"net/http"
)

// SessionResolver validates the session and resolves the effective
// principal for every protected request.
type SessionResolver struct {
	jwt   *JWTManager
	codec *ImpersonationCodec

	// onUnauthenticated writes the 401 response; injected by the API
	// layer so the JSON envelope stays in one place.
	onUnauthenticated func(w http.ResponseWriter, r *http.Request, err error)
}

// NewSessionResolver creates the resolver middleware.
func NewSessionResolver(jwt *JWTManager, codec *ImpersonationCodec,
	onUnauthenticated func(w http.ResponseWriter, r *http.Request, err error)) *SessionResolver {
	return &SessionResolver{
		jwt:               jwt,
		codec:             codec,
		onUnauthenticated: onUnauthenticated,
	}
}

// Resolve builds the EffectivePrincipal for an authenticated request:
// the session's principal, with the impersonation target substituted as
// the effective identity when a valid grant is present.
func (s *SessionResolver) Resolve(r *http.Request) (*AuthSubject, *EffectivePrincipal, error) {
	subject, err := s.jwt.SubjectFromRequest(r)
	if err != nil {
		return nil, nil, err
	}

	principal := &EffectivePrincipal{
		OwnerID:     subject.ID,
		EffectiveID: subject.ID,
	}

	if grant, ok := s.codec.FromRequest(r); ok {
		principal.EffectiveID = grant.TargetID
		principal.IsImpersonating = true
		principal.ImpersonatedRole = grant.TargetRole
	}

	return subject, principal, nil
}

// Middleware authenticates the request and stores the subject and
// effective principal in the request context. Unauthenticated requests
// are rejected with 401.
func (s *SessionResolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, principal, err := s.Resolve(r)
		if err != nil {
			s.onUnauthenticated(w, r, err)
			return
		}

		ctx := WithAuthSubject(r.Context(), subject)
		ctx = WithEffectivePrincipal(ctx, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
