// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

/*
impersonation.go - Impersonation Controller

Two states: Normal and Impersonating(targetID, targetRole). The grant is
carried in a pair of HMAC-signed httpOnly cookies with a fixed max-age;
both are set in one response and cleared in one response. Absence of
either cookie, or a failed signature check, means Normal. A re-entrant
begin overwrites the grant (no stacking, last writer wins).

There is no server-side revocation list: expiry is purely cookie
max-age, so a copied cookie remains valid until natural expiry. Known
hardening gap, preserved deliberately.
*/

package auth

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

// Impersonation cookie names. Both must be present and valid for a
// grant to be active.
const (
	ImpersonateIDCookie   = "bb_impersonate_id"
	ImpersonateRoleCookie = "bb_impersonate_role"
)

// ImpersonationGrant is the decoded cookie pair: the target principal
// and the role read off the target's hotel row at begin time.
type ImpersonationGrant struct {
	TargetID   string
	TargetRole string
}

// ImpersonationCodec signs, sets and clears the impersonation cookie
// pair.
type ImpersonationCodec struct {
	sc     *securecookie.SecureCookie
	maxAge int
	secure bool
}

// NewImpersonationCodec creates a codec. hashKey signs the cookie
// values; maxAgeSeconds bounds the grant lifetime; secure controls the
// cookie Secure flag (off in local development).
func NewImpersonationCodec(hashKey []byte, maxAgeSeconds int, secure bool) *ImpersonationCodec {
	sc := securecookie.New(hashKey, nil)
	sc.MaxAge(maxAgeSeconds)
	return &ImpersonationCodec{
		sc:     sc,
		maxAge: maxAgeSeconds,
		secure: secure,
	}
}

// Begin writes the cookie pair for a grant. Both cookies go out on the
// same response; an existing grant is overwritten.
func (c *ImpersonationCodec) Begin(w http.ResponseWriter, grant ImpersonationGrant) error {
	encodedID, err := c.sc.Encode(ImpersonateIDCookie, grant.TargetID)
	if err != nil {
		return err
	}
	encodedRole, err := c.sc.Encode(ImpersonateRoleCookie, grant.TargetRole)
	if err != nil {
		return err
	}

	http.SetCookie(w, c.cookie(ImpersonateIDCookie, encodedID, c.maxAge))
	http.SetCookie(w, c.cookie(ImpersonateRoleCookie, encodedRole, c.maxAge))
	return nil
}

// End clears both cookies. Also used as the fail-safe path: any broken
// grant must be cleared before redirecting, never left active.
func (c *ImpersonationCodec) End(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(ImpersonateIDCookie, "", -1))
	http.SetCookie(w, c.cookie(ImpersonateRoleCookie, "", -1))
}

// FromRequest decodes the grant from the request cookies. Returns
// (grant, true) only when both cookies are present and verify; anything
// else is Normal.
func (c *ImpersonationCodec) FromRequest(r *http.Request) (ImpersonationGrant, bool) {
	var grant ImpersonationGrant

	idCookie, err := r.Cookie(ImpersonateIDCookie)
	if err != nil {
		return grant, false
	}
	roleCookie, err := r.Cookie(ImpersonateRoleCookie)
	if err != nil {
		return grant, false
	}

	if err := c.sc.Decode(ImpersonateIDCookie, idCookie.Value, &grant.TargetID); err != nil {
		return ImpersonationGrant{}, false
	}
	if err := c.sc.Decode(ImpersonateRoleCookie, roleCookie.Value, &grant.TargetRole); err != nil {
		return ImpersonationGrant{}, false
	}
	if grant.TargetID == "" {
		return ImpersonationGrant{}, false
	}
	return grant, true
}

// cookie builds a cookie with the controller's fixed attributes:
// httpOnly, SameSite Lax, path /.
func (c *ImpersonationCodec) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
