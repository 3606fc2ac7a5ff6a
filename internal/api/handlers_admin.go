// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

/*
handlers_admin.go - Admin Surface

Impersonation and the cross-tenant reports. All endpoints here gate on
the CALLER'S OWN default hotel row, never on a row picked by id: an
admin role must be proven on a row the caller owns before any
cross-tenant read or grant is issued. Impersonation while already
impersonating re-gates on the real owner's row, so a grant cannot be
parlayed into another grant.
*/

package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/auth"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/authz"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/metrics"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/validation"
)

// overviewConcurrency bounds the tenant stats fan-out.
const overviewConcurrency = 8

// impersonateRequest names the principal to act as.
type impersonateRequest struct {
	TargetPrincipalID string `json:"target_principal_id" validate:"required,max=64"`
}

// requireAdmin proves the admin role on the caller's own default hotel
// row. Impersonation is ignored here: a grant never raises privileges
// for the admin surface itself.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) (*auth.EffectivePrincipal, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return nil, false
	}

	ownHotel, err := h.resolver.ResolveOwnHotel(r.Context(), principal.OwnerID)
	if err != nil {
		respondDomainError(w, err)
		return nil, false
	}
	if err := authz.RequireRole(ownHotel, models.RoleAdmin); err != nil {
		respondDomainError(w, err)
		return nil, false
	}
	return principal, true
}

// Impersonate begins acting as another principal. The grant's role is
// read off the target's default hotel row at begin time and frozen into
// the cookie; later role changes on the target do not retroactively
// alter an active grant.
func (h *Handler) Impersonate(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	var req impersonateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if req.TargetPrincipalID == principal.OwnerID {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Cannot impersonate yourself", nil)
		return
	}

	if _, err := h.db.GetPrincipalByID(r.Context(), req.TargetPrincipalID); err != nil {
		respondDomainError(w, err)
		return
	}

	targetHotel, err := h.db.GetDefaultHotelForOwner(r.Context(), req.TargetPrincipalID)
	if err != nil {
		if errors.Is(err, database.ErrNoHotel) {
			respondError(w, http.StatusNotFound, "NO_HOTEL", "Target has no hotel to act on", nil)
			return
		}
		respondDomainError(w, err)
		return
	}

	grant := auth.ImpersonationGrant{
		TargetID:   req.TargetPrincipalID,
		TargetRole: targetHotel.Role,
	}
	if err := h.codec.Begin(w, grant); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue impersonation grant", err)
		return
	}

	entry := models.NewImpersonationAuditEntry(principal.OwnerID, req.TargetPrincipalID, models.ImpersonationBegin)
	if err := h.db.RecordImpersonation(r.Context(), entry); err != nil {
		// The grant is already out; losing the audit row must not undo it.
		logging.Error().Err(err).Msg("Failed to record impersonation begin")
	}
	metrics.RecordImpersonation(models.ImpersonationBegin)

	logging.Info().
		Str("actor_id", principal.OwnerID).
		Str("target_id", req.TargetPrincipalID).
		Str("target_role", targetHotel.Role).
		Msg("Impersonation started")

	respondData(w, http.StatusOK, map[string]string{
		"target_principal_id": req.TargetPrincipalID,
		"target_role":         targetHotel.Role,
	})
}

// ImpersonateExit clears the grant. Exiting without an active grant is
// a no-op success so the UI can always offer the control.
func (h *Handler) ImpersonateExit(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	grant, active := h.codec.FromRequest(r)
	h.codec.End(w)

	if active {
		entry := models.NewImpersonationAuditEntry(principal.OwnerID, grant.TargetID, models.ImpersonationEnd)
		if err := h.db.RecordImpersonation(r.Context(), entry); err != nil {
			logging.Error().Err(err).Msg("Failed to record impersonation end")
		}
		metrics.RecordImpersonation(models.ImpersonationEnd)

		logging.Info().
			Str("actor_id", principal.OwnerID).
			Str("target_id", grant.TargetID).
			Msg("Impersonation ended")
	}

	respondData(w, http.StatusOK, map[string]string{"status": "normal"})
}

// AdminOverview fans out booking stats across every tenant. Each
// tenant's aggregate query runs concurrently with a bounded group; one
// tenant failing fails the report rather than silently dropping rows.
func (h *Handler) AdminOverview(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	hotels, err := h.db.ListAllHotels(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	stats := make([]*models.TenantStats, len(hotels))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(overviewConcurrency)
	for i, hotel := range hotels {
		g.Go(func() error {
			s, err := h.db.TenantStats(ctx, hotel)
			if err != nil {
				return err
			}
			mu.Lock()
			stats[i] = s
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"tenants": stats,
		"count":   len(stats),
	})
}

// RoleDivergence lists owners whose hotels carry conflicting role
// labels. The access layer tolerates these; this report makes them
// visible to operators.
func (h *Handler) RoleDivergence(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	divergences, err := h.db.ListRoleDivergences(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if divergences == nil {
		divergences = []*models.RoleDivergence{}
	}
	respondData(w, http.StatusOK, divergences)
}

// ImpersonationAudit returns the recent impersonation events, newest
// first. Limit defaults to 100.
func (h *Handler) ImpersonationAudit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be between 1 and 1000", nil)
			return
		}
		limit = parsed
	}

	entries, err := h.db.ListImpersonationAudit(r.Context(), limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []*models.ImpersonationAuditEntry{}
	}
	respondData(w, http.StatusOK, entries)
}
