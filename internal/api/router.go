// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/auth"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/middleware"
)

// NewRouter wires the full HTTP surface. Health and metrics stay
// outside the session resolver; everything else under /api/v1 requires
// a valid session, with impersonation resolved per request.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.PrometheusMetrics)

	r.Handle("/metrics", promhttp.Handler())

	sessions := auth.NewSessionResolver(h.jwt, h.codec, respondAuthRequired)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		// Login gets its own tight per-IP budget; everything else
		// shares the general one.
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(h.cfg.RateLimit.LoginPerFiveMinutes, 5*time.Minute))
			r.Post("/auth/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(h.cfg.RateLimit.RequestsPerMinute, time.Minute))
			r.Use(sessions.Middleware)

			r.Post("/auth/logout", h.Logout)
			r.Get("/me", h.Me)

			r.Get("/hotels", h.Hotels)
			r.Get("/hotels/selected", h.SelectedHotel)
			r.Put("/hotels/{hotelID}", h.UpdateHotel)

			r.Get("/stats/revenue", h.RevenueSummary)

			r.Get("/integrations", h.Integrations)
			r.Get("/oauth/{provider}/start", h.OAuthStart)
			r.Get("/oauth/{provider}/callback", h.OAuthCallback)

			r.Get("/commissions", h.ListCommissions)
			r.Put("/commissions", h.SetCommission)
			r.Post("/channels/merge", h.MergeChannels)
			r.Post("/channels/hide", h.HideChannel)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/impersonate", h.Impersonate)
				r.Post("/impersonate/exit", h.ImpersonateExit)
				r.Get("/overview", h.AdminOverview)
				r.Get("/role-divergence", h.RoleDivergence)
				r.Get("/audit/impersonations", h.ImpersonationAudit)
			})
		})
	})

	return r
}
