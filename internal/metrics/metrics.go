// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package metrics registers and records Prometheus metrics: HTTP
// request counters and latency, plus counters for impersonation
// transitions and OAuth callback outcomes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingboost_api_requests_total",
		Help: "Total API requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	apiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookingboost_api_request_duration_seconds",
		Help:    "API request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookingboost_api_active_requests",
		Help: "Number of in-flight API requests.",
	})

	impersonations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingboost_impersonations_total",
		Help: "Impersonation state transitions by action (begin, end).",
	}, []string{"action"})

	oauthCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingboost_oauth_callbacks_total",
		Help: "OAuth callback outcomes by provider and result.",
	}, []string{"provider", "result"})
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	apiRequests.WithLabelValues(method, path, status).Inc()
	apiDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		activeRequests.Inc()
	} else {
		activeRequests.Dec()
	}
}

// RecordImpersonation counts an impersonation begin or end.
func RecordImpersonation(action string) {
	impersonations.WithLabelValues(action).Inc()
}

// RecordOAuthCallback counts an OAuth callback outcome ("success" or
// "error").
func RecordOAuthCallback(provider, result string) {
	oauthCallbacks.WithLabelValues(provider, result).Inc()
}
