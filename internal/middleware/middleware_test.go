// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Run("generates id when absent", func(t *testing.T) {
		var captured string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if captured == "" {
			t.Error("No request id in context")
		}
		if w.Header().Get("X-Request-ID") != captured {
			t.Error("Response header and context id differ")
		}
	})

	t.Run("passes through upstream id", func(t *testing.T) {
		var captured string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "upstream-id")
		handler.ServeHTTP(httptest.NewRecorder(), r)

		if captured != "upstream-id" {
			t.Errorf("Request id = %q, want upstream-id", captured)
		}
	})

	t.Run("empty context", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if got := GetRequestID(r.Context()); got != "" {
			t.Errorf("GetRequestID = %q, want empty", got)
		}
	})
}

func TestPrometheusMetrics(t *testing.T) {
	t.Run("passes request through and preserves status", func(t *testing.T) {
		handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tea", nil))

		if w.Code != http.StatusTeapot {
			t.Errorf("Status = %d, want 418", w.Code)
		}
	})

	t.Run("defaults to 200 without explicit WriteHeader", func(t *testing.T) {
		handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want 200", w.Code)
		}
	})
}
