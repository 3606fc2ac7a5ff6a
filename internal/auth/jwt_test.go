// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("mint and validate round trip", func(t *testing.T) {
		token, err := manager.MintToken("principal-1", "user@example.com")
		if err != nil {
			t.Fatalf("MintToken failed: %v", err)
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken failed: %v", err)
		}
		if claims.Subject != "principal-1" {
			t.Errorf("Subject = %q, want principal-1", claims.Subject)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("Email = %q, want user@example.com", claims.Email)
		}
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.MintToken("principal-1", "user@example.com")
		if err != nil {
			t.Fatalf("MintToken failed: %v", err)
		}

		_, err = manager.ValidateToken(token)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.MintToken("principal-1", "user@example.com")
		if err != nil {
			t.Fatalf("MintToken failed: %v", err)
		}

		_, err = manager.ValidateToken(token)
		if !errors.Is(err, ErrExpiredCredentials) {
			t.Errorf("err = %v, want ErrExpiredCredentials", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestSubjectFromRequest(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	token, err := manager.MintToken("principal-1", "user@example.com")
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		subject, err := manager.SubjectFromRequest(r)
		if err != nil {
			t.Fatalf("SubjectFromRequest failed: %v", err)
		}
		if subject.ID != "principal-1" {
			t.Errorf("ID = %q, want principal-1", subject.ID)
		}
	})

	t.Run("session cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

		subject, err := manager.SubjectFromRequest(r)
		if err != nil {
			t.Fatalf("SubjectFromRequest failed: %v", err)
		}
		if subject.Email != "user@example.com" {
			t.Errorf("Email = %q, want user@example.com", subject.Email)
		}
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		headerToken, err := manager.MintToken("header-principal", "h@example.com")
		if err != nil {
			t.Fatalf("MintToken failed: %v", err)
		}

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+headerToken)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

		subject, err := manager.SubjectFromRequest(r)
		if err != nil {
			t.Fatalf("SubjectFromRequest failed: %v", err)
		}
		if subject.ID != "header-principal" {
			t.Errorf("ID = %q, want header-principal", subject.ID)
		}
	})

	t.Run("no credentials", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := manager.SubjectFromRequest(r)
		if !errors.Is(err, ErrNoCredentials) {
			t.Errorf("err = %v, want ErrNoCredentials", err)
		}
	})
}
