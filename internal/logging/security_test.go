// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package logging

import (
	"strings"
	"testing"
)

func TestSecretPreview(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"empty", "", ""},
		{"long token truncated", "ya29.a0AfH6SMBx7backhalf", "ya29.a0AfH6S..."},
		{"exactly preview length", "abcdefghijkl", "abcdef..."},
		{"short secret halved", "abcdef", "abc..."},
		{"single char", "a", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecretPreview(tt.secret); got != tt.want {
				t.Errorf("SecretPreview(%q) = %q, want %q", tt.secret, got, tt.want)
			}
		})
	}

	t.Run("never leaks full long secret", func(t *testing.T) {
		secret := strings.Repeat("s", 64)
		preview := SecretPreview(secret)
		if strings.Contains(preview, secret) {
			t.Error("Preview contains full secret")
		}
		if len(preview) > secretPreviewLen+3 {
			t.Errorf("Preview length = %d, want at most %d", len(preview), secretPreviewLen+3)
		}
	})
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "hello world", "hello world"},
		{"newline escaped", "line1\nline2", "line1\\x0aline2"},
		{"carriage return escaped", "a\rb", "a\\x0db"},
		{"tab escaped", "a\tb", "a\\x09b"},
		{"delete escaped", "a\x7fb", "a\\x7fb"},
		{"unicode preserved", "héllo wörld", "héllo wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("SanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
