// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package validation

import (
	"strings"
	"testing"
)

func TestCurrencyValidator(t *testing.T) {
	type payload struct {
		Currency string `validate:"currency"`
	}

	tests := []struct {
		value string
		valid bool
	}{
		{"EUR", true},
		{"USD", true},
		{"eur", false},
		{"EU", false},
		{"EURO", false},
		{"E1R", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateStruct(&payload{Currency: tt.value})
			if (err == nil) != tt.valid {
				t.Errorf("currency %q valid = %v, want %v", tt.value, err == nil, tt.valid)
			}
		})
	}
}

func TestChannelNameValidator(t *testing.T) {
	type payload struct {
		Channel string `validate:"channelname"`
	}

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple", "Booking.com", true},
		{"with spaces", "Expedia Group", true},
		{"blank", "   ", false},
		{"empty", "", false},
		{"control chars", "bad\nchannel", false},
		{"too long", strings.Repeat("x", 101), false},
		{"max length", strings.Repeat("x", 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&payload{Channel: tt.value})
			if (err == nil) != tt.valid {
				t.Errorf("channel %q valid = %v, want %v", tt.value, err == nil, tt.valid)
			}
		})
	}
}

func TestProviderAndRoleValidators(t *testing.T) {
	type payload struct {
		Provider string `validate:"omitempty,provider"`
		Role     string `validate:"omitempty,rolename"`
	}

	t.Run("known values pass", func(t *testing.T) {
		if err := ValidateStruct(&payload{Provider: "google", Role: "agency"}); err != nil {
			t.Errorf("ValidateStruct failed: %v", err)
		}
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		if err := ValidateStruct(&payload{Provider: "tiktok"}); err == nil {
			t.Error("Unknown provider passed")
		}
	})

	t.Run("unknown role fails", func(t *testing.T) {
		if err := ValidateStruct(&payload{Role: "superuser"}); err == nil {
			t.Error("Unknown role passed")
		}
	})
}

func TestValidationErrorDetails(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	verr := ValidateStruct(&payload{Email: "not-an-email"})
	if verr == nil {
		t.Fatal("ValidateStruct passed invalid email")
	}
	if verr.Field() != "Email" {
		t.Errorf("Field = %q, want Email", verr.Field())
	}

	details := verr.Details()
	if details["field"] != "Email" || details["constraint"] != "email" {
		t.Errorf("Details = %v", details)
	}
}
