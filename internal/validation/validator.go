// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Package validation provides struct validation using go-playground/validator
// v10. It exposes a thread-safe singleton validator with custom rules for
// currency codes, OAuth providers and booking channel names.
//
// Example usage:
//
//	type SetRateRequest struct {
//	    Channel string  `validate:"required,channelname"`
//	    Rate    float64 `validate:"min=0,max=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), nil)
//	    return
//	}
package validation

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	field   string
	tag     string
	message string
}

// Field returns the struct field name that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// Details returns a structured map suitable for API error details.
func (e *ValidationError) Details() map[string]interface{} {
	return map[string]interface{}{
		"field":      e.field,
		"constraint": e.tag,
	}
}

// getValidator returns the singleton validator, registering custom rules
// on first use.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// currency: ISO 4217 style, three uppercase letters.
		_ = validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			if len(v) != 3 {
				return false
			}
			for _, r := range v {
				if r < 'A' || r > 'Z' {
					return false
				}
			}
			return true
		})

		// provider: a supported OAuth provider name.
		_ = validate.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
			return models.IsValidProvider(fl.Field().String())
		})

		// channelname: printable, non-blank, bounded booking channel name.
		_ = validate.RegisterValidation("channelname", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			if strings.TrimSpace(v) == "" || len(v) > 100 {
				return false
			}
			for _, r := range v {
				if unicode.IsControl(r) {
					return false
				}
			}
			return true
		})

		// rolename: one of the three role labels.
		_ = validate.RegisterValidation("rolename", func(fl validator.FieldLevel) bool {
			return models.IsValidRole(fl.Field().String())
		})
	})
	return validate
}

// ValidateStruct validates a struct and returns the first failure, or
// nil if validation passes.
func ValidateStruct(v interface{}) *ValidationError {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{
			field:   "",
			tag:     "",
			message: "validation failed",
		}
	}

	first := verrs[0]
	return &ValidationError{
		field:   first.Field(),
		tag:     first.Tag(),
		message: fmt.Sprintf("field %s failed validation on %s", first.Field(), describeTag(first)),
	}
}

// describeTag renders a tag with its parameter when present.
func describeTag(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
