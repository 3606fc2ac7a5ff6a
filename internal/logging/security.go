// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package logging

import (
	"fmt"
	"strings"
)

// secretPreviewLen is the number of leading characters of a bearer secret
// that may appear in logs or listing responses.
const secretPreviewLen = 12

// SecretPreview returns a bounded-length preview of a bearer secret.
// OAuth access and refresh tokens must never appear in full in logs or
// client-facing responses; this is the only sanctioned rendering.
func SecretPreview(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= secretPreviewLen {
		return secret[:len(secret)/2] + "..."
	}
	return secret[:secretPreviewLen] + "..."
}

// SanitizeLogValue removes control characters from strings to prevent log
// injection. Newlines, carriage returns and other control characters could
// otherwise allow forged log entries.
func SanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
