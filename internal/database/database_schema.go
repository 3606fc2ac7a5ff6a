// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"fmt"
)

// schemaStatements creates all tables. Statements are idempotent so
// startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS principals (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS hotels (
		id                    TEXT PRIMARY KEY,
		owner_principal_id    TEXT NOT NULL,
		name                  TEXT NOT NULL,
		contact_email         TEXT NOT NULL DEFAULT '',
		currency              TEXT NOT NULL DEFAULT 'EUR',
		role                  TEXT NOT NULL DEFAULT 'client',
		is_primary            BOOLEAN NOT NULL DEFAULT FALSE,
		display_order         INTEGER NOT NULL DEFAULT 0,
		analytics_property_id TEXT NOT NULL DEFAULT '',
		ads_customer_id       TEXT NOT NULL DEFAULT '',
		ads_manager_id        TEXT NOT NULL DEFAULT '',
		business_location_id  TEXT NOT NULL DEFAULT '',
		ad_account_id         TEXT NOT NULL DEFAULT '',
		settings_synced_at    TIMESTAMP,
		created_at            TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS oauth_tokens (
		hotel_id      TEXT NOT NULL,
		provider      TEXT NOT NULL,
		access_token  TEXT NOT NULL,
		refresh_token TEXT NOT NULL DEFAULT '',
		expires_at    TIMESTAMP,
		account_email TEXT NOT NULL DEFAULT '',
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (hotel_id, provider)
	)`,

	`CREATE TABLE IF NOT EXISTS commission_rates (
		hotel_id  TEXT NOT NULL,
		channel   TEXT NOT NULL,
		rate      DOUBLE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		UNIQUE (hotel_id, channel)
	)`,

	`CREATE TABLE IF NOT EXISTS hidden_channels (
		hotel_id TEXT NOT NULL,
		channel  TEXT NOT NULL,
		UNIQUE (hotel_id, channel)
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id        TEXT PRIMARY KEY,
		hotel_id  TEXT NOT NULL,
		channel   TEXT NOT NULL,
		amount    DOUBLE NOT NULL,
		currency  TEXT NOT NULL DEFAULT 'EUR',
		booked_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS impersonation_audit (
		id        UUID PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		actor_id  TEXT NOT NULL,
		target_id TEXT NOT NULL,
		action    TEXT NOT NULL
	)`,
}

// initializeSchema creates all tables if they do not exist.
func (db *DB) initializeSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
