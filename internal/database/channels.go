// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

/*
channels.go - Channel Maintenance

MergeChannel renames a booking channel. The booking rename is the
load-bearing mutation and fails the whole operation on error. The
commission-rate and hidden-channel rows for the old name are updated on
a best-effort basis afterwards: their failures are logged and ignored,
so a merge can leave stale secondary rows behind. No transaction spans
the statements.
*/

package database

import (
	"context"
	"fmt"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
)

// MergeChannel renames all of a hotel's bookings from oldName to
// newName and returns the number of bookings moved. Secondary rows
// (commission rates, hidden channels) follow best-effort.
func (db *DB) MergeChannel(ctx context.Context, hotelID, oldName, newName string) (int64, error) {
	// Load-bearing: the booking rename must succeed or the merge fails.
	result, err := db.conn.ExecContext(ctx,
		`UPDATE bookings SET channel = ? WHERE hotel_id = ? AND channel = ?`,
		newName, hotelID, oldName,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to rename booking channel: %w", err)
	}

	moved, err := result.RowsAffected()
	if err != nil {
		moved = 0
	}

	db.mergeSecondaryRows(ctx, hotelID, oldName, newName)
	return moved, nil
}

// mergeSecondaryRows carries commission-rate and hidden-channel rows
// over to the new channel name. Explicitly non-critical: errors are
// logged as warnings and never fail the parent merge.
func (db *DB) mergeSecondaryRows(ctx context.Context, hotelID, oldName, newName string) {
	// If the new name already has a rate row, drop the old one instead
	// of renaming into a unique-constraint violation.
	var existing int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM commission_rates WHERE hotel_id = ? AND channel = ?`,
		hotelID, newName,
	).Scan(&existing); err != nil {
		logging.Warn().Err(err).Str("hotel_id", hotelID).Msg("Channel merge: commission rate check failed")
		return
	}

	var err error
	if existing > 0 {
		_, err = db.conn.ExecContext(ctx,
			`DELETE FROM commission_rates WHERE hotel_id = ? AND channel = ?`,
			hotelID, oldName,
		)
	} else {
		_, err = db.conn.ExecContext(ctx,
			`UPDATE commission_rates SET channel = ? WHERE hotel_id = ? AND channel = ?`,
			newName, hotelID, oldName,
		)
	}
	if err != nil {
		logging.Warn().Err(err).Str("hotel_id", hotelID).Str("channel", newName).
			Msg("Channel merge: commission rate carry-over failed")
	}

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM hidden_channels WHERE hotel_id = ? AND channel = ? AND EXISTS (
			SELECT 1 FROM hidden_channels WHERE hotel_id = ? AND channel = ?
		)`,
		hotelID, oldName, hotelID, newName,
	); err != nil {
		logging.Warn().Err(err).Str("hotel_id", hotelID).Msg("Channel merge: hidden channel dedupe failed")
	}
	if _, err := db.conn.ExecContext(ctx,
		`UPDATE hidden_channels SET channel = ? WHERE hotel_id = ? AND channel = ?`,
		newName, hotelID, oldName,
	); err != nil {
		logging.Warn().Err(err).Str("hotel_id", hotelID).Str("channel", newName).
			Msg("Channel merge: hidden channel carry-over failed")
	}
}

// HideChannel marks a channel hidden for a hotel. Hiding an already
// hidden channel is a no-op.
func (db *DB) HideChannel(ctx context.Context, hotelID, channel string) error {
	var exists int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM hidden_channels WHERE hotel_id = ? AND channel = ?`,
		hotelID, channel,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check hidden channel: %w", err)
	}
	if exists > 0 {
		return nil
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO hidden_channels (hotel_id, channel) VALUES (?, ?)`,
		hotelID, channel,
	)
	if err != nil {
		return fmt.Errorf("failed to hide channel: %w", err)
	}
	return nil
}

// UnhideChannel removes the hidden mark from a channel.
func (db *DB) UnhideChannel(ctx context.Context, hotelID, channel string) error {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM hidden_channels WHERE hotel_id = ? AND channel = ?`,
		hotelID, channel,
	)
	if err != nil {
		return fmt.Errorf("failed to unhide channel: %w", err)
	}
	return nil
}

// ListHiddenChannels returns a hotel's hidden channel names.
func (db *DB) ListHiddenChannels(ctx context.Context, hotelID string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT channel FROM hidden_channels WHERE hotel_id = ? ORDER BY channel`, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hidden channels: %w", err)
	}
	defer rows.Close()

	var channels []string
	for rows.Next() {
		var channel string
		if err := rows.Scan(&channel); err != nil {
			return nil, fmt.Errorf("failed to scan hidden channel: %w", err)
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}
