// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

/*
commissions.go - Commission Rate Store

Per (hotel, channel) rate overrides with a built-in default table.
GetCommissionRate returns the active custom row when present, otherwise
the default for the channel, otherwise a generic fallback. Inactive
custom rows are ignored (the default applies while disabled).
*/

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// defaultCommissionRates is the built-in fallback table used when a
// hotel has no active custom row for a channel.
var defaultCommissionRates = map[string]float64{
	"Booking.com": 0.15,
	"Expedia":     0.18,
	"Airbnb":      0.14,
	"Agoda":       0.17,
	"HRS":         0.15,
	"Direct":      0.00,
}

// fallbackCommissionRate applies to channels absent from the default
// table.
const fallbackCommissionRate = 0.15

// DefaultCommissionRate returns the built-in rate for a channel, or the
// generic fallback for unknown channels.
func DefaultCommissionRate(channel string) float64 {
	if rate, ok := defaultCommissionRates[channel]; ok {
		return rate
	}
	return fallbackCommissionRate
}

// GetCommissionRate returns the effective commission rate for a
// (hotel, channel) pair: the active custom row if one exists, otherwise
// the built-in default.
func (db *DB) GetCommissionRate(ctx context.Context, hotelID, channel string) (float64, error) {
	query := `SELECT rate, is_active FROM commission_rates WHERE hotel_id = ? AND channel = ?`

	var rate float64
	var isActive bool
	err := db.conn.QueryRowContext(ctx, query, hotelID, channel).Scan(&rate, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultCommissionRate(channel), nil
		}
		return 0, fmt.Errorf("failed to query commission rate: %w", err)
	}

	if !isActive {
		return DefaultCommissionRate(channel), nil
	}
	return rate, nil
}

// SetCommissionRate creates or updates the custom rate row for a
// (hotel, channel) pair. Rate must already be validated into [0,1].
func (db *DB) SetCommissionRate(ctx context.Context, rate *models.CommissionRate) error {
	db.commissionMu.Lock()
	defer db.commissionMu.Unlock()

	var exists int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM commission_rates WHERE hotel_id = ? AND channel = ?`,
		rate.HotelID, rate.Channel,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check existing rate: %w", err)
	}

	if exists > 0 {
		_, err = db.conn.ExecContext(ctx,
			`UPDATE commission_rates SET rate = ?, is_active = ? WHERE hotel_id = ? AND channel = ?`,
			rate.Rate, rate.IsActive, rate.HotelID, rate.Channel,
		)
	} else {
		_, err = db.conn.ExecContext(ctx,
			`INSERT INTO commission_rates (hotel_id, channel, rate, is_active) VALUES (?, ?, ?, ?)`,
			rate.HotelID, rate.Channel, rate.Rate, rate.IsActive,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to set commission rate: %w", err)
	}
	return nil
}

// ListCommissionRates returns a hotel's custom rate rows.
func (db *DB) ListCommissionRates(ctx context.Context, hotelID string) ([]*models.CommissionRate, error) {
	query := `SELECT hotel_id, channel, rate, is_active FROM commission_rates WHERE hotel_id = ? ORDER BY channel`

	rows, err := db.conn.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission rates: %w", err)
	}
	defer rows.Close()

	var rates []*models.CommissionRate
	for rows.Next() {
		rate := &models.CommissionRate{}
		if err := rows.Scan(&rate.HotelID, &rate.Channel, &rate.Rate, &rate.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan commission rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
