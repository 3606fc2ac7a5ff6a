// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// InsertBooking inserts a single booking row.
func (db *DB) InsertBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.BookedAt.IsZero() {
		booking.BookedAt = time.Now()
	}
	if booking.Currency == "" {
		booking.Currency = "EUR"
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO bookings (id, hotel_id, channel, amount, currency, booked_at) VALUES (?, ?, ?, ?, ?, ?)`,
		booking.ID, booking.HotelID, booking.Channel, booking.Amount, booking.Currency, booking.BookedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// ChannelRevenueRows returns per-channel booking counts and gross
// revenue for a hotel. Commission math happens in the caller, which
// holds the effective rates.
func (db *DB) ChannelRevenueRows(ctx context.Context, hotelID string) ([]*models.ChannelRevenue, error) {
	query := `
		SELECT channel, COUNT(*) AS bookings, SUM(amount) AS gross
		FROM bookings
		WHERE hotel_id = ?
		GROUP BY channel
		ORDER BY gross DESC
	`

	rows, err := db.conn.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel revenue: %w", err)
	}
	defer rows.Close()

	var results []*models.ChannelRevenue
	for rows.Next() {
		cr := &models.ChannelRevenue{}
		if err := rows.Scan(&cr.Channel, &cr.Bookings, &cr.Gross); err != nil {
			return nil, fmt.Errorf("failed to scan channel revenue: %w", err)
		}
		results = append(results, cr)
	}
	return results, rows.Err()
}

// CountBookingsByChannel returns the number of bookings a hotel has on a
// given channel.
func (db *DB) CountBookingsByChannel(ctx context.Context, hotelID, channel string) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE hotel_id = ? AND channel = ?`,
		hotelID, channel,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// TenantStats aggregates one hotel's booking volume for the admin
// overview fan-out. Read-only; safe for concurrent callers.
func (db *DB) TenantStats(ctx context.Context, hotel *models.Hotel) (*models.TenantStats, error) {
	stats := &models.TenantStats{
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		OwnerID:   hotel.OwnerPrincipalID,
		Role:      hotel.Role,
	}

	var gross sql.NullFloat64
	var lastBooked sql.NullTime
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM(amount), MAX(booked_at) FROM bookings WHERE hotel_id = ?`,
		hotel.ID,
	).Scan(&stats.Bookings, &gross, &lastBooked)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant stats: %w", err)
	}

	if gross.Valid {
		stats.Gross = gross.Float64
	}
	if lastBooked.Valid {
		s := lastBooked.Time.Format(time.RFC3339)
		stats.LastBooked = &s
	}
	return stats, nil
}
