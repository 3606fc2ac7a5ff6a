// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// SeedDemoData populates an empty dev-mode database with one admin, one
// client and a handful of bookings so the dashboard renders something on
// first run. No-op when principals already exist.
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM principals`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check principals: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	admin := &models.Principal{Email: "admin@demo.local", PasswordHash: string(hash)}
	client := &models.Principal{Email: "client@demo.local", PasswordHash: string(hash)}
	for _, p := range []*models.Principal{admin, client} {
		if err := db.CreatePrincipal(ctx, p); err != nil {
			return err
		}
	}

	adminHotel := &models.Hotel{
		OwnerPrincipalID: admin.ID,
		Name:             "Demo Agency HQ",
		Currency:         "EUR",
		Role:             models.RoleAdmin,
		IsPrimary:        true,
	}
	clientHotel := &models.Hotel{
		OwnerPrincipalID: client.ID,
		Name:             "Hotel Seeblick",
		Currency:         "EUR",
		Role:             models.RoleClient,
		IsPrimary:        true,
	}
	for _, h := range []*models.Hotel{adminHotel, clientHotel} {
		if err := db.CreateHotel(ctx, h); err != nil {
			return err
		}
	}

	channels := []string{"Booking.com", "Expedia", "Direct"}
	for i := 0; i < 12; i++ {
		booking := &models.Booking{
			HotelID:  clientHotel.ID,
			Channel:  channels[i%len(channels)],
			Amount:   120 + float64(i)*35,
			Currency: "EUR",
			BookedAt: time.Now().AddDate(0, 0, -i),
		}
		if err := db.InsertBooking(ctx, booking); err != nil {
			return err
		}
	}

	logging.Info().Str("admin", admin.Email).Str("client", client.Email).Msg("Seeded demo data")
	return nil
}
