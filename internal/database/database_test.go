// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"testing"
	"time"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/config"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// setupTestDB creates an in-memory database with the full schema.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   2,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// createTestHotel inserts a hotel with sensible defaults and returns it.
func createTestHotel(t *testing.T, db *DB, ownerID, name, role string, primary bool) *models.Hotel {
	t.Helper()

	hotel := &models.Hotel{
		OwnerPrincipalID: ownerID,
		Name:             name,
		Currency:         "EUR",
		Role:             role,
		IsPrimary:        primary,
		CreatedAt:        time.Now(),
	}
	if err := db.CreateHotel(context.Background(), hotel); err != nil {
		t.Fatalf("Failed to create test hotel: %v", err)
	}
	return hotel
}

func TestDatabaseLifecycle(t *testing.T) {
	db := setupTestDB(t)

	t.Run("ping succeeds", func(t *testing.T) {
		if err := db.Ping(context.Background()); err != nil {
			t.Errorf("Ping failed: %v", err)
		}
	})

	t.Run("schema tables exist", func(t *testing.T) {
		tables := []string{
			"principals", "hotels", "oauth_tokens", "commission_rates",
			"hidden_channels", "bookings", "impersonation_audit",
		}
		for _, table := range tables {
			var count int
			err := db.conn.QueryRowContext(context.Background(),
				"SELECT COUNT(*) FROM "+table).Scan(&count)
			if err != nil {
				t.Errorf("Table %s not queryable: %v", table, err)
			}
		}
	})
}

func TestSeedDemoData(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}

	t.Run("creates admin and client", func(t *testing.T) {
		admin, err := db.GetPrincipalByEmail(ctx, "admin@demo.local")
		if err != nil {
			t.Fatalf("Admin principal missing: %v", err)
		}
		hotel, err := db.GetDefaultHotelForOwner(ctx, admin.ID)
		if err != nil {
			t.Fatalf("Admin hotel missing: %v", err)
		}
		if hotel.Role != models.RoleAdmin {
			t.Errorf("Admin hotel role = %q, want %q", hotel.Role, models.RoleAdmin)
		}
	})

	t.Run("idempotent on second run", func(t *testing.T) {
		if err := db.SeedDemoData(ctx); err != nil {
			t.Fatalf("Second SeedDemoData failed: %v", err)
		}
		var count int
		if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM principals`).Scan(&count); err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Principal count = %d, want 2", count)
		}
	})
}
