// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"testing"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

func insertTestBookings(t *testing.T, db *DB, hotelID, channel string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := db.InsertBooking(context.Background(), &models.Booking{
			HotelID: hotelID,
			Channel: channel,
			Amount:  100,
		}); err != nil {
			t.Fatalf("InsertBooking failed: %v", err)
		}
	}
}

func TestMergeChannel(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("moves bookings and reports count", func(t *testing.T) {
		hotel := createTestHotel(t, db, "owner-m1", "Merge Hotel", models.RoleAgency, true)
		insertTestBookings(t, db, hotel.ID, "Booking", 5)
		insertTestBookings(t, db, hotel.ID, "Booking.com", 2)

		moved, err := db.MergeChannel(ctx, hotel.ID, "Booking", "Booking.com")
		if err != nil {
			t.Fatalf("MergeChannel failed: %v", err)
		}
		if moved != 5 {
			t.Errorf("Moved = %d, want 5", moved)
		}

		count, err := db.CountBookingsByChannel(ctx, hotel.ID, "Booking.com")
		if err != nil {
			t.Fatalf("CountBookingsByChannel failed: %v", err)
		}
		if count != 7 {
			t.Errorf("Target channel bookings = %d, want 7", count)
		}

		remaining, err := db.CountBookingsByChannel(ctx, hotel.ID, "Booking")
		if err != nil {
			t.Fatalf("CountBookingsByChannel failed: %v", err)
		}
		if remaining != 0 {
			t.Errorf("Source channel bookings = %d, want 0", remaining)
		}
	})

	t.Run("scoped to the hotel", func(t *testing.T) {
		mine := createTestHotel(t, db, "owner-m2", "Mine", models.RoleAgency, true)
		theirs := createTestHotel(t, db, "owner-m3", "Theirs", models.RoleClient, true)
		insertTestBookings(t, db, mine.ID, "Expedia", 2)
		insertTestBookings(t, db, theirs.ID, "Expedia", 3)

		if _, err := db.MergeChannel(ctx, mine.ID, "Expedia", "Expedia Group"); err != nil {
			t.Fatalf("MergeChannel failed: %v", err)
		}

		untouched, err := db.CountBookingsByChannel(ctx, theirs.ID, "Expedia")
		if err != nil {
			t.Fatalf("CountBookingsByChannel failed: %v", err)
		}
		if untouched != 3 {
			t.Errorf("Foreign hotel bookings = %d, want untouched 3", untouched)
		}
	})

	t.Run("carries commission row to new name", func(t *testing.T) {
		hotel := createTestHotel(t, db, "owner-m4", "Rates", models.RoleAgency, true)
		insertTestBookings(t, db, hotel.ID, "Old", 1)
		if err := db.SetCommissionRate(ctx, &models.CommissionRate{
			HotelID: hotel.ID, Channel: "Old", Rate: 0.11, IsActive: true,
		}); err != nil {
			t.Fatalf("SetCommissionRate failed: %v", err)
		}

		if _, err := db.MergeChannel(ctx, hotel.ID, "Old", "New"); err != nil {
			t.Fatalf("MergeChannel failed: %v", err)
		}

		rate, err := db.GetCommissionRate(ctx, hotel.ID, "New")
		if err != nil {
			t.Fatalf("GetCommissionRate failed: %v", err)
		}
		if rate != 0.11 {
			t.Errorf("Rate under new name = %v, want 0.11", rate)
		}
	})

	t.Run("drops old rate row when target already has one", func(t *testing.T) {
		hotel := createTestHotel(t, db, "owner-m5", "Conflict", models.RoleAgency, true)
		insertTestBookings(t, db, hotel.ID, "Old", 1)
		for channel, rate := range map[string]float64{"Old": 0.11, "New": 0.22} {
			if err := db.SetCommissionRate(ctx, &models.CommissionRate{
				HotelID: hotel.ID, Channel: channel, Rate: rate, IsActive: true,
			}); err != nil {
				t.Fatalf("SetCommissionRate failed: %v", err)
			}
		}

		if _, err := db.MergeChannel(ctx, hotel.ID, "Old", "New"); err != nil {
			t.Fatalf("MergeChannel failed: %v", err)
		}

		rate, err := db.GetCommissionRate(ctx, hotel.ID, "New")
		if err != nil {
			t.Fatalf("GetCommissionRate failed: %v", err)
		}
		if rate != 0.22 {
			t.Errorf("Rate = %v, want target's existing 0.22", rate)
		}

		rates, err := db.ListCommissionRates(ctx, hotel.ID)
		if err != nil {
			t.Fatalf("ListCommissionRates failed: %v", err)
		}
		if len(rates) != 1 {
			t.Errorf("Rate rows = %d, want old row dropped", len(rates))
		}
	})

	t.Run("renames hidden mark without duplicating", func(t *testing.T) {
		hotel := createTestHotel(t, db, "owner-m6", "Hidden", models.RoleAgency, true)
		insertTestBookings(t, db, hotel.ID, "Old", 1)
		for _, channel := range []string{"Old", "New"} {
			if err := db.HideChannel(ctx, hotel.ID, channel); err != nil {
				t.Fatalf("HideChannel failed: %v", err)
			}
		}

		if _, err := db.MergeChannel(ctx, hotel.ID, "Old", "New"); err != nil {
			t.Fatalf("MergeChannel failed: %v", err)
		}

		hidden, err := db.ListHiddenChannels(ctx, hotel.ID)
		if err != nil {
			t.Fatalf("ListHiddenChannels failed: %v", err)
		}
		if len(hidden) != 1 || hidden[0] != "New" {
			t.Errorf("Hidden channels = %v, want [New]", hidden)
		}
	})
}

func TestHideChannel(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	hotel := createTestHotel(t, db, "owner-h1", "Hide Hotel", models.RoleClient, true)

	t.Run("hide is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := db.HideChannel(ctx, hotel.ID, "Agoda"); err != nil {
				t.Fatalf("HideChannel failed: %v", err)
			}
		}

		hidden, err := db.ListHiddenChannels(ctx, hotel.ID)
		if err != nil {
			t.Fatalf("ListHiddenChannels failed: %v", err)
		}
		if len(hidden) != 1 {
			t.Errorf("Hidden count = %d, want 1", len(hidden))
		}
	})

	t.Run("unhide removes the mark", func(t *testing.T) {
		if err := db.UnhideChannel(ctx, hotel.ID, "Agoda"); err != nil {
			t.Fatalf("UnhideChannel failed: %v", err)
		}

		hidden, err := db.ListHiddenChannels(ctx, hotel.ID)
		if err != nil {
			t.Fatalf("ListHiddenChannels failed: %v", err)
		}
		if len(hidden) != 0 {
			t.Errorf("Hidden count = %d, want 0", len(hidden))
		}
	})
}
