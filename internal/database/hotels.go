// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

/*
hotels.go - Hotel (Tenant) Data Access

Key Operations:
  - GetHotelForOwner: ownership-scoped lookup by id; mismatch and
    nonexistence are indistinguishable (ErrHotelNotFound)
  - GetDefaultHotelForOwner: primary-flag-first, then earliest-created
  - ListHotelsByOwner: all owned hotels in resolver order
  - UpdateHotelSettings: mutable settings only; ownership, role and the
    primary flag never change through this path
  - ListRoleDivergences: owners whose hotels carry different role labels

The role column lives on the hotel row by design. Access resolution must
read role off the row these queries return, never from a separately
fetched one.
*/

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

const hotelColumns = `id, owner_principal_id, name, contact_email, currency, role,
	is_primary, display_order, analytics_property_id, ads_customer_id,
	ads_manager_id, business_location_id, ad_account_id, settings_synced_at, created_at`

// scanHotelRow scans a database row into a Hotel, handling nullable fields.
func scanHotelRow(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Hotel, error) {
	hotel := &models.Hotel{}
	var syncedAt sql.NullTime

	err := scanner.Scan(
		&hotel.ID, &hotel.OwnerPrincipalID, &hotel.Name, &hotel.ContactEmail,
		&hotel.Currency, &hotel.Role, &hotel.IsPrimary, &hotel.DisplayOrder,
		&hotel.AnalyticsPropertyID, &hotel.AdsCustomerID, &hotel.AdsManagerID,
		&hotel.BusinessLocationID, &hotel.AdAccountID, &syncedAt, &hotel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if syncedAt.Valid {
		hotel.SettingsSyncedAt = &syncedAt.Time
	}
	return hotel, nil
}

// CreateHotel inserts a new hotel row. A missing id is generated; a
// missing role defaults to client.
func (db *DB) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	if hotel.ID == "" {
		hotel.ID = uuid.NewString()
	}
	if hotel.Role == "" {
		hotel.Role = models.RoleClient
	}
	if !models.IsValidRole(hotel.Role) {
		return ErrInvalidRole
	}
	if hotel.CreatedAt.IsZero() {
		hotel.CreatedAt = time.Now()
	}
	if hotel.Currency == "" {
		hotel.Currency = "EUR"
	}

	query := `
		INSERT INTO hotels (id, owner_principal_id, name, contact_email, currency, role,
			is_primary, display_order, analytics_property_id, ads_customer_id,
			ads_manager_id, business_location_id, ad_account_id, settings_synced_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var syncedAt interface{}
	if hotel.SettingsSyncedAt != nil {
		syncedAt = *hotel.SettingsSyncedAt
	}

	_, err := db.conn.ExecContext(ctx, query,
		hotel.ID, hotel.OwnerPrincipalID, hotel.Name, hotel.ContactEmail,
		hotel.Currency, hotel.Role, hotel.IsPrimary, hotel.DisplayOrder,
		hotel.AnalyticsPropertyID, hotel.AdsCustomerID, hotel.AdsManagerID,
		hotel.BusinessLocationID, hotel.AdAccountID, syncedAt, hotel.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hotel: %w", err)
	}
	return nil
}

// GetHotelForOwner fetches the hotel matching both the id and the owning
// principal. Returns ErrHotelNotFound whether the id does not exist or
// belongs to a different owner.
func (db *DB) GetHotelForOwner(ctx context.Context, hotelID, ownerPrincipalID string) (*models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = ? AND owner_principal_id = ?`

	row := db.conn.QueryRowContext(ctx, query, hotelID, ownerPrincipalID)
	hotel, err := scanHotelRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to query hotel: %w", err)
	}
	return hotel, nil
}

// GetDefaultHotelForOwner returns the owner's default hotel: the primary
// one if flagged, otherwise the earliest-created. Returns ErrNoHotel when
// the principal owns none.
func (db *DB) GetDefaultHotelForOwner(ctx context.Context, ownerPrincipalID string) (*models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels
		WHERE owner_principal_id = ?
		ORDER BY is_primary DESC, created_at ASC
		LIMIT 1`

	row := db.conn.QueryRowContext(ctx, query, ownerPrincipalID)
	hotel, err := scanHotelRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoHotel
		}
		return nil, fmt.Errorf("failed to query default hotel: %w", err)
	}
	return hotel, nil
}

// ListHotelsByOwner returns all hotels owned by a principal, primary
// first and then by creation time.
func (db *DB) ListHotelsByOwner(ctx context.Context, ownerPrincipalID string) ([]*models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels
		WHERE owner_principal_id = ?
		ORDER BY is_primary DESC, created_at ASC`

	rows, err := db.conn.QueryContext(ctx, query, ownerPrincipalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*models.Hotel
	for rows.Next() {
		hotel, err := scanHotelRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}

// ListAllHotels returns every hotel across all tenants, for admin-only
// fan-out reports.
func (db *DB) ListAllHotels(ctx context.Context) ([]*models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels ORDER BY created_at ASC`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*models.Hotel
	for rows.Next() {
		hotel, err := scanHotelRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}

// UpdateHotelSettings writes the mutable settings of an access-verified
// hotel and stamps settings_synced_at. The caller must have resolved the
// hotel through GetHotelForOwner first.
func (db *DB) UpdateHotelSettings(ctx context.Context, hotelID string, settings *models.HotelSettings) error {
	query := `
		UPDATE hotels
		SET name = ?, contact_email = ?, currency = ?,
			analytics_property_id = ?, ads_customer_id = ?, ads_manager_id = ?,
			business_location_id = ?, ad_account_id = ?, settings_synced_at = ?
		WHERE id = ?
	`

	_, err := db.conn.ExecContext(ctx, query,
		settings.Name, settings.ContactEmail, settings.Currency,
		settings.AnalyticsPropertyID, settings.AdsCustomerID, settings.AdsManagerID,
		settings.BusinessLocationID, settings.AdAccountID, time.Now(), hotelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hotel settings: %w", err)
	}
	return nil
}

// ListRoleDivergences reports owners whose hotels disagree on the role
// label. The access layer tolerates divergence (role is read per-row);
// this query exists so operators can audit it.
func (db *DB) ListRoleDivergences(ctx context.Context) ([]*models.RoleDivergence, error) {
	query := `
		SELECT owner_principal_id, COUNT(*) AS hotel_count,
		       STRING_AGG(DISTINCT role, ',' ORDER BY role) AS roles
		FROM hotels
		GROUP BY owner_principal_id
		HAVING COUNT(DISTINCT role) > 1
		ORDER BY owner_principal_id
	`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query role divergences: %w", err)
	}
	defer rows.Close()

	var divergences []*models.RoleDivergence
	for rows.Next() {
		d := &models.RoleDivergence{}
		var roles string
		if err := rows.Scan(&d.OwnerPrincipalID, &d.HotelCount, &roles); err != nil {
			return nil, fmt.Errorf("failed to scan role divergence: %w", err)
		}
		d.Roles = strings.Split(roles, ",")
		divergences = append(divergences, d)
	}
	return divergences, rows.Err()
}
