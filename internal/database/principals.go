// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// CreatePrincipal inserts a principal row. Principals normally arrive
// from the external auth provider; this exists for seeding and tests.
func (db *DB) CreatePrincipal(ctx context.Context, principal *models.Principal) error {
	if principal.ID == "" {
		principal.ID = uuid.NewString()
	}
	if principal.CreatedAt.IsZero() {
		principal.CreatedAt = time.Now()
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO principals (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		principal.ID, principal.Email, principal.PasswordHash, principal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert principal: %w", err)
	}
	return nil
}

// GetPrincipalByEmail looks up a principal for login verification.
func (db *DB) GetPrincipalByEmail(ctx context.Context, email string) (*models.Principal, error) {
	return db.getPrincipal(ctx, `SELECT id, email, password_hash, created_at FROM principals WHERE email = ?`, email)
}

// GetPrincipalByID looks up a principal by id.
func (db *DB) GetPrincipalByID(ctx context.Context, id string) (*models.Principal, error) {
	return db.getPrincipal(ctx, `SELECT id, email, password_hash, created_at FROM principals WHERE id = ?`, id)
}

func (db *DB) getPrincipal(ctx context.Context, query string, arg interface{}) (*models.Principal, error) {
	principal := &models.Principal{}
	err := db.conn.QueryRowContext(ctx, query, arg).Scan(
		&principal.ID, &principal.Email, &principal.PasswordHash, &principal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("failed to query principal: %w", err)
	}
	return principal, nil
}
