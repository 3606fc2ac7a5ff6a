// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

/*
tokens.go - OAuth Token Store

One row per (hotel, provider) pair. Two rules with teeth:

  - Merge-preserve: providers may omit the refresh token on repeat
    consent. An upsert carrying no refresh token must keep the previously
    stored one rather than nulling it. UpsertToken reads before writing
    under tokenMu to make that atomic.

  - Admin fallback: while an admin impersonates a tenant that has no
    token of its own, the lookup falls back to the admin's own primary
    hotel's token for the same provider. One admin-held grant serves
    every impersonated tenant lacking a connection. Intentional
    credential sharing, not a bug.

Token values are bearer secrets; callers must only ever expose them via
logging.SecretPreview.
*/

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// scanTokenRow scans a database row into an OAuthToken, handling the
// nullable expiry.
func scanTokenRow(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.OAuthToken, error) {
	token := &models.OAuthToken{}
	var expiresAt sql.NullTime

	err := scanner.Scan(
		&token.HotelID, &token.Provider, &token.AccessToken, &token.RefreshToken,
		&expiresAt, &token.AccountEmail, &token.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		token.ExpiresAt = &expiresAt.Time
	}
	return token, nil
}

// UpsertToken creates or overwrites the token record for the
// (hotel, provider) pair. If the incoming record carries no refresh
// token and a prior row holds one, the old refresh token is carried
// forward.
func (db *DB) UpsertToken(ctx context.Context, token *models.OAuthToken) error {
	if !models.IsValidProvider(token.Provider) {
		return fmt.Errorf("unknown provider %q", token.Provider)
	}

	db.tokenMu.Lock()
	defer db.tokenMu.Unlock()

	existing, err := db.getTokenLocked(ctx, token.HotelID, token.Provider)
	if err != nil && !errors.Is(err, ErrTokenNotFound) {
		return fmt.Errorf("failed to check existing token: %w", err)
	}

	if token.RefreshToken == "" && existing != nil && existing.RefreshToken != "" {
		token.RefreshToken = existing.RefreshToken
	}
	token.UpdatedAt = time.Now()

	var expiresAt interface{}
	if token.ExpiresAt != nil {
		expiresAt = *token.ExpiresAt
	}

	if existing != nil {
		query := `
			UPDATE oauth_tokens
			SET access_token = ?, refresh_token = ?, expires_at = ?, account_email = ?, updated_at = ?
			WHERE hotel_id = ? AND provider = ?
		`
		_, err = db.conn.ExecContext(ctx, query,
			token.AccessToken, token.RefreshToken, expiresAt, token.AccountEmail,
			token.UpdatedAt, token.HotelID, token.Provider,
		)
	} else {
		query := `
			INSERT INTO oauth_tokens (hotel_id, provider, access_token, refresh_token, expires_at, account_email, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		_, err = db.conn.ExecContext(ctx, query,
			token.HotelID, token.Provider, token.AccessToken, token.RefreshToken,
			expiresAt, token.AccountEmail, token.UpdatedAt,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert token: %w", err)
	}
	return nil
}

// GetToken retrieves the token record for a (hotel, provider) pair.
// Returns ErrTokenNotFound when no row exists.
func (db *DB) GetToken(ctx context.Context, hotelID, provider string) (*models.OAuthToken, error) {
	return db.getTokenLocked(ctx, hotelID, provider)
}

// getTokenLocked performs the token lookup. Safe without tokenMu for
// pure reads; UpsertToken holds the mutex around its read-modify-write.
func (db *DB) getTokenLocked(ctx context.Context, hotelID, provider string) (*models.OAuthToken, error) {
	query := `
		SELECT hotel_id, provider, access_token, refresh_token, expires_at, account_email, updated_at
		FROM oauth_tokens
		WHERE hotel_id = ? AND provider = ?
	`

	row := db.conn.QueryRowContext(ctx, query, hotelID, provider)
	token, err := scanTokenRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to query token: %w", err)
	}
	return token, nil
}

// GetTokenWithFallback looks up the (hotel, provider) token directly.
// When absent and fallbackOwnerID is non-empty (the caller is an admin
// currently impersonating), the owner's own primary hotel's token for
// the same provider is returned instead. Returns ErrTokenNotFound when
// neither exists.
//
// Callers must pass a non-empty fallbackOwnerID only while an
// impersonation grant is active.
func (db *DB) GetTokenWithFallback(ctx context.Context, hotelID, provider, fallbackOwnerID string) (*models.OAuthToken, error) {
	token, err := db.getTokenLocked(ctx, hotelID, provider)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return nil, err
	}

	if fallbackOwnerID == "" {
		return nil, ErrTokenNotFound
	}

	ownHotel, err := db.GetDefaultHotelForOwner(ctx, fallbackOwnerID)
	if err != nil {
		if errors.Is(err, ErrNoHotel) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	return db.getTokenLocked(ctx, ownHotel.ID, provider)
}

// ListTokens returns all token records for a hotel, one per connected
// provider.
func (db *DB) ListTokens(ctx context.Context, hotelID string) ([]*models.OAuthToken, error) {
	query := `
		SELECT hotel_id, provider, access_token, refresh_token, expires_at, account_email, updated_at
		FROM oauth_tokens
		WHERE hotel_id = ?
		ORDER BY provider
	`

	rows, err := db.conn.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*models.OAuthToken
	for rows.Next() {
		token, err := scanTokenRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
