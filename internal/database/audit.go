// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/models"
)

// RecordImpersonation appends an impersonation begin/end event to the
// audit log. Observability only; there is no server-side revocation of
// an active grant.
func (db *DB) RecordImpersonation(ctx context.Context, entry *models.ImpersonationAuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO impersonation_audit (id, timestamp, actor_id, target_id, action) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Timestamp, entry.ActorID, entry.TargetID, entry.Action,
	)
	if err != nil {
		return fmt.Errorf("failed to insert impersonation audit entry: %w", err)
	}
	return nil
}

// ListImpersonationAudit returns the most recent impersonation events,
// newest first.
func (db *DB) ListImpersonationAudit(ctx context.Context, limit int) ([]*models.ImpersonationAuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, timestamp, actor_id, target_id, action
		 FROM impersonation_audit ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query impersonation audit: %w", err)
	}
	defer rows.Close()

	var entries []*models.ImpersonationAuditEntry
	for rows.Next() {
		entry := &models.ImpersonationAuditEntry{}
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.ActorID, &entry.TargetID, &entry.Action); err != nil {
			return nil, fmt.Errorf("failed to scan impersonation audit entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
