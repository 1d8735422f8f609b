// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid for both PostgreSQL and SQLite.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// created_at is unix nanoseconds; it only orders listings
var schema = []string{
	`CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    expire_at TEXT NOT NULL,
    created_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS choice (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL,
    title TEXT NOT NULL UNIQUE,
    votes BIGINT NOT NULL DEFAULT 0 CHECK (votes >= 0),
    created_at BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_choice_poll_id ON choice(poll_id)`,
}
