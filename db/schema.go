// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Communities
CREATE TABLE IF NOT EXISTS communities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE,
    population INTEGER
);

-- Daily usage readings. No uniqueness on (community_id, date): multiple
-- readings per community per day are allowed.
CREATE TABLE IF NOT EXISTS water_usage (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    community_id INTEGER,
    date TEXT,
    usage INTEGER,
    FOREIGN KEY(community_id) REFERENCES communities(id)
);

CREATE INDEX IF NOT EXISTS idx_water_usage_community_id ON water_usage(community_id);
`
