// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the ledger.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case DialectSQLite:
		schema = sqliteSchema
	case DialectPostgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("no schema for dialect %q", dialect)
	}

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const sqliteSchema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    name TEXT PRIMARY KEY,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

-- Voter registry
CREATE TABLE IF NOT EXISTS voter (
    voter_id TEXT PRIMARY KEY
);

-- Fraud log
CREATE TABLE IF NOT EXISTS fraud_log (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    voter_id TEXT NOT NULL,
    attempted_at INTEGER NOT NULL,
    detail TEXT NOT NULL
);
`

const postgresSchema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    name TEXT PRIMARY KEY,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

-- Voter registry
CREATE TABLE IF NOT EXISTS voter (
    voter_id TEXT PRIMARY KEY
);

-- Fraud log
CREATE TABLE IF NOT EXISTS fraud_log (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    voter_id TEXT NOT NULL,
    attempted_at BIGINT NOT NULL,
    detail TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fraud_log_voter_id ON fraud_log(voter_id);
`
