// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides a SQL storage engine for the ledger.

# Backends

Open selects a driver by dialect:

  - sqlite: modernc.org/sqlite, defaults to a private ":memory:" database
  - postgres: github.com/lib/pq, requires a connection URL

	conn, err := db.Open(db.DialectSQLite, "")
	store, err := db.NewStore(conn, db.DialectSQLite)

Queries are written with ? placeholders and rewritten to $N for postgres.

# Tables

  - candidate: name and vote counter
  - voter: voter IDs that have voted (no candidate link)
  - fraud_log: duplicate-vote attempts, ordered by seq

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Lifecycle

ledger.NewService resets the store on construction, so a postgres database
never carries votes from one process run into the next.
*/
package db
