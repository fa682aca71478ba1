// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for votewatch.

votewatch is a vote ledger with fraud detection. Each voter ID may vote once;
repeat attempts are rejected and recorded in a fraud log with a timestamp.
Statistics report totals, percentages and the leading candidate.

# Commands

	votewatch [flags]            Interactive console (same as menu)
	votewatch menu [flags]       Interactive console
	votewatch serve [flags]      HTTP API
	votewatch admin-key [flags]  Print the X-Admin-Key for the ledger

All commands accept the same flags, parsed by cliparse:

	votewatch serve -p 3318 -t sqlite -d votes.db -admin-salt "..."

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): Connection string for sqlite or postgres
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC (serve, admin-key)
  - LEDGER_NAME (-ledger): Ledger name (default: default)
  - DEFAULT_CANDIDATES (-candidates): Seed candidates (default: Candidate1,Candidate2,Candidate3)

A .env file in the working directory is loaded first if present.

Every run starts from a clean ledger seeded with the configured candidates,
whichever backend is selected.

# Architecture

  - ledger: Vote ledger, voter registry, fraud log, reports and the Service
  - db: SQL storage (sqlite, postgres) behind ledger.Store
  - console: Operator menu
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin key check, JSON helpers
  - models: Request/response types
  - auth: Admin key derivation and log hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
