// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: HTTP listen port for serve (default: 3318)
  - DatabaseType: memory, sqlite or postgres (default: memory)
  - DatabaseURL: Connection string; required for postgres, optional for sqlite
  - AdminKeySalt: Secret for admin key HMAC (required by serve and admin-key)
  - LedgerName: Name the admin key is derived from (default: "default")
  - Candidates: Candidates seeded at startup and on reset
  - EnvFile: Optional .env file read before the environment (default: .env)

# CLI Flags

	-p            Server port
	-t            Storage backend
	-d            Database URL
	-ledger       Ledger name
	-candidates   Comma-separated seed candidates
	-admin-salt   Admin key salt
	-env-file     Path to a .env file

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_TYPE      → -t
	DATABASE_URL       → -d
	LEDGER_NAME        → -ledger
	DEFAULT_CANDIDATES → -candidates
	ADMIN_KEY_SALT     → -admin-salt

Variables from the env file are loaded with godotenv and never override
variables already present in the process environment. CLI flags take
precedence over both. A missing env file is not an error.

# Validation

ParseFlags rejects an unknown backend, a non-numeric PORT and a postgres
backend without a URL. The admin salt is only needed by commands that expose
admin operations, which call Config.RequireAdminSalt.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return err
	}
	if err := cfg.RequireAdminSalt(); err != nil {
		return err
	}
*/
package cliparse
