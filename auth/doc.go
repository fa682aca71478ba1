// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key derivation and request hashing.

# Admin Keys

Admin keys use HMAC-SHA256 over the ledger name:

	adminKey := auth.GenerateAdminKey(cfg.LedgerName, cfg.AdminKeySalt)
	err := auth.ValidateAdminKey(cfg.LedgerName, adminKey, cfg.AdminKeySalt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same ledger name and salt always produce the same key, so the key is never
stored. Operators print it with the admin-key command and send it in the
X-Admin-Key header.

ValidateAdminKey returns ErrMissingAdminKey for an empty key and
ErrInvalidAdminKey for a mismatch. Comparison is constant time.

# IP Hashing

Request logs never carry raw client addresses:

	hash := auth.HashIP(ipAddress, salt)

	hash := auth.HashVoterID(voterID, salt)

Both return the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
