// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrMissingAdminKey = errors.New("missing admin key")
)

// AdminKeyHeader carries the admin key on HTTP requests.
const AdminKeyHeader = "X-Admin-Key"

// GenerateAdminKey derives the admin key for a ledger from its name.
// The same name and salt always produce the same key.
func GenerateAdminKey(ledgerName, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ledgerName))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against the key derived for ledgerName.
func ValidateAdminKey(ledgerName, adminKey, salt string) error {
	if adminKey == "" {
		return ErrMissingAdminKey
	}
	expected := GenerateAdminKey(ledgerName, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashVoterID creates a one-way hash of a voter ID so request logs can
// correlate repeat attempts without recording the ID itself.
func HashVoterID(voterID, salt string) string {
	return HashIP("voter:"+voterID, salt)
}

// HashIP creates a one-way hash of an IP address for request logs.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// 16 hex chars are enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
