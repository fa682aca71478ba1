// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/votewatch/cliparse"
	"github.com/danielhkuo/votewatch/db"
	"github.com/danielhkuo/votewatch/ledger"
)

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// TestTime is the wall-clock time reported by TestClock.
var TestTime = time.Date(2025, time.March, 14, 9, 26, 53, 589_000_000, time.Local)

// TestClock is a FixedClock at TestTime.
var TestClock = FixedClock{T: TestTime}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestService builds a Service over store with the default candidates,
// TestClock and a silent logger.
func NewTestService(t *testing.T, store ledger.Store) *ledger.Service {
	t.Helper()

	svc, err := ledger.NewService(context.Background(), store, ledger.Options{
		Clock:  TestClock,
		Logger: DiscardLogger(),
	})
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return svc
}

// SetupTestDB opens a private in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.DialectMemory,
		AdminKeySalt: "test-admin-salt",
		LedgerName:   "test-ledger",
		Candidates:   ledger.DefaultCandidates,
	}
}

// CastTestVote casts a vote and fails the test if the outcome differs from want.
func CastTestVote(t *testing.T, svc *ledger.Service, voterID, candidate string, want ledger.VoteOutcome) {
	t.Helper()

	got, err := svc.CastVote(context.Background(), voterID, candidate)
	if err != nil {
		t.Fatalf("CastVote(%q, %q) error = %v", voterID, candidate, err)
	}
	if got != want {
		t.Fatalf("CastVote(%q, %q) = %v, want %v", voterID, candidate, got, want)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
