// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLedger(t *testing.T) {
	l := NewLedger()

	if !l.Add("A") {
		t.Error("Expected first Add to succeed")
	}
	if l.Add("A") {
		t.Error("Expected second Add to report existing candidate")
	}
	if l.Increment("B") {
		t.Error("Expected Increment of unknown candidate to fail")
	}
	l.Increment("A")
	l.Increment("A")

	tallies := l.Tallies()
	if len(tallies) != 1 || tallies[0] != (Tally{"A", 2}) {
		t.Errorf("Unexpected tallies %+v", tallies)
	}

	l.Clear()
	if l.Len() != 0 || l.Has("A") {
		t.Error("Expected empty ledger after Clear")
	}
}

func TestVoterRegistry(t *testing.T) {
	r := NewVoterRegistry()

	if r.Contains("voter001") {
		t.Error("Expected empty registry")
	}
	if !r.Register("voter001") {
		t.Error("Expected first Register to succeed")
	}
	if r.Register("voter001") {
		t.Error("Expected duplicate Register to fail")
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 voter, got %d", r.Len())
	}

	r.Clear()
	if r.Contains("voter001") {
		t.Error("Expected registry cleared")
	}
}

func TestFraudLog(t *testing.T) {
	f := NewFraudLog()
	ts := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)

	f.Append(FraudLogEntry{VoterID: "first", Timestamp: ts, Detail: duplicateDetail("X")})
	f.Append(FraudLogEntry{VoterID: "second", Timestamp: ts, Detail: duplicateDetail("Y")})

	entries := f.Entries()
	if len(entries) != 2 || entries[0].VoterID != "first" || entries[1].VoterID != "second" {
		t.Fatalf("Unexpected entries %+v", entries)
	}
	if got := entries[0].FormattedTimestamp(); got != "2024-12-31 23:59:59" {
		t.Errorf("Unexpected timestamp %q", got)
	}

	// Entries hands out a copy
	entries[0].VoterID = "mutated"
	if f.Entries()[0].VoterID != "first" {
		t.Error("Entries exposed internal storage")
	}

	f.Clear()
	if f.Len() != 0 {
		t.Error("Expected empty log after Clear")
	}
}

func TestMemoryStore_RecordVoteGuards(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.Reset(ctx, []string{"A"})

	if err := m.RecordVote(ctx, "voter001", "Z"); !errors.Is(err, ErrUnknownCandidate) {
		t.Errorf("Expected ErrUnknownCandidate, got %v", err)
	}
	if err := m.RecordVote(ctx, "voter001", "A"); err != nil {
		t.Fatalf("RecordVote() error = %v", err)
	}
	if err := m.RecordVote(ctx, "voter001", "A"); !errors.Is(err, ErrDuplicateVote) {
		t.Errorf("Expected ErrDuplicateVote, got %v", err)
	}

	tallies, _ := m.Tallies(ctx)
	if tallies[0].Votes != 1 {
		t.Errorf("Expected 1 vote, got %d", tallies[0].Votes)
	}
}
