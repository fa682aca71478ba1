// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"time"
)

// Store holds the candidate ledger, the voter registry and the fraud log.
// Implementations need not be safe for concurrent use; Service serializes
// every call.
type Store interface {
	// AddCandidate inserts name with zero votes and reports whether it was new.
	AddCandidate(ctx context.Context, name string) (bool, error)
	HasCandidate(ctx context.Context, name string) (bool, error)
	HasVoted(ctx context.Context, voterID string) (bool, error)
	// RecordVote registers voterID and increments candidate as one step.
	RecordVote(ctx context.Context, voterID, candidate string) error
	AppendFraud(ctx context.Context, entry FraudLogEntry) error
	Tallies(ctx context.Context) ([]Tally, error)
	FraudEntries(ctx context.Context) ([]FraudLogEntry, error)
	// Reset empties all three stores and seeds candidates with zero votes.
	Reset(ctx context.Context, candidates []string) error
}

// Clock supplies wall-clock time for fraud log entries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
