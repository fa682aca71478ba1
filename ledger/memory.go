// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"fmt"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is the process-local Store built from a Ledger, a
// VoterRegistry and a FraudLog. All data is lost on exit.
type MemoryStore struct {
	ledger   *Ledger
	registry *VoterRegistry
	fraud    *FraudLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledger:   NewLedger(),
		registry: NewVoterRegistry(),
		fraud:    NewFraudLog(),
	}
}

func (m *MemoryStore) AddCandidate(_ context.Context, name string) (bool, error) {
	return m.ledger.Add(name), nil
}

func (m *MemoryStore) HasCandidate(_ context.Context, name string) (bool, error) {
	return m.ledger.Has(name), nil
}

func (m *MemoryStore) HasVoted(_ context.Context, voterID string) (bool, error) {
	return m.registry.Contains(voterID), nil
}

func (m *MemoryStore) RecordVote(_ context.Context, voterID, candidate string) error {
	if !m.ledger.Has(candidate) {
		return fmt.Errorf("record vote for %q: %w", candidate, ErrUnknownCandidate)
	}
	if !m.registry.Register(voterID) {
		return fmt.Errorf("record vote for voter %q: %w", voterID, ErrDuplicateVote)
	}
	m.ledger.Increment(candidate)
	return nil
}

func (m *MemoryStore) AppendFraud(_ context.Context, entry FraudLogEntry) error {
	m.fraud.Append(entry)
	return nil
}

func (m *MemoryStore) Tallies(_ context.Context) ([]Tally, error) {
	return m.ledger.Tallies(), nil
}

func (m *MemoryStore) FraudEntries(_ context.Context) ([]FraudLogEntry, error) {
	return m.fraud.Entries(), nil
}

func (m *MemoryStore) Reset(_ context.Context, candidates []string) error {
	m.ledger.Clear()
	m.registry.Clear()
	m.fraud.Clear()
	for _, name := range candidates {
		m.ledger.Add(name)
	}
	return nil
}
