// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MinVoterIDLength is the shortest voter ID accepted by CastVote, in bytes.
const MinVoterIDLength = 5

// DefaultCandidates seed a new or reset ledger.
var DefaultCandidates = []string{"Candidate1", "Candidate2", "Candidate3"}

// Options configures a Service. Zero values select defaults.
type Options struct {
	Clock      Clock
	Logger     *slog.Logger
	Candidates []string
}

// Service composes the ledger, voter registry and fraud log behind one lock.
type Service struct {
	mu         sync.RWMutex
	store      Store
	clock      Clock
	logger     *slog.Logger
	candidates []string
}

// NewService resets store to the seed candidates and returns a Service over it.
// Any state already in store is discarded.
func NewService(ctx context.Context, store Store, opts Options) (*Service, error) {
	s := &Service{
		store:      store,
		clock:      opts.Clock,
		logger:     opts.Logger,
		candidates: dedupe(opts.Candidates),
	}
	if s.clock == nil {
		s.clock = systemClock{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if len(s.candidates) == 0 {
		s.candidates = slices.Clone(DefaultCandidates)
	}

	if err := store.Reset(ctx, s.candidates); err != nil {
		return nil, fmt.Errorf("failed to seed ledger: %w", err)
	}
	return s, nil
}

// ValidVoterID reports whether voterID passes the format check. It says
// nothing about real-world identity.
func ValidVoterID(voterID string) bool {
	return voterID != "" && len(voterID) >= MinVoterIDLength
}

// AddCandidate registers name with zero votes. Names are not validated.
func (s *Service) AddCandidate(ctx context.Context, name string) (AddOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.store.AddCandidate(ctx, name)
	if err != nil {
		return AlreadyExists, fmt.Errorf("failed to add candidate: %w", err)
	}
	if !added {
		s.logger.Info("candidate already exists", "candidate", name)
		return AlreadyExists, nil
	}

	s.logger.Info("candidate added", "candidate", name)
	return Added, nil
}

// CastVote validates and records a vote. A voter that already voted is
// rejected as a duplicate and fraud-logged before the candidate is checked.
func (s *Service) CastVote(ctx context.Context, voterID, candidate string) (VoteOutcome, error) {
	if !ValidVoterID(voterID) {
		s.logger.Warn("vote rejected", "outcome", RejectedInvalidVoterID.String())
		return RejectedInvalidVoterID, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	voted, err := s.store.HasVoted(ctx, voterID)
	if err != nil {
		return 0, fmt.Errorf("failed to check voter registry: %w", err)
	}
	if voted {
		entry := FraudLogEntry{
			ID:        uuid.NewString(),
			VoterID:   voterID,
			Timestamp: s.clock.Now().Truncate(time.Second),
			Detail:    duplicateDetail(candidate),
		}
		if err := s.store.AppendFraud(ctx, entry); err != nil {
			return 0, fmt.Errorf("failed to append fraud log: %w", err)
		}
		s.logger.Warn("fraud detected", "voter_id", voterID, "candidate", candidate, "entry_id", entry.ID)
		return RejectedDuplicate, nil
	}

	known, err := s.store.HasCandidate(ctx, candidate)
	if err != nil {
		return 0, fmt.Errorf("failed to look up candidate: %w", err)
	}
	if !known {
		s.logger.Warn("vote rejected", "outcome", RejectedUnknownCandidate.String(), "candidate", candidate)
		return RejectedUnknownCandidate, nil
	}

	if err := s.store.RecordVote(ctx, voterID, candidate); err != nil {
		return 0, fmt.Errorf("failed to record vote: %w", err)
	}

	s.logger.Info("vote accepted", "candidate", candidate)
	return Accepted, nil
}

// Reset clears every store and re-seeds the configured candidates.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx, s.candidates); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}
	s.logger.Info("ledger reset", "candidates", len(s.candidates))
	return nil
}

// Candidates returns the seed candidate names used by Reset.
func (s *Service) Candidates() []string {
	return slices.Clone(s.candidates)
}

func (s *Service) tallies(ctx context.Context) ([]Tally, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tallies, err := s.store.Tallies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read tallies: %w", err)
	}
	return tallies, nil
}

func (s *Service) TotalVotes(ctx context.Context) (int, error) {
	tallies, err := s.tallies(ctx)
	if err != nil {
		return 0, err
	}
	return TotalVotes(tallies), nil
}

// Results returns every candidate sorted by votes descending, name ascending.
func (s *Service) Results(ctx context.Context) ([]Tally, error) {
	tallies, err := s.tallies(ctx)
	if err != nil {
		return nil, err
	}
	return SortTallies(tallies), nil
}

// LeadingCandidate returns the current leader; ok is false when no votes
// have been cast.
func (s *Service) LeadingCandidate(ctx context.Context) (leader Tally, ok bool, err error) {
	tallies, err := s.tallies(ctx)
	if err != nil {
		return Tally{}, false, err
	}
	leader, ok = Leading(tallies)
	return leader, ok, nil
}

func (s *Service) Report(ctx context.Context) (Report, error) {
	tallies, err := s.tallies(ctx)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(tallies), nil
}

// FraudLogEntries returns the fraud log in chronological order.
func (s *Service) FraudLogEntries(ctx context.Context) ([]FraudLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.store.FraudEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read fraud log: %w", err)
	}
	return entries, nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
