// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/votewatch/ledger"
)

// RunServiceConformance exercises the ledger.Service contract against stores
// produced by newStore. Every storage engine runs the same suite.
func RunServiceConformance(t *testing.T, newStore func(t *testing.T) ledger.Store) {
	ctx := context.Background()

	t.Run("seeds default candidates", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		results, err := svc.Results(ctx)
		if err != nil {
			t.Fatalf("Results() error = %v", err)
		}
		want := []ledger.Tally{{Candidate: "Candidate1", Votes: 0}, {Candidate: "Candidate2", Votes: 0}, {Candidate: "Candidate3", Votes: 0}}
		assertTallies(t, results, want)
	})

	t.Run("accepted vote increments exactly one counter", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		CastTestVote(t, svc, "voter001", "Candidate2", ledger.Accepted)

		total, err := svc.TotalVotes(ctx)
		if err != nil {
			t.Fatalf("TotalVotes() error = %v", err)
		}
		if total != 1 {
			t.Errorf("Expected 1 total vote, got %d", total)
		}
		results, _ := svc.Results(ctx)
		assertTallies(t, results, []ledger.Tally{{Candidate: "Candidate2", Votes: 1}, {Candidate: "Candidate1", Votes: 0}, {Candidate: "Candidate3", Votes: 0}})
	})

	t.Run("invalid voter IDs never reach the registry", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		for _, id := range []string{"", "a", "ab", "abc", "abcd"} {
			CastTestVote(t, svc, id, "Candidate1", ledger.RejectedInvalidVoterID)
			CastTestVote(t, svc, id, "Nobody", ledger.RejectedInvalidVoterID)
		}

		entries, _ := svc.FraudLogEntries(ctx)
		if len(entries) != 0 {
			t.Errorf("Expected empty fraud log, got %d entries", len(entries))
		}
		total, _ := svc.TotalVotes(ctx)
		if total != 0 {
			t.Errorf("Expected 0 total votes, got %d", total)
		}
	})

	t.Run("duplicates are logged once per attempt", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		CastTestVote(t, svc, "voter001", "Candidate1", ledger.Accepted)
		CastTestVote(t, svc, "voter001", "Candidate1", ledger.RejectedDuplicate)
		CastTestVote(t, svc, "voter001", "Candidate2", ledger.RejectedDuplicate)
		CastTestVote(t, svc, "voter001", "Candidate9", ledger.RejectedDuplicate)

		entries, err := svc.FraudLogEntries(ctx)
		if err != nil {
			t.Fatalf("FraudLogEntries() error = %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("Expected 3 fraud entries, got %d", len(entries))
		}
		wantDetails := []string{
			"Attempted duplicate vote for Candidate1",
			"Attempted duplicate vote for Candidate2",
			"Attempted duplicate vote for Candidate9",
		}
		for i, entry := range entries {
			if entry.VoterID != "voter001" {
				t.Errorf("entry %d: expected voter001, got %q", i, entry.VoterID)
			}
			if entry.Detail != wantDetails[i] {
				t.Errorf("entry %d: expected detail %q, got %q", i, wantDetails[i], entry.Detail)
			}
			if entry.ID == "" {
				t.Errorf("entry %d: expected non-empty ID", i)
			}
			if got := entry.FormattedTimestamp(); got != "2025-03-14 09:26:53" {
				t.Errorf("entry %d: expected timestamp 2025-03-14 09:26:53, got %q", i, got)
			}
		}

		total, _ := svc.TotalVotes(ctx)
		if total != 1 {
			t.Errorf("Expected 1 total vote, got %d", total)
		}
	})

	t.Run("add candidate is idempotent", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		first, err := svc.AddCandidate(ctx, "Alice")
		if err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if first != ledger.Added {
			t.Errorf("Expected Added, got %v", first)
		}
		CastTestVote(t, svc, "voter001", "Alice", ledger.Accepted)

		second, err := svc.AddCandidate(ctx, "Alice")
		if err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if second != ledger.AlreadyExists {
			t.Errorf("Expected AlreadyExists, got %v", second)
		}
		if !errors.Is(second.Err(), ledger.ErrCandidateExists) {
			t.Errorf("Expected ErrCandidateExists, got %v", second.Err())
		}

		leader, ok, _ := svc.LeadingCandidate(ctx)
		if !ok || leader != (ledger.Tally{Candidate: "Alice", Votes: 1}) {
			t.Errorf("Expected Alice with 1 vote leading, got %+v (ok=%v)", leader, ok)
		}
	})

	t.Run("candidate names are case sensitive and unvalidated", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		for _, name := range []string{"candidate1", "", "  "} {
			outcome, err := svc.AddCandidate(ctx, name)
			if err != nil {
				t.Fatalf("AddCandidate(%q) error = %v", name, err)
			}
			if outcome != ledger.Added {
				t.Errorf("AddCandidate(%q) = %v, want Added", name, outcome)
			}
		}
		results, _ := svc.Results(ctx)
		if len(results) != 6 {
			t.Errorf("Expected 6 candidates, got %d", len(results))
		}
	})

	t.Run("reset restores defaults", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		svc.AddCandidate(ctx, "Extra")
		CastTestVote(t, svc, "voter001", "Extra", ledger.Accepted)
		CastTestVote(t, svc, "voter001", "Candidate1", ledger.RejectedDuplicate)

		if err := svc.Reset(ctx); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}

		results, _ := svc.Results(ctx)
		assertTallies(t, results, []ledger.Tally{{Candidate: "Candidate1", Votes: 0}, {Candidate: "Candidate2", Votes: 0}, {Candidate: "Candidate3", Votes: 0}})
		entries, _ := svc.FraudLogEntries(ctx)
		if len(entries) != 0 {
			t.Errorf("Expected empty fraud log after reset, got %d", len(entries))
		}

		// voter001 may vote again once the registry is cleared
		CastTestVote(t, svc, "voter001", "Candidate1", ledger.Accepted)
	})

	t.Run("mixed scenario", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		CastTestVote(t, svc, "voter001", "Candidate1", ledger.Accepted)
		CastTestVote(t, svc, "voter001", "Candidate2", ledger.RejectedDuplicate)
		entries, _ := svc.FraudLogEntries(ctx)
		if len(entries) != 1 {
			t.Fatalf("Expected 1 fraud entry, got %d", len(entries))
		}
		CastTestVote(t, svc, "ab", "Candidate1", ledger.RejectedInvalidVoterID)
		CastTestVote(t, svc, "voter002", "Candidate9", ledger.RejectedUnknownCandidate)

		total, _ := svc.TotalVotes(ctx)
		if total != 1 {
			t.Errorf("Expected 1 total vote, got %d", total)
		}
		results, _ := svc.Results(ctx)
		if results[0] != (ledger.Tally{Candidate: "Candidate1", Votes: 1}) {
			t.Errorf("Expected Candidate1 with 1 vote first, got %+v", results[0])
		}
		entries, _ = svc.FraudLogEntries(ctx)
		if len(entries) != 1 {
			t.Errorf("Expected fraud log length 1, got %d", len(entries))
		}

		// voter002 was rejected for the candidate, so it is not registered
		CastTestVote(t, svc, "voter002", "Candidate3", ledger.Accepted)
	})

	t.Run("percentages", func(t *testing.T) {
		svc := NewTestService(t, newStore(t))

		for _, id := range []string{"voter001", "voter002", "voter003"} {
			CastTestVote(t, svc, id, "Candidate1", ledger.Accepted)
		}
		CastTestVote(t, svc, "voter004", "Candidate2", ledger.Accepted)

		report, err := svc.Report(ctx)
		if err != nil {
			t.Fatalf("Report() error = %v", err)
		}
		if report.TotalVotes != 4 || report.NoVotesCast {
			t.Fatalf("Expected 4 votes cast, got %+v", report)
		}
		if report.Leader.Candidate != "Candidate1" || report.Leader.Percent != 75 {
			t.Errorf("Expected Candidate1 leading at 75%%, got %+v", report.Leader)
		}
	})
}

func assertTallies(t *testing.T, got, want []ledger.Tally) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d tallies, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tally %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
