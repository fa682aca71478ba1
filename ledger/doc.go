// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger records votes and detects duplicate voters.

# Components

  - Ledger: candidate names and their vote counters
  - VoterRegistry: voter IDs that have cast an accepted vote
  - FraudLog: append-only record of duplicate-vote attempts
  - Service: composes the three behind a Store and a lock

MemoryStore keeps all three in process memory. The db package provides a
SQL-backed Store.

# Casting Votes

CastVote checks, in order:

 1. voter ID format (non-empty, at least MinVoterIDLength bytes)
 2. voter registry membership, logging a FraudLogEntry on a repeat
 3. candidate existence

A repeat voter naming an unknown candidate is therefore reported as
RejectedDuplicate and fraud-logged.

# Reports

Results sort by votes descending, then candidate name ascending. The leading
candidate uses the same tie-break. Percentage returns ErrNoVotesCast when
nothing has been counted yet.

	svc, _ := ledger.NewService(ctx, ledger.NewMemoryStore(), ledger.Options{})
	svc.CastVote(ctx, "voter001", "Candidate1")
	report, _ := svc.Report(ctx)
*/
package ledger
