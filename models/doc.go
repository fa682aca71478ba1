// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the HTTP API.

# Request Types

Types for parsing incoming JSON:

  - AddCandidateRequest: name
  - CastVoteRequest: voter_id, candidate

# Response Types

Types for JSON responses:

  - AddCandidateResponse: name, outcome ("added" or "already_exists")
  - CastVoteResponse: outcome, message
  - CandidatesResponse: candidates
  - StatsResponse: total_votes, no_votes_cast, leader, results
  - FraudLogResponse: entries
  - ResetResponse: candidates, message
  - ErrorResponse: error, message

# Result Types

  - CandidateResult: candidate, votes, percent, rank
  - FraudLogEntry: id, voter_id, timestamp, detail

Vote outcomes are the strings produced by ledger.VoteOutcome:

	accepted
	rejected_invalid_voter_id
	rejected_duplicate
	rejected_unknown_candidate

Fraud log timestamps are rendered in local time with second precision,
for example "2025-03-14 09:26:53".
*/
package models
