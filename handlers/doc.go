// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the votewatch API.

# Handler Types

Each handler is a struct with service and config dependencies:

  - CandidateHandler: List and add candidates
  - VotingHandler: Vote submission
  - ResultsHandler: Statistics
  - AdminHandler: Fraud log and reset

Handlers are created via constructor functions that accept the shared
*ledger.Service. VotingHandler also takes the Config for the admin key salt:

	resultsHandler := handlers.NewResultsHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc, cfg)

# Vote Outcomes

POST /votes always answers with a CastVoteResponse. The status code follows
the outcome:

	accepted                   → 201 Created
	rejected_invalid_voter_id  → 400 Bad Request
	rejected_duplicate         → 409 Conflict
	rejected_unknown_candidate → 404 Not Found

A voter that already voted gets 409 even when naming an unknown candidate,
and every such attempt is appended to the fraud log.

# Candidates

POST /candidates answers 201 when the name was added and 200 when it already
existed. Names are case sensitive and not otherwise validated.

# Admin Operations

Adding candidates, reading the fraud log and resetting require the
X-Admin-Key header. The check lives in middleware.RequireAdminKey and is
applied by the router, so handlers assume an authorized caller.
*/
package handlers
