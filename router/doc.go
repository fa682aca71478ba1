// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the votewatch API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health:

	GET /health
	GET /

Candidates:

	GET  /candidates - Candidates ranked by votes
	POST /candidates - Add candidate (admin)

Voting (public):

	POST /votes - Cast a vote

Results (public):

	GET /stats - Totals, percentages and leader

Administration (requires X-Admin-Key):

	GET  /fraud-log - Duplicate vote attempts
	POST /reset     - Clear the ledger and re-seed candidates

# Handler Initialization

The router creates handler instances with dependency injection:

	candidateHandler := handlers.NewCandidateHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc)

All handlers share one ledger.Service, which serializes writes.
*/
package router
