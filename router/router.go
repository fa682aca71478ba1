// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/votewatch/cliparse"
	"github.com/danielhkuo/votewatch/handlers"
	"github.com/danielhkuo/votewatch/ledger"
	"github.com/danielhkuo/votewatch/middleware"
)

func NewRouter(svc *ledger.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc)

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminKey(cfg.LedgerName, cfg.AdminKeySalt, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Candidates
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("POST /candidates", admin(candidateHandler.AddCandidate))

	// Voting (public)
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))

	// Results (public)
	mux.HandleFunc("GET /stats", middleware.WithLogging(resultsHandler.GetStats))

	// Administration
	mux.HandleFunc("GET /fraud-log", admin(adminHandler.GetFraudLog))
	mux.HandleFunc("POST /reset", admin(adminHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("votewatch API v1 (ledger " + cfg.LedgerName + ")"))
	})

	return mux
}
