// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votewatch/ledger"
	"github.com/danielhkuo/votewatch/middleware"
	"github.com/danielhkuo/votewatch/models"
)

type ResultsHandler struct {
	svc *ledger.Service
}

func NewResultsHandler(svc *ledger.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetStats handles GET /stats
// Percentages are zero and leader is omitted until the first vote.
func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context())
	if err != nil {
		slog.Error("failed to build report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	resp := models.StatsResponse{
		TotalVotes:  report.TotalVotes,
		NoVotesCast: report.NoVotesCast,
		Results:     standingsToResults(report.Standings),
	}
	if !report.NoVotesCast {
		leader := standingToResult(report.Leader, 1)
		resp.Leader = &leader
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func standingsToResults(standings []ledger.Standing) []models.CandidateResult {
	results := make([]models.CandidateResult, len(standings))
	for i, s := range standings {
		results[i] = standingToResult(s, i+1)
	}
	return results
}

func standingToResult(s ledger.Standing, rank int) models.CandidateResult {
	return models.CandidateResult{
		Candidate: s.Candidate,
		Votes:     s.Votes,
		Percent:   s.Percent,
		Rank:      rank,
	}
}
