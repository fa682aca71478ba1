// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votewatch/auth"
	"github.com/danielhkuo/votewatch/cliparse"
	"github.com/danielhkuo/votewatch/ledger"
	"github.com/danielhkuo/votewatch/middleware"
	"github.com/danielhkuo/votewatch/models"
)

type VotingHandler struct {
	svc *ledger.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *ledger.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// CastVote handles POST /votes
// Rejections are answered with the outcome in the body, not an error payload.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	outcome, err := h.svc.CastVote(r.Context(), req.VoterID, req.Candidate)
	if err != nil {
		slog.Error("failed to cast vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	if outcome == ledger.RejectedDuplicate {
		slog.Warn("duplicate vote over http",
			"voter", auth.HashVoterID(req.VoterID, h.cfg.AdminKeySalt),
			"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
		)
	}

	middleware.JSONResponse(w, voteStatus(outcome), models.CastVoteResponse{
		Outcome: outcome.String(),
		Message: voteMessage(outcome, req.Candidate),
	})
}

func voteStatus(outcome ledger.VoteOutcome) int {
	err := outcome.Err()
	switch {
	case err == nil:
		return http.StatusCreated
	case errors.Is(err, ledger.ErrInvalidVoterID):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrDuplicateVote):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrUnknownCandidate):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func voteMessage(outcome ledger.VoteOutcome, candidate string) string {
	switch outcome {
	case ledger.Accepted:
		return "Vote for " + candidate + " registered successfully."
	case ledger.RejectedInvalidVoterID:
		return "Invalid voter ID format."
	case ledger.RejectedDuplicate:
		return "Fraud detected: voter has already voted."
	case ledger.RejectedUnknownCandidate:
		return "Invalid candidate name."
	default:
		return outcome.String()
	}
}
