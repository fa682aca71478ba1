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

type CandidateHandler struct {
	svc *ledger.Service
}

func NewCandidateHandler(svc *ledger.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// ListCandidates handles GET /candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{
		Candidates: standingsToResults(report.Standings),
	})
}

// AddCandidate handles POST /candidates
// Requires X-Admin-Key header. Adding an existing name is not an error.
func (h *CandidateHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	outcome, err := h.svc.AddCandidate(r.Context(), req.Name)
	if err != nil {
		slog.Error("failed to add candidate", "error", err, "candidate", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add candidate")
		return
	}

	status := http.StatusCreated
	if outcome == ledger.AlreadyExists {
		status = http.StatusOK
	}

	middleware.JSONResponse(w, status, models.AddCandidateResponse{
		Name:    req.Name,
		Outcome: outcome.String(),
	})
}
