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

type AdminHandler struct {
	svc *ledger.Service
}

func NewAdminHandler(svc *ledger.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GetFraudLog handles GET /fraud-log
// Requires X-Admin-Key header
func (h *AdminHandler) GetFraudLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.FraudLogEntries(r.Context())
	if err != nil {
		slog.Error("failed to read fraud log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read fraud log")
		return
	}

	resp := models.FraudLogResponse{Entries: make([]models.FraudLogEntry, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = models.FraudLogEntry{
			ID:        e.ID,
			VoterID:   e.VoterID,
			Timestamp: e.FormattedTimestamp(),
			Detail:    e.Detail,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Reset handles POST /reset
// Requires X-Admin-Key header. Clears votes, voters and the fraud log.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		slog.Error("failed to reset ledger", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset ledger")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Candidates: h.svc.Candidates(),
		Message:    "Voting system reset successfully.",
	})
}
