// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/votewatch/ledger"
	"github.com/danielhkuo/votewatch/models"
	"github.com/danielhkuo/votewatch/testutil"
)

func TestGetFraudLog(t *testing.T) {
	svc := testutil.NewTestService(t, ledger.NewMemoryStore())
	handler := NewAdminHandler(svc)

	testutil.CastTestVote(t, svc, "voter001", "Candidate1", ledger.Accepted)
	testutil.CastTestVote(t, svc, "voter001", "Candidate2", ledger.RejectedDuplicate)

	req := httptest.NewRequest("GET", "/fraud-log", nil)
	w := httptest.NewRecorder()

	handler.GetFraudLog(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FraudLogResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(resp.Entries))
	}
	entry := resp.Entries[0]
	if entry.VoterID != "voter001" {
		t.Errorf("Expected voter001, got %s", entry.VoterID)
	}
	if entry.Timestamp != "2025-03-14 09:26:53" {
		t.Errorf("Unexpected timestamp %q", entry.Timestamp)
	}
	if entry.Detail != "Attempted duplicate vote for Candidate2" {
		t.Errorf("Unexpected detail %q", entry.Detail)
	}
	if entry.ID == "" {
		t.Error("Expected entry ID")
	}
}

func TestGetFraudLog_Empty(t *testing.T) {
	svc := testutil.NewTestService(t, ledger.NewMemoryStore())
	handler := NewAdminHandler(svc)

	req := httptest.NewRequest("GET", "/fraud-log", nil)
	w := httptest.NewRecorder()

	handler.GetFraudLog(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FraudLogResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Entries == nil || len(resp.Entries) != 0 {
		t.Errorf("Expected empty entries array, got %v", resp.Entries)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewTestService(t, ledger.NewMemoryStore())
	handler := NewAdminHandler(svc)

	svc.AddCandidate(ctx, "Alice")
	testutil.CastTestVote(t, svc, "voter001", "Alice", ledger.Accepted)
	testutil.CastTestVote(t, svc, "voter001", "Alice", ledger.RejectedDuplicate)

	req := httptest.NewRequest("POST", "/reset", nil)
	w := httptest.NewRecorder()

	handler.Reset(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Candidates) != 3 {
		t.Errorf("Expected 3 seed candidates, got %v", resp.Candidates)
	}

	total, _ := svc.TotalVotes(ctx)
	entries, _ := svc.FraudLogEntries(ctx)
	results, _ := svc.Results(ctx)
	if total != 0 || len(entries) != 0 || len(results) != 3 {
		t.Errorf("Expected clean ledger, got total=%d fraud=%d candidates=%d", total, len(entries), len(results))
	}

	// Previously registered voter can vote again
	testutil.CastTestVote(t, svc, "voter001", "Candidate1", ledger.Accepted)
}
