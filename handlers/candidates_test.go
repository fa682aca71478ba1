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

func TestAddCandidate(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     any
		expectedStatus  int
		expectedOutcome string
	}{
		{
			name:            "new candidate",
			requestBody:     models.AddCandidateRequest{Name: "Alice"},
			expectedStatus:  http.StatusCreated,
			expectedOutcome: "added",
		},
		{
			name:            "existing candidate",
			requestBody:     models.AddCandidateRequest{Name: "Candidate1"},
			expectedStatus:  http.StatusOK,
			expectedOutcome: "already_exists",
		},
		{
			name:            "names are case sensitive",
			requestBody:     models.AddCandidateRequest{Name: "candidate1"},
			expectedStatus:  http.StatusCreated,
			expectedOutcome: "added",
		},
		{
			name:           "invalid JSON",
			requestBody:    "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewTestService(t, ledger.NewMemoryStore())
			handler := NewCandidateHandler(svc)

			req := testutil.MakeRequest("POST", "/candidates", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.AddCandidate(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedOutcome == "" {
				return
			}

			var resp models.AddCandidateResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Outcome != tt.expectedOutcome {
				t.Errorf("Expected outcome %q, got %q", tt.expectedOutcome, resp.Outcome)
			}
		})
	}
}

func TestAddCandidate_Idempotent(t *testing.T) {
	svc := testutil.NewTestService(t, ledger.NewMemoryStore())
	handler := NewCandidateHandler(svc)

	for _, want := range []int{http.StatusCreated, http.StatusOK} {
		req := testutil.MakeRequest("POST", "/candidates", models.AddCandidateRequest{Name: "Alice"}, nil)
		w := httptest.NewRecorder()
		handler.AddCandidate(w, req)
		testutil.AssertStatus(t, w, want)
	}

	results, _ := svc.Results(context.Background())
	if len(results) != 4 {
		t.Errorf("Expected 4 candidates, got %d", len(results))
	}
}

func TestListCandidates(t *testing.T) {
	svc := testutil.NewTestService(t, ledger.NewMemoryStore())
	testutil.CastTestVote(t, svc, "voter001", "Candidate3", ledger.Accepted)
	handler := NewCandidateHandler(svc)

	req := httptest.NewRequest("GET", "/candidates", nil)
	w := httptest.NewRecorder()

	handler.ListCandidates(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CandidatesResponse
	testutil.AssertJSON(t, w, &resp)

	want := []string{"Candidate3", "Candidate1", "Candidate2"}
	if len(resp.Candidates) != len(want) {
		t.Fatalf("Expected %d candidates, got %d", len(want), len(resp.Candidates))
	}
	for i, name := range want {
		if resp.Candidates[i].Candidate != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, resp.Candidates[i].Candidate)
		}
		if resp.Candidates[i].Rank != i+1 {
			t.Errorf("Position %d: expected rank %d, got %d", i, i+1, resp.Candidates[i].Rank)
		}
	}
}
