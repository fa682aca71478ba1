// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/votewatch/auth"
	"github.com/danielhkuo/votewatch/ledger"
	"github.com/danielhkuo/votewatch/models"
	"github.com/danielhkuo/votewatch/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *ledger.Service, string) {
	t.Helper()
	cfg := testutil.GetTestConfig()
	svc := testutil.NewTestService(t, ledger.NewMemoryStore())
	return NewRouter(svc, cfg), svc, auth.GenerateAdminKey(cfg.LedgerName, cfg.AdminKeySalt)
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	expected := "votewatch API v1 (ledger test-ledger)"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPath(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/nowhere", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	mux, _, adminKey := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
		body   any
		okCode int
	}{
		{"POST", "/candidates", models.AddCandidateRequest{Name: "Alice"}, http.StatusCreated},
		{"GET", "/fraud-log", nil, http.StatusOK},
		{"POST", "/reset", nil, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, tc.body, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, tc.body, map[string]string{
				auth.AdminKeyHeader: "wrong",
			}))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, tc.body, map[string]string{
				auth.AdminKeyHeader: adminKey,
			}))
			testutil.AssertStatus(t, w, tc.okCode)
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
		body   any
		want   int
	}{
		{"GET", "/candidates", nil, http.StatusOK},
		{"GET", "/stats", nil, http.StatusOK},
		{"POST", "/votes", models.CastVoteRequest{VoterID: "voter001", Candidate: "Candidate1"}, http.StatusCreated},
		{"GET", "/votes", nil, http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, tc.body, nil))
			testutil.AssertStatus(t, w, tc.want)
		})
	}
}

// TestFullVotingWorkflow drives the ledger through the HTTP surface: add a
// candidate, vote, trip the fraud check, read stats, then reset.
func TestFullVotingWorkflow(t *testing.T) {
	mux, _, adminKey := newTestRouter(t)
	adminHeaders := map[string]string{auth.AdminKeyHeader: adminKey}

	do := func(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
		return w
	}

	// Step 1: add a candidate
	w := do("POST", "/candidates", models.AddCandidateRequest{Name: "Alice"}, adminHeaders)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 2: cast votes
	votes := []struct {
		voterID, candidate string
		want               int
	}{
		{"voter001", "Alice", http.StatusCreated},
		{"voter002", "Alice", http.StatusCreated},
		{"voter003", "Candidate1", http.StatusCreated},
		{"ab", "Alice", http.StatusBadRequest},
		{"voter001", "Candidate1", http.StatusConflict},
		{"voter004", "Bob", http.StatusNotFound},
	}
	for _, v := range votes {
		w := do("POST", "/votes", models.CastVoteRequest{VoterID: v.voterID, Candidate: v.candidate}, nil)
		if w.Code != v.want {
			t.Fatalf("vote %s/%s: expected %d, got %d", v.voterID, v.candidate, v.want, w.Code)
		}
	}

	// Step 3: stats
	w = do("GET", "/stats", nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.TotalVotes != 3 {
		t.Errorf("Expected 3 votes, got %d", stats.TotalVotes)
	}
	if stats.Leader == nil || stats.Leader.Candidate != "Alice" || stats.Leader.Votes != 2 {
		t.Errorf("Expected Alice leading with 2, got %+v", stats.Leader)
	}

	// Step 4: fraud log
	w = do("GET", "/fraud-log", nil, adminHeaders)
	testutil.AssertStatus(t, w, http.StatusOK)
	var fraud models.FraudLogResponse
	testutil.AssertJSON(t, w, &fraud)
	if len(fraud.Entries) != 1 || fraud.Entries[0].VoterID != "voter001" {
		t.Errorf("Expected one fraud entry for voter001, got %+v", fraud.Entries)
	}

	// Step 5: reset
	w = do("POST", "/reset", nil, adminHeaders)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/candidates", nil, nil)
	var candidates models.CandidatesResponse
	testutil.AssertJSON(t, w, &candidates)
	if len(candidates.Candidates) != 3 {
		t.Errorf("Expected seed candidates after reset, got %+v", candidates.Candidates)
	}
	for _, c := range candidates.Candidates {
		if c.Candidate == "Alice" {
			t.Error("Expected Alice to be gone after reset")
		}
	}
}
