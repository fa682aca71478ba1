// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type AddCandidateRequest struct {
	Name string `json:"name"`
}

type CastVoteRequest struct {
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
}

// Response types

type AddCandidateResponse struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"` // added | already_exists
}

type CastVoteResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

type CandidatesResponse struct {
	Candidates []CandidateResult `json:"candidates"`
}

type StatsResponse struct {
	TotalVotes  int               `json:"total_votes"`
	NoVotesCast bool              `json:"no_votes_cast"`
	Leader      *CandidateResult  `json:"leader,omitempty"`
	Results     []CandidateResult `json:"results"`
}

type FraudLogResponse struct {
	Entries []FraudLogEntry `json:"entries"`
}

type ResetResponse struct {
	Candidates []string `json:"candidates"`
	Message    string   `json:"message"`
}

// Domain types

type CandidateResult struct {
	Candidate string  `json:"candidate"`
	Votes     int     `json:"votes"`
	Percent   float64 `json:"percent"`
	Rank      int     `json:"rank"` // 1-indexed ranking
}

type FraudLogEntry struct {
	ID        string `json:"id"`
	VoterID   string `json:"voter_id"`
	Timestamp string `json:"timestamp"` // 2006-01-02 15:04:05, local time
	Detail    string `json:"detail"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
