// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"slices"
	"strings"
)

// Standing is one row of a Report.
type Standing struct {
	Candidate string
	Votes     int
	Percent   float64
}

// Report is a read-only snapshot of the ledger. When NoVotesCast is set,
// Percent fields are zero and Leader is empty.
type Report struct {
	TotalVotes  int
	NoVotesCast bool
	Standings   []Standing
	Leader      Standing
}

// TotalVotes sums every candidate's count.
func TotalVotes(tallies []Tally) int {
	total := 0
	for _, t := range tallies {
		total += t.Votes
	}
	return total
}

// SortTallies orders tallies by votes descending, then by candidate name
// ascending. The input slice is sorted in place and returned.
func SortTallies(tallies []Tally) []Tally {
	slices.SortFunc(tallies, func(a, b Tally) int {
		if a.Votes != b.Votes {
			return b.Votes - a.Votes
		}
		return strings.Compare(a.Candidate, b.Candidate)
	})
	return tallies
}

// Leading returns the candidate with the most votes, ties going to the
// lexicographically smallest name. ok is false when no vote has been cast.
func Leading(tallies []Tally) (leader Tally, ok bool) {
	for _, t := range tallies {
		if t.Votes == 0 {
			continue
		}
		if !ok || t.Votes > leader.Votes || (t.Votes == leader.Votes && t.Candidate < leader.Candidate) {
			leader = t
			ok = true
		}
	}
	return leader, ok
}

// Percentage returns count/total*100. It fails with ErrNoVotesCast when
// total is zero.
func Percentage(count, total int) (float64, error) {
	if total <= 0 {
		return 0, ErrNoVotesCast
	}
	return float64(count) / float64(total) * 100, nil
}

// BuildReport projects tallies into a Report without mutating them.
func BuildReport(tallies []Tally) Report {
	sorted := SortTallies(slices.Clone(tallies))
	total := TotalVotes(sorted)

	report := Report{
		TotalVotes:  total,
		NoVotesCast: total == 0,
		Standings:   make([]Standing, len(sorted)),
	}
	for i, t := range sorted {
		report.Standings[i] = Standing{Candidate: t.Candidate, Votes: t.Votes}
		if pct, err := Percentage(t.Votes, total); err == nil {
			report.Standings[i].Percent = pct
		}
	}

	if leader, ok := Leading(sorted); ok {
		pct, _ := Percentage(leader.Votes, total)
		report.Leader = Standing{Candidate: leader.Candidate, Votes: leader.Votes, Percent: pct}
	}
	return report
}
