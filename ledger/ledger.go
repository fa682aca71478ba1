// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// Tally is a candidate name with its vote count.
type Tally struct {
	Candidate string
	Votes     int
}

// Ledger owns the candidate registry and per-candidate vote counters.
// It is not safe for concurrent use; Service serializes access.
type Ledger struct {
	counts map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{counts: make(map[string]int)}
}

// Add registers name with zero votes. Returns false if it already exists.
func (l *Ledger) Add(name string) bool {
	if _, ok := l.counts[name]; ok {
		return false
	}
	l.counts[name] = 0
	return true
}

func (l *Ledger) Has(name string) bool {
	_, ok := l.counts[name]
	return ok
}

// Increment adds one vote to name. Returns false for unknown candidates.
func (l *Ledger) Increment(name string) bool {
	if _, ok := l.counts[name]; !ok {
		return false
	}
	l.counts[name]++
	return true
}

// Tallies returns a copy of every counter in no particular order.
func (l *Ledger) Tallies() []Tally {
	tallies := make([]Tally, 0, len(l.counts))
	for name, votes := range l.counts {
		tallies = append(tallies, Tally{Candidate: name, Votes: votes})
	}
	return tallies
}

func (l *Ledger) Len() int {
	return len(l.counts)
}

func (l *Ledger) Clear() {
	clear(l.counts)
}
