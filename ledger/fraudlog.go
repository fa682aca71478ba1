// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "time"

// TimestampLayout is the display format for fraud log timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// FraudLogEntry records one rejected duplicate-vote attempt.
type FraudLogEntry struct {
	ID        string
	VoterID   string
	Timestamp time.Time
	Detail    string
}

// FormattedTimestamp renders Timestamp in local time using TimestampLayout.
func (e FraudLogEntry) FormattedTimestamp() string {
	return e.Timestamp.Local().Format(TimestampLayout)
}

// duplicateDetail describes a duplicate attempt for the fraud log.
func duplicateDetail(candidate string) string {
	return "Attempted duplicate vote for " + candidate
}

// FraudLog is an append-only sequence of duplicate-vote attempts.
type FraudLog struct {
	entries []FraudLogEntry
}

func NewFraudLog() *FraudLog {
	return &FraudLog{}
}

func (f *FraudLog) Append(entry FraudLogEntry) {
	f.entries = append(f.entries, entry)
}

// Entries returns a copy of the log in insertion order.
func (f *FraudLog) Entries() []FraudLogEntry {
	out := make([]FraudLogEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *FraudLog) Len() int {
	return len(f.entries)
}

func (f *FraudLog) Clear() {
	f.entries = nil
}
