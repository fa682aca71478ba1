// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/danielhkuo/votewatch/ledger"
	"github.com/dustin/go-humanize"
)

const ruleWidth = 60

// percentPerMark is how much of the vote one '#' in the bar stands for.
const percentPerMark = 5

// RenderStats writes the statistics table for report.
func RenderStats(w io.Writer, report ledger.Report) {
	fmt.Fprintln(w, "\n===== VOTING STATISTICS =====")
	fmt.Fprintf(w, "Total votes cast: %s\n", humanize.Comma(int64(report.TotalVotes)))

	if report.NoVotesCast {
		fmt.Fprintln(w, "No votes have been cast yet.")
		return
	}

	fmt.Fprintln(w, "\nCandidate Results:")
	fmt.Fprintf(w, "%-15s%-10s%-10s%s\n", "CANDIDATE", "VOTES", "PERCENT", "VISUALIZATION")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for _, s := range report.Standings {
		fmt.Fprintf(w, "%-15s%-10s%-10.2f%s\n",
			s.Candidate,
			humanize.Comma(int64(s.Votes)),
			s.Percent,
			bar(s.Percent),
		)
	}

	fmt.Fprintf(w, "\nLeading candidate: %s with %s votes (%.2f%%)\n",
		report.Leader.Candidate,
		humanize.Comma(int64(report.Leader.Votes)),
		report.Leader.Percent,
	)
}

// RenderFraudLog writes the fraud log table.
func RenderFraudLog(w io.Writer, entries []ledger.FraudLogEntry) {
	fmt.Fprintln(w, "\n===== FRAUD DETECTION LOGS =====")

	if len(entries) == 0 {
		fmt.Fprintln(w, "No fraud attempts detected.")
		return
	}

	fmt.Fprintf(w, "%-10s%-25s%s\n", "VOTER ID", "TIMESTAMP", "DETAILS")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for _, e := range entries {
		fmt.Fprintf(w, "%-10s%-25s%s\n", e.VoterID, e.FormattedTimestamp(), e.Detail)
	}
}

func bar(percent float64) string {
	n := int(percent / percentPerMark)
	if n <= 0 {
		return ""
	}
	return strings.Repeat("#", n)
}
