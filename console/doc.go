// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console implements the operator menu for votewatch.

# Menu

	menu := console.NewMenu(svc, os.Stdin, os.Stdout)
	menu.Interactive = isatty.IsTerminal(os.Stdin.Fd())
	err := menu.Run(ctx)

The menu offers six choices: cast vote, add candidate, view statistics,
view fraud logs, reset and exit. Input is read as whitespace-separated
tokens, so voter IDs and candidate names cannot contain spaces. An unknown
choice re-prompts. End of input exits cleanly.

When Interactive is false the menu and prompts are suppressed, which keeps
scripted sessions readable:

	printf '1 voter001 Candidate1\n3\n6\n' | votewatch menu

# Output

Outcome messages are colored with fatih/color (green for success, yellow
for soft rejections, red for fraud and invalid IDs). NewMenu enables colors
only when its output writer is a terminal; SetColor overrides that.

Run watches ctx while it waits for input. Once ctx is cancelled, a command
whose input was still being read is dropped rather than executed.

RenderStats and RenderFraudLog write the fixed-width tables. Vote counts
are grouped with go-humanize, and each '#' in the visualization column
stands for 5% of the vote.
*/
package console
