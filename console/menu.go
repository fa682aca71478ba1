// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danielhkuo/votewatch/ledger"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Menu is the interactive operator console over a ledger.Service.
type Menu struct {
	svc    *ledger.Service
	in     *bufio.Scanner
	out    io.Writer
	tokens chan string

	success *color.Color
	warning *color.Color
	failure *color.Color

	// Interactive controls whether the menu and prompts are printed. Results
	// are always printed.
	Interactive bool
}

// NewMenu reads whitespace-separated tokens from in and writes to out.
// Output is colored only when out is a terminal.
func NewMenu(svc *ledger.Service, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	m := &Menu{
		svc:         svc,
		in:          scanner,
		out:         out,
		success:     color.New(color.FgGreen),
		warning:     color.New(color.FgYellow),
		failure:     color.New(color.FgRed, color.Bold),
		Interactive: true,
	}
	m.SetColor(isTerminal(out))
	return m
}

// SetColor forces colored output on or off.
func (m *Menu) SetColor(enabled bool) {
	for _, c := range []*color.Color{m.success, m.warning, m.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run loops until the operator exits, input ends or ctx is cancelled.
// Cancellation is honoured while waiting for input, and a command whose
// input arrives after cancellation is not executed. Only storage failures
// are returned as errors.
func (m *Menu) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	m.tokens = make(chan string)
	go m.scan(done)

	for {
		if ctx.Err() != nil {
			return nil
		}

		m.showMenu()
		choice, ok := m.next(ctx)
		if !ok {
			return m.inputErr(ctx)
		}

		var err error
		switch choice {
		case "1":
			err = m.castVote(ctx)
		case "2":
			err = m.addCandidate(ctx)
		case "3":
			err = m.showStats(ctx)
		case "4":
			err = m.showFraudLog(ctx)
		case "5":
			err = m.reset(ctx)
		case "6":
			fmt.Fprintln(m.out, "Thank you for using the Voting System.")
			return nil
		default:
			m.warning.Fprintln(m.out, "Invalid choice. Please try again.")
		}

		if errors.Is(err, errInputClosed) {
			return m.inputErr(ctx)
		}
		if err != nil {
			return err
		}
	}
}

var errInputClosed = errors.New("input closed")

func (m *Menu) showMenu() {
	if !m.Interactive {
		return
	}
	fmt.Fprintln(m.out, "\n===== VOTING SYSTEM MENU =====")
	fmt.Fprintln(m.out, "1. Cast Vote")
	fmt.Fprintln(m.out, "2. Add Candidate")
	fmt.Fprintln(m.out, "3. View Statistics")
	fmt.Fprintln(m.out, "4. View Fraud Logs")
	fmt.Fprintln(m.out, "5. Reset System")
	fmt.Fprintln(m.out, "6. Exit")
	m.prompt("Enter your choice: ")
}

func (m *Menu) prompt(text string) {
	if m.Interactive {
		fmt.Fprint(m.out, text)
	}
}

// scan feeds tokens to Run until input ends or Run returns. A read that is
// blocked when Run returns is abandoned.
func (m *Menu) scan(done <-chan struct{}) {
	defer close(m.tokens)
	for m.in.Scan() {
		select {
		case m.tokens <- m.in.Text():
		case <-done:
			return
		}
	}
}

func (m *Menu) next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case token, ok := <-m.tokens:
		if !ok || ctx.Err() != nil {
			return "", false
		}
		return token, true
	}
}

// inputErr is the scanner error once input has ended, or nil if ctx was
// cancelled first.
func (m *Menu) inputErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return m.in.Err()
}

func (m *Menu) castVote(ctx context.Context) error {
	m.prompt("Enter your Voter ID: ")
	voterID, ok := m.next(ctx)
	if !ok {
		return errInputClosed
	}
	m.prompt("Enter candidate name: ")
	candidate, ok := m.next(ctx)
	if !ok {
		return errInputClosed
	}

	outcome, err := m.svc.CastVote(ctx, voterID, candidate)
	if err != nil {
		return err
	}

	switch outcome {
	case ledger.Accepted:
		m.success.Fprintf(m.out, "Vote for %s registered successfully.\n", candidate)
	case ledger.RejectedInvalidVoterID:
		m.failure.Fprintln(m.out, "Invalid voter ID format.")
	case ledger.RejectedDuplicate:
		m.failure.Fprintf(m.out, "Fraud detected: Voter %s has already voted.\n", voterID)
	case ledger.RejectedUnknownCandidate:
		m.warning.Fprintln(m.out, "Invalid candidate name.")
	}
	return nil
}

func (m *Menu) addCandidate(ctx context.Context) error {
	m.prompt("Enter new candidate name: ")
	name, ok := m.next(ctx)
	if !ok {
		return errInputClosed
	}

	outcome, err := m.svc.AddCandidate(ctx, name)
	if err != nil {
		return err
	}

	if outcome == ledger.Added {
		m.success.Fprintf(m.out, "Candidate %s added successfully.\n", name)
	} else {
		m.warning.Fprintf(m.out, "Candidate %s already exists.\n", name)
	}
	return nil
}

func (m *Menu) showStats(ctx context.Context) error {
	report, err := m.svc.Report(ctx)
	if err != nil {
		return err
	}
	RenderStats(m.out, report)
	return nil
}

func (m *Menu) showFraudLog(ctx context.Context) error {
	entries, err := m.svc.FraudLogEntries(ctx)
	if err != nil {
		return err
	}
	RenderFraudLog(m.out, entries)
	return nil
}

func (m *Menu) reset(ctx context.Context) error {
	if err := m.svc.Reset(ctx); err != nil {
		return err
	}
	m.success.Fprintln(m.out, "Voting system reset successfully.")
	return nil
}
