// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/votewatch/ledger"
)

var _ ledger.Store = (*Store)(nil)

// Store is a ledger.Store over a SQL database.
type Store struct {
	conn    *sql.DB
	dialect string
}

// NewStore creates the schema if needed and returns a Store over conn.
func NewStore(conn *sql.DB, dialect string) (*Store, error) {
	if err := CreateSchema(conn, dialect); err != nil {
		return nil, err
	}
	return &Store{conn: conn, dialect: dialect}, nil
}

func (s *Store) q(query string) string {
	return rebind(s.dialect, query)
}

func (s *Store) AddCandidate(ctx context.Context, name string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO candidate (name, votes) VALUES (?, 0)
		ON CONFLICT (name) DO NOTHING
	`), name)
	if err != nil {
		return false, fmt.Errorf("failed to insert candidate: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

func (s *Store) HasCandidate(ctx context.Context, name string) (bool, error) {
	return s.exists(ctx, `SELECT COUNT(*) FROM candidate WHERE name = ?`, name)
}

func (s *Store) HasVoted(ctx context.Context, voterID string) (bool, error) {
	return s.exists(ctx, `SELECT COUNT(*) FROM voter WHERE voter_id = ?`, voterID)
}

func (s *Store) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int
	if err := s.conn.QueryRowContext(ctx, s.q(query), arg).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}
	return count > 0, nil
}

func (s *Store) RecordVote(ctx context.Context, voterID, candidate string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, s.q(`
		UPDATE candidate SET votes = votes + 1 WHERE name = ?
	`), candidate)
	if err != nil {
		return fmt.Errorf("failed to increment candidate: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("record vote for %q: %w", candidate, ledger.ErrUnknownCandidate)
	}

	res, err = tx.ExecContext(ctx, s.q(`
		INSERT INTO voter (voter_id) VALUES (?)
		ON CONFLICT (voter_id) DO NOTHING
	`), voterID)
	if err != nil {
		return fmt.Errorf("failed to register voter: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("record vote for voter %q: %w", voterID, ledger.ErrDuplicateVote)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) AppendFraud(ctx context.Context, entry ledger.FraudLogEntry) error {
	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO fraud_log (id, voter_id, attempted_at, detail)
		VALUES (?, ?, ?, ?)
	`), entry.ID, entry.VoterID, entry.Timestamp.Unix(), entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to insert fraud log entry: %w", err)
	}
	return nil
}

func (s *Store) Tallies(ctx context.Context) ([]ledger.Tally, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT name, votes FROM candidate`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	tallies := []ledger.Tally{}
	for rows.Next() {
		var t ledger.Tally
		if err := rows.Scan(&t.Candidate, &t.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return tallies, nil
}

func (s *Store) FraudEntries(ctx context.Context) ([]ledger.FraudLogEntry, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, voter_id, attempted_at, detail
		FROM fraud_log
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fraud log: %w", err)
	}
	defer rows.Close()

	entries := []ledger.FraudLogEntry{}
	for rows.Next() {
		var e ledger.FraudLogEntry
		var attemptedAt int64
		if err := rows.Scan(&e.ID, &e.VoterID, &attemptedAt, &e.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan fraud log entry: %w", err)
		}
		e.Timestamp = time.Unix(attemptedAt, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fraud log: %w", err)
	}
	return entries, nil
}

func (s *Store) Reset(ctx context.Context, candidates []string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"fraud_log", "voter", "candidate"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, name := range candidates {
		_, err := tx.ExecContext(ctx, s.q(`
			INSERT INTO candidate (name, votes) VALUES (?, 0)
			ON CONFLICT (name) DO NOTHING
		`), name)
		if err != nil {
			return fmt.Errorf("failed to seed candidate %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
