// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

var (
	ErrInvalidVoterID   = errors.New("invalid voter ID format")
	ErrDuplicateVote    = errors.New("voter has already voted")
	ErrUnknownCandidate = errors.New("unknown candidate")
	ErrCandidateExists  = errors.New("candidate already exists")
	ErrNoVotesCast      = errors.New("no votes have been cast")
)

// AddOutcome reports which branch AddCandidate took.
type AddOutcome int

const (
	Added AddOutcome = iota
	AlreadyExists
)

func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// Err returns nil for Added and ErrCandidateExists otherwise.
func (o AddOutcome) Err() error {
	if o == AlreadyExists {
		return ErrCandidateExists
	}
	return nil
}

// VoteOutcome is the result of a CastVote call.
type VoteOutcome int

const (
	Accepted VoteOutcome = iota
	RejectedInvalidVoterID
	RejectedDuplicate
	RejectedUnknownCandidate
)

func (o VoteOutcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case RejectedInvalidVoterID:
		return "rejected_invalid_voter_id"
	case RejectedDuplicate:
		return "rejected_duplicate"
	case RejectedUnknownCandidate:
		return "rejected_unknown_candidate"
	default:
		return "unknown"
	}
}

// Err maps a rejection to its sentinel error. Accepted maps to nil.
func (o VoteOutcome) Err() error {
	switch o {
	case RejectedInvalidVoterID:
		return ErrInvalidVoterID
	case RejectedDuplicate:
		return ErrDuplicateVote
	case RejectedUnknownCandidate:
		return ErrUnknownCandidate
	default:
		return nil
	}
}
