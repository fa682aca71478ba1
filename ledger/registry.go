// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// VoterRegistry is the set of voter IDs that have cast an accepted vote.
// Which candidate a voter chose is never recorded.
type VoterRegistry struct {
	voters map[string]struct{}
}

func NewVoterRegistry() *VoterRegistry {
	return &VoterRegistry{voters: make(map[string]struct{})}
}

func (r *VoterRegistry) Contains(voterID string) bool {
	_, ok := r.voters[voterID]
	return ok
}

// Register records voterID. Returns false if it was already present.
func (r *VoterRegistry) Register(voterID string) bool {
	if r.Contains(voterID) {
		return false
	}
	r.voters[voterID] = struct{}{}
	return true
}

func (r *VoterRegistry) Len() int {
	return len(r.voters)
}

func (r *VoterRegistry) Clear() {
	clear(r.voters)
}
