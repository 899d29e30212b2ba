// SPDX-License-Identifier: MIT

package election

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrMalformedProfile is returned when a vote is inconsistent with
	// NumCandidates or NumVoters (wrong length, duplicate or out-of-range index).
	ErrMalformedProfile = errors.New("election: malformed profile")

	// ErrBallotMismatch is returned when a derivation requires a ballot kind
	// the profile does not carry (e.g., reverse approvals of an ordinal profile).
	ErrBallotMismatch = errors.New("election: ballot kind mismatch")
)

// Ballot distinguishes ordinal rankings from approval sets.
type Ballot int

const (
	// Ordinal ballots rank all candidates, most preferred first.
	Ordinal Ballot = iota
	// Approval ballots list the approved candidates.
	Approval
)

// String returns the lowercase ballot name used in experiment files.
func (b Ballot) String() string {
	switch b {
	case Ordinal:
		return "ordinal"
	case Approval:
		return "approval"
	default:
		return "unknown"
	}
}

// ParseBallot converts "ordinal" / "approval" into a Ballot.
func ParseBallot(s string) (Ballot, error) {
	switch s {
	case "ordinal", "":
		return Ordinal, nil
	case "approval":
		return Approval, nil
	default:
		return 0, fmt.Errorf("%w: ballot %q", ErrBallotMismatch, s)
	}
}

// Profile is one election: its ballots plus lazily derived views.
//
// The exported fields are owned by the caller. After mutating Votes the
// caller must call Invalidate so the derived views are rebuilt.
type Profile struct {
	ID            string
	Ballot        Ballot
	NumVoters     int
	NumCandidates int
	Votes         [][]int

	mu           sync.Mutex
	validated    bool
	positionwise *mat.Dense
	approvalwise []float64
	reverse      []VoterSet
	pairwise     [][]int
	positions    [][]int
}

// NewOrdinal builds an ordinal profile; NumVoters is taken from len(votes).
func NewOrdinal(id string, numCandidates int, votes [][]int) *Profile {
	return &Profile{
		ID:            id,
		Ballot:        Ordinal,
		NumVoters:     len(votes),
		NumCandidates: numCandidates,
		Votes:         votes,
	}
}

// NewApproval builds an approval profile; NumVoters is taken from len(votes).
func NewApproval(id string, numCandidates int, votes [][]int) *Profile {
	return &Profile{
		ID:            id,
		Ballot:        Approval,
		NumVoters:     len(votes),
		NumCandidates: numCandidates,
		Votes:         votes,
	}
}
