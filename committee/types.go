// SPDX-License-Identifier: MIT

package committee

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCommitteeSize is returned when CommitteeSize is not in [1, m].
	ErrBadCommitteeSize = errors.New("committee: committee size out of range")

	// ErrBadCommittee is returned when a committee has duplicate or
	// out-of-range members.
	ErrBadCommittee = errors.New("committee: invalid committee")

	// ErrUnknownRule is returned for a Rule outside the enumerated set.
	ErrUnknownRule = errors.New("committee: unknown rule")

	// ErrUnsupportedAlgorithm is returned for an Algorithm outside the enumerated set.
	ErrUnsupportedAlgorithm = errors.New("committee: unsupported algorithm")

	// ErrIntractable is returned when an exhaustive search would enumerate
	// more committees than Options.MaxCommittees allows.
	ErrIntractable = errors.New("committee: instance too large for exhaustive search")

	// ErrBadOptions is returned for negative sample counts, depths or limits.
	ErrBadOptions = errors.New("committee: invalid options")
)

// Rule enumerates the committee scoring rules.
type Rule int

const (
	// AV is approval voting: the number of approved committee members.
	AV Rule = iota
	// CC is Chamberlin–Courant: utility of the best committee member.
	CC
	// HB is harmonic Borda: Borda utilities with harmonic OWA weights.
	HB
	// PAV is proportional approval voting: harmonic number of approved members.
	PAV
)

// String returns the lowercase rule name.
func (r Rule) String() string {
	switch r {
	case AV:
		return "av"
	case CC:
		return "cc"
	case HB:
		return "hb"
	case PAV:
		return "pav"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Algorithm selects how Solve searches for a high-scoring committee.
type Algorithm int

const (
	// Greedy adds the best marginal candidate k times.
	Greedy Algorithm = iota
	// Exhaustive enumerates every committee (exact, exponential).
	Exhaustive
	// Removal removes the least useful candidate until k remain.
	Removal
	// RandomSample keeps the best of Options.Samples random committees.
	RandomSample
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Exhaustive:
		return "exhaustive"
	case Removal:
		return "removal"
	case RandomSample:
		return "random"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a := Greedy; a <= RandomSample; a++ {
		if a.String() == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Guarantee states what a Result's score is known to be relative to the
// optimum OPT.
type Guarantee int

const (
	// GuaranteeExact: Score == OPT.
	GuaranteeExact Guarantee = iota
	// GuaranteeOneMinusInvE: (1−1/e)·OPT ≤ Score ≤ OPT.
	GuaranteeOneMinusInvE
	// GuaranteeNone: Score ≤ OPT, nothing more.
	GuaranteeNone
	// GuaranteeMonteCarlo: Score ≤ OPT; best of random samples.
	GuaranteeMonteCarlo
)

// String describes the guarantee.
func (g Guarantee) String() string {
	switch g {
	case GuaranteeExact:
		return "exact"
	case GuaranteeOneMinusInvE:
		return "(1-1/e)-approximation"
	case GuaranteeNone:
		return "heuristic lower bound"
	case GuaranteeMonteCarlo:
		return "monte-carlo lower bound"
	default:
		return "unknown"
	}
}

const (
	// DefaultSamples is the RandomSample draw count used when Samples == 0.
	DefaultSamples = 1000

	// DefaultMaxCommittees caps Exhaustive when MaxCommittees == 0.
	DefaultMaxCommittees = 2_000_000
)

// Options configures Score and Solve.
//
// CommitteeSize – k, must satisfy 1 ≤ k ≤ m.
// ApprovalDepth – for AV/PAV on ordinal ballots, how many top positions
//
//	count as approved. 0 means k.
//
// Samples       – RandomSample draw count. 0 means DefaultSamples.
// Seed          – RandomSample seed. 0 means a fixed default seed.
// MaxCommittees – Exhaustive refuses when C(m,k) exceeds it. 0 means
//
//	DefaultMaxCommittees; negative values are rejected.
type Options struct {
	Algo          Algorithm
	CommitteeSize int
	ApprovalDepth int
	Samples       int
	Seed          int64
	MaxCommittees int
}

// DefaultOptions returns Greedy options for committees of size k.
func DefaultOptions(k int) Options {
	return Options{
		Algo:          Greedy,
		CommitteeSize: k,
		Samples:       DefaultSamples,
		MaxCommittees: DefaultMaxCommittees,
	}
}

// Result is the committee an algorithm settled on.
type Result struct {
	Committee []int // sorted candidate indices, len == k
	Score     float64
	Algo      Algorithm
	Guarantee Guarantee
	Evaluated int // number of committee score evaluations performed
}
