// SPDX-License-Identifier: MIT

package cohesive

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCommitteeSize is returned when k < 1.
	ErrBadCommitteeSize = errors.New("cohesive: committee size must be positive")

	// ErrBadLevel is returned when l is outside [1, m].
	ErrBadLevel = errors.New("cohesive: level out of range")

	// ErrBadCommittee is returned when a committee has duplicate or
	// out-of-range members, or more than k of them.
	ErrBadCommittee = errors.New("cohesive: invalid committee")

	// ErrIntractable is returned when an enumeration would exceed the
	// configured limits.
	ErrIntractable = errors.New("cohesive: instance too large for enumeration")

	// ErrBadOptions is returned for an unknown Mode or negative limits.
	ErrBadOptions = errors.New("cohesive: invalid options")
)

// Mode selects exact enumeration or the polynomial greedy approximation.
type Mode int

const (
	// Exact enumerates all l-subsets of candidates.
	Exact Mode = iota
	// Greedy grows one l-set per seed candidate; a lower bound.
	Greedy
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Greedy:
		return "greedy"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "exact":
		return Exact, nil
	case "greedy":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: mode %q", ErrBadOptions, s)
	}
}

const (
	// DefaultMaxSubsets bounds C(m,l) for l-subset enumeration.
	DefaultMaxSubsets = 2_000_000

	// DefaultMaxBruteCandidates bounds m for CountGroupsBrute (2^m subsets).
	DefaultMaxBruteCandidates = 20
)

// Options configures the enumerations. Zero limits mean the defaults.
type Options struct {
	Mode               Mode
	MaxSubsets         int
	MaxBruteCandidates int
}

// DefaultOptions returns Exact mode with the default limits.
func DefaultOptions() Options {
	return Options{
		Mode:               Exact,
		MaxSubsets:         DefaultMaxSubsets,
		MaxBruteCandidates: DefaultMaxBruteCandidates,
	}
}
