// SPDX-License-Identifier: MIT

package cohesive

import (
	"fmt"

	"github.com/katalvlaran/elecmap/election"
)

// normalize fills zero limits with defaults and rejects invalid options.
func (o Options) normalize() (Options, error) {
	if o.Mode != Exact && o.Mode != Greedy {
		return o, fmt.Errorf("%w: %s", ErrBadOptions, o.Mode)
	}
	if o.MaxSubsets < 0 || o.MaxBruteCandidates < 0 {
		return o, fmt.Errorf("%w: max subsets=%d max brute candidates=%d",
			ErrBadOptions, o.MaxSubsets, o.MaxBruteCandidates)
	}
	if o.MaxSubsets == 0 {
		o.MaxSubsets = DefaultMaxSubsets
	}
	if o.MaxBruteCandidates == 0 {
		o.MaxBruteCandidates = DefaultMaxBruteCandidates
	}

	return o, nil
}

// prepare validates k, opts and the profile, and returns its reverse approvals.
func prepare(p *election.Profile, k int, opts Options) ([]election.VoterSet, Options, error) {
	if k < 1 {
		return nil, opts, fmt.Errorf("%w: k=%d", ErrBadCommitteeSize, k)
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, opts, err
	}
	rev, err := p.ReverseApprovals()
	if err != nil {
		return nil, opts, err
	}

	return rev, opts, nil
}

// checkLevel requires 1 ≤ l ≤ m.
func checkLevel(l, m int) error {
	if l < 1 || l > m {
		return fmt.Errorf("%w: l=%d with %d candidates", ErrBadLevel, l, m)
	}

	return nil
}
