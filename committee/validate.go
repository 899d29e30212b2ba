// SPDX-License-Identifier: MIT

package committee

import (
	"fmt"

	"github.com/katalvlaran/elecmap/election"
)

// validateOptions checks Options against profile p and returns the
// normalised copy (zero fields replaced by their defaults).
func validateOptions(p *election.Profile, rule Rule, opts Options) (Options, error) {
	if rule < AV || rule > PAV {
		return opts, fmt.Errorf("%w: %d", ErrUnknownRule, int(rule))
	}
	if opts.Algo < Greedy || opts.Algo > RandomSample {
		return opts, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(opts.Algo))
	}
	if err := p.Validate(); err != nil {
		return opts, err
	}
	if opts.CommitteeSize < 1 || opts.CommitteeSize > p.NumCandidates {
		return opts, fmt.Errorf("%w: k=%d with %d candidates",
			ErrBadCommitteeSize, opts.CommitteeSize, p.NumCandidates)
	}
	if opts.ApprovalDepth < 0 || opts.Samples < 0 || opts.MaxCommittees < 0 {
		return opts, fmt.Errorf("%w: depth=%d samples=%d max committees=%d",
			ErrBadOptions, opts.ApprovalDepth, opts.Samples, opts.MaxCommittees)
	}

	if opts.ApprovalDepth == 0 {
		opts.ApprovalDepth = opts.CommitteeSize
	}
	if opts.Samples == 0 {
		opts.Samples = DefaultSamples
	}
	if opts.MaxCommittees == 0 {
		opts.MaxCommittees = DefaultMaxCommittees
	}

	return opts, nil
}

// validateCommittee checks that W has distinct members in [0, m).
func validateCommittee(W []int, m int) error {
	seen := make([]bool, m)
	for _, c := range W {
		if c < 0 || c >= m {
			return fmt.Errorf("%w: member %d outside [0,%d)", ErrBadCommittee, c, m)
		}
		if seen[c] {
			return fmt.Errorf("%w: member %d repeated", ErrBadCommittee, c)
		}
		seen[c] = true
	}

	return nil
}
