// SPDX-License-Identifier: MIT

package committee

import (
	"github.com/katalvlaran/elecmap/election"
)

// Score returns the score of committee W in profile p under rule.
//
// Only opts.ApprovalDepth is read; 0 means len(W). W may be empty (score 0)
// and its order is irrelevant.
//
// Errors: ErrBadCommittee, ErrUnknownRule, ErrBadOptions, and the profile's
// ErrMalformedProfile.
func Score(p *election.Profile, rule Rule, W []int, opts Options) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := validateCommittee(W, p.NumCandidates); err != nil {
		return 0, err
	}
	if opts.ApprovalDepth < 0 {
		return 0, ErrBadOptions
	}
	depth := opts.ApprovalDepth
	if depth == 0 {
		depth = len(W)
	}

	ev, err := newEvaluator(p, rule, depth)
	if err != nil {
		return 0, err
	}

	return ev.score(W), nil
}
