// SPDX-License-Identifier: MIT

package committee

import (
	"fmt"

	"github.com/katalvlaran/elecmap/election"
)

// Solve routes to the search selected by opts.Algo. Exhaustive must be
// requested explicitly; it is never chosen implicitly.
//
// Errors: ErrUnknownRule, ErrUnsupportedAlgorithm, ErrBadCommitteeSize,
// ErrBadOptions, ErrIntractable (Exhaustive only), and profile errors.
func Solve(p *election.Profile, rule Rule, opts Options) (Result, error) {
	switch opts.Algo {
	case Exhaustive:
		return ExhaustiveSearch(p, rule, opts)
	case Greedy:
		return GreedySearch(p, rule, opts)
	case Removal:
		return RemovalSearch(p, rule, opts)
	case RandomSample:
		return RandomSearch(p, rule, opts)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(opts.Algo))
	}
}
