// SPDX-License-Identifier: MIT

package committee

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/elecmap/election"
)

// ExhaustiveSearch returns an optimal committee by scoring all C(m,k)
// committees in lexicographic order; among equal scores the
// lexicographically first committee wins.
//
// This is exponential in k. When C(m,k) exceeds opts.MaxCommittees the
// search is refused with ErrIntractable before any enumeration happens.
//
// Complexity: O(C(m,k)·n·k log k) time, O(n·m) memory.
func ExhaustiveSearch(p *election.Profile, rule Rule, opts Options) (Result, error) {
	opts, err := validateOptions(p, rule, opts)
	if err != nil {
		return Result{}, err
	}
	m, k := p.NumCandidates, opts.CommitteeSize

	// Compare in log space: C(m,k) overflows int long before it matters.
	if combin.LogGeneralizedBinomial(float64(m), float64(k)) > math.Log(float64(opts.MaxCommittees)) {
		return Result{}, fmt.Errorf("%w: C(%d,%d) committees exceed limit %d",
			ErrIntractable, m, k, opts.MaxCommittees)
	}

	ev, err := newEvaluator(p, rule, opts.ApprovalDepth)
	if err != nil {
		return Result{}, err
	}

	var (
		gen       = combin.NewCombinationGenerator(m, k)
		W         = make([]int, k)
		best      = make([]int, k)
		bestScore = math.Inf(-1)
		evaluated int
	)
	for gen.Next() {
		gen.Combination(W)
		s := ev.score(W)
		evaluated++
		if s > bestScore {
			bestScore = s
			copy(best, W)
		}
	}

	return Result{
		Committee: best,
		Score:     bestScore,
		Algo:      Exhaustive,
		Guarantee: GuaranteeExact,
		Evaluated: evaluated,
	}, nil
}
