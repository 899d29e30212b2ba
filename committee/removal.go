// SPDX-License-Identifier: MIT

package committee

import (
	"math"

	"github.com/katalvlaran/elecmap/election"
)

// RemovalSearch starts from the full candidate set and repeatedly removes
// the candidate whose removal leaves the highest score (the least loss, or
// the largest gain), ties going to the lowest index, until k candidates
// remain.
//
// No worst-case approximation bound is claimed; the result is a heuristic
// lower bound on the optimum, complementary to GreedySearch.
//
// Complexity: O((m−k)·m·n·m log m).
func RemovalSearch(p *election.Profile, rule Rule, opts Options) (Result, error) {
	opts, err := validateOptions(p, rule, opts)
	if err != nil {
		return Result{}, err
	}
	ev, err := newEvaluator(p, rule, opts.ApprovalDepth)
	if err != nil {
		return Result{}, err
	}

	m, k := p.NumCandidates, opts.CommitteeSize
	W := make([]int, m)
	for c := range W {
		W[c] = c
	}

	var (
		rest      = make([]int, 0, m)
		evaluated int
	)
	for len(W) > k {
		bestIdx, bestScore := -1, math.Inf(-1)
		for i := range W {
			rest = append(rest[:0], W[:i]...)
			rest = append(rest, W[i+1:]...)
			s := ev.score(rest)
			evaluated++
			if s > bestScore {
				bestIdx, bestScore = i, s
			}
		}
		// W stays sorted, so the lowest index wins ties.
		W = append(W[:bestIdx], W[bestIdx+1:]...)
	}

	return Result{
		Committee: W,
		Score:     ev.score(W),
		Algo:      Removal,
		Guarantee: GuaranteeNone,
		Evaluated: evaluated + 1,
	}, nil
}
