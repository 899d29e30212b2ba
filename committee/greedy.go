// SPDX-License-Identifier: MIT

package committee

import (
	"math"
	"slices"

	"github.com/katalvlaran/elecmap/election"
)

// GreedySearch builds a committee in k rounds. In each round it scores
// W ∪ {c} for every remaining candidate c and keeps the one with the
// largest score (equivalently the largest marginal gain); ties go to the
// lowest index.
//
// The gain is recomputed from scratch every round, never cached, which is
// what the (1−1/e) guarantee for monotone submodular rules relies on. For AV
// the objective is modular and the greedy committee is optimal.
//
// Complexity: O(k·m·n·k log k).
func GreedySearch(p *election.Profile, rule Rule, opts Options) (Result, error) {
	opts, err := validateOptions(p, rule, opts)
	if err != nil {
		return Result{}, err
	}
	ev, err := newEvaluator(p, rule, opts.ApprovalDepth)
	if err != nil {
		return Result{}, err
	}

	var (
		m         = p.NumCandidates
		k         = opts.CommitteeSize
		inW       = make([]bool, m)
		W         = make([]int, 0, k)
		score     float64
		evaluated int
	)
	for round := 0; round < k; round++ {
		bestC, bestScore := -1, math.Inf(-1)
		for c := 0; c < m; c++ {
			if inW[c] {
				continue
			}
			s := ev.score(append(W, c))
			evaluated++
			if s > bestScore {
				bestC, bestScore = c, s
			}
		}
		inW[bestC] = true
		W = append(W, bestC)
		score = bestScore
	}
	slices.Sort(W)

	guarantee := GuaranteeOneMinusInvE
	if rule == AV {
		guarantee = GuaranteeExact
	}

	return Result{
		Committee: W,
		Score:     score,
		Algo:      Greedy,
		Guarantee: guarantee,
		Evaluated: evaluated,
	}, nil
}
