// SPDX-License-Identifier: MIT

package committee

import (
	"math"
	"slices"

	"github.com/katalvlaran/elecmap/election"
)

// RandomSearch draws opts.Samples uniformly random committees of size k
// from the stream seeded by opts.Seed and returns the best one seen (the
// first one on ties).
//
// The result is a Monte-Carlo lower bound on the optimum with no
// multiplicative guarantee. With a fixed seed the committees drawn are a
// prefix of one fixed sequence, so the returned score never decreases as
// Samples grows.
//
// Complexity: O(Samples·(m + n·k log k)).
func RandomSearch(p *election.Profile, rule Rule, opts Options) (Result, error) {
	opts, err := validateOptions(p, rule, opts)
	if err != nil {
		return Result{}, err
	}
	ev, err := newEvaluator(p, rule, opts.ApprovalDepth)
	if err != nil {
		return Result{}, err
	}

	var (
		sampler   = newCommitteeSampler(p.NumCandidates, opts.CommitteeSize, opts.Seed)
		best      = make([]int, opts.CommitteeSize)
		bestScore = math.Inf(-1)
	)
	for t := 0; t < opts.Samples; t++ {
		W := sampler.next()
		if s := ev.score(W); s > bestScore {
			bestScore = s
			copy(best, W)
		}
	}
	slices.Sort(best)

	return Result{
		Committee: best,
		Score:     bestScore,
		Algo:      RandomSample,
		Guarantee: GuaranteeMonteCarlo,
		Evaluated: opts.Samples,
	}, nil
}
