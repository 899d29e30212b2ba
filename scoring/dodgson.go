// SPDX-License-Identifier: MIT

package scoring

import (
	"slices"

	"github.com/katalvlaran/elecmap/election"
)

// DodgsonBound is a lower bound on the Dodgson score of a candidate: the
// minimum number of swaps of adjacent candidates in the votes that make it a
// Condorcet winner. It is never the exact score unless Exact is set, which
// happens only when the bound is 0 (the candidate already is a Condorcet
// winner).
type DodgsonBound struct {
	Candidate int
	Bound     int
	Exact     bool
}

// DodgsonLowerBounds returns a lower bound on the Dodgson score of every
// candidate.
//
// For candidate c and opponent d with margin μ = N(c≻d) − N(d≻c) ≤ 0, at least
// deficit(c,d) = ⌊−μ/2⌋+1 voters ranking d above c must be changed. Every
// adjacent swap inverts one pair in one vote, so:
//
//	LB1(c) = Σ_d deficit(c,d)
//
// Inverting c and d in a vote where d sits g positions above c also inverts
// every candidate in between, costing at least g swaps, so for each d:
//
//	LB2(c) = max_d (sum of the deficit(c,d) smallest gaps g among voters with d≻c)
//
// The reported bound is max(LB1, LB2).
//
// Complexity: O(n·m² + m²·n log n).
func DodgsonLowerBounds(p *election.Profile) ([]DodgsonBound, error) {
	pos, err := p.Positions()
	if err != nil {
		return nil, err
	}
	P, err := p.PairwiseMatrix()
	if err != nil {
		return nil, err
	}

	m := p.NumCandidates
	out := make([]DodgsonBound, m)
	gaps := make([]int, 0, p.NumVoters)
	for c := 0; c < m; c++ {
		var sumDeficit, maxCost int
		for d := 0; d < m; d++ {
			if d == c {
				continue
			}
			margin := P[c][d] - P[d][c]
			if margin > 0 {
				continue
			}
			deficit := -margin/2 + 1
			sumDeficit += deficit

			gaps = gaps[:0]
			for _, row := range pos {
				if row[d] < row[c] {
					gaps = append(gaps, row[c]-row[d])
				}
			}
			slices.Sort(gaps)
			var cost int
			for _, g := range gaps[:min(deficit, len(gaps))] {
				cost += g
			}
			maxCost = max(maxCost, cost)
		}
		bound := max(sumDeficit, maxCost)
		out[c] = DodgsonBound{Candidate: c, Bound: bound, Exact: bound == 0}
	}

	return out, nil
}

// DodgsonLowerBound returns the smallest per-candidate lower bound, a lower
// bound on the lowest Dodgson score in the profile.
func DodgsonLowerBound(p *election.Profile) (float64, error) {
	bounds, err := DodgsonLowerBounds(p)
	if err != nil {
		return 0, err
	}
	best := bounds[0].Bound
	for _, b := range bounds[1:] {
		best = min(best, b.Bound)
	}

	return float64(best), nil
}
