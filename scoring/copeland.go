// SPDX-License-Identifier: MIT

package scoring

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/elecmap/election"
)

// CopelandScores returns, for every candidate, the number of opponents it
// beats in a strict pairwise majority minus the number it loses to. Pairwise
// ties contribute 0.
//
// Complexity: O(m²) after the pairwise matrix is cached (O(n·m²) to build).
func CopelandScores(p *election.Profile) ([]float64, error) {
	P, err := p.PairwiseMatrix()
	if err != nil {
		return nil, err
	}

	m := p.NumCandidates
	scores := make([]float64, m)
	for a := 0; a < m; a++ {
		for b := a + 1; b < m; b++ {
			switch {
			case P[a][b] > P[b][a]:
				scores[a]++
				scores[b]--
			case P[a][b] < P[b][a]:
				scores[a]--
				scores[b]++
			}
		}
	}

	return scores, nil
}

// HighestCopeland returns the largest Copeland score.
func HighestCopeland(p *election.Profile) (float64, error) {
	scores, err := CopelandScores(p)
	if err != nil {
		return 0, err
	}

	return floats.Max(scores), nil
}

// CondorcetWinner returns the candidate beating every other one in a strict
// pairwise majority, and false when there is none.
func CondorcetWinner(p *election.Profile) (int, bool, error) {
	scores, err := CopelandScores(p)
	if err != nil {
		return 0, false, err
	}
	for c, s := range scores {
		if int(s) == p.NumCandidates-1 {
			return c, true, nil
		}
	}

	return 0, false, nil
}
