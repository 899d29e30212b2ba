// SPDX-License-Identifier: MIT

package scoring

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/elecmap/election"
)

// BordaScores returns the Borda score of every candidate computed from the
// positionwise matrix: score[i] = Σ_j M[i][j]·(m−j−1). Because M holds
// fractions, the scores are per-voter averages in [0, m−1].
//
// Complexity: O(m²) once the positionwise matrix is cached.
func BordaScores(p *election.Profile) ([]float64, error) {
	M, err := p.PositionwiseMatrix()
	if err != nil {
		return nil, err
	}

	m := p.NumCandidates
	scores := make([]float64, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			scores[i] += M.At(i, j) * float64(m-j-1)
		}
	}

	return scores, nil
}

// BordaStd returns the population standard deviation of BordaScores.
func BordaStd(p *election.Profile) (float64, error) {
	scores, err := BordaScores(p)
	if err != nil {
		return 0, err
	}
	_, std := stat.PopMeanStdDev(scores, nil)

	return std, nil
}

// HighestBorda returns the largest total (not averaged) Borda score of any
// candidate.
func HighestBorda(p *election.Profile) (float64, error) {
	scores, err := BordaScores(p)
	if err != nil {
		return 0, err
	}

	return floats.Max(scores) * float64(p.NumVoters), nil
}

// PluralityScores returns the number of first places of every candidate.
func PluralityScores(p *election.Profile) ([]float64, error) {
	M, err := p.PositionwiseMatrix()
	if err != nil {
		return nil, err
	}

	n := float64(p.NumVoters)
	scores := make([]float64, p.NumCandidates)
	for i := range scores {
		scores[i] = M.At(i, 0) * n
	}

	return scores, nil
}

// HighestPlurality returns the largest number of first places.
func HighestPlurality(p *election.Profile) (float64, error) {
	scores, err := PluralityScores(p)
	if err != nil {
		return 0, err
	}

	return floats.Max(scores), nil
}

// PluralityWinner returns the candidate with most first places; ties go to
// the lowest index.
func PluralityWinner(p *election.Profile) (int, error) {
	scores, err := PluralityScores(p)
	if err != nil {
		return 0, err
	}

	return floats.MaxIdx(scores), nil
}

// Mode selects the score vector used by EffectiveNumCandidates.
type Mode int

const (
	// BordaMode uses Borda scores normalised to sum to 1.
	BordaMode Mode = iota
	// PluralityMode uses first-place fractions.
	PluralityMode
)

// EffectiveNumCandidates returns 1/Σ s_i², where s is the normalised score
// vector of mode. It equals m when all candidates score equally and 1 when
// a single candidate takes every point.
func EffectiveNumCandidates(p *election.Profile, mode Mode) (float64, error) {
	M, err := p.PositionwiseMatrix()
	if err != nil {
		return 0, err
	}

	m := p.NumCandidates
	s := make([]float64, m)
	switch mode {
	case PluralityMode:
		for i := range s {
			s[i] = M.At(i, 0)
		}
	default:
		scores, err := BordaScores(p)
		if err != nil {
			return 0, err
		}
		total := float64(m*(m-1)) / 2
		if total == 0 {
			return 1, nil
		}
		for i := range s {
			s[i] = scores[i] / total
		}
	}

	return 1 / floats.Dot(s, s), nil
}
