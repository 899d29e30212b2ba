package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecmap/election"
	"github.com/katalvlaran/elecmap/scoring"
)

// handProfile is the 4-candidate, 3-voter profile worked out by hand:
//
//	v0: 0 ≻ 1 ≻ 2 ≻ 3
//	v1: 1 ≻ 0 ≻ 2 ≻ 3
//	v2: 0 ≻ 1 ≻ 3 ≻ 2
func handProfile() *election.Profile {
	return election.NewOrdinal("hand", 4, [][]int{{0, 1, 2, 3}, {1, 0, 2, 3}, {0, 1, 3, 2}})
}

func TestBorda_HandComputed(t *testing.T) {
	p := handProfile()

	scores, err := scoring.BordaScores(p)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{8.0 / 3, 7.0 / 3, 2.0 / 3, 1.0 / 3}, scores, 1e-12)

	std, err := scoring.BordaStd(p)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(37)/6, std, 1e-12)

	best, err := scoring.HighestBorda(p)
	require.NoError(t, err)
	require.InDelta(t, 8.0, best, 1e-9)
}

func TestPlurality_HandComputed(t *testing.T) {
	p := handProfile()

	best, err := scoring.HighestPlurality(p)
	require.NoError(t, err)
	require.InDelta(t, 2.0, best, 1e-12)

	winner, err := scoring.PluralityWinner(p)
	require.NoError(t, err)
	require.Equal(t, 0, winner)
}

func TestCopeland_HandComputed(t *testing.T) {
	p := handProfile()

	scores, err := scoring.CopelandScores(p)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, -1, -3}, scores)

	best, err := scoring.HighestCopeland(p)
	require.NoError(t, err)
	require.Equal(t, 3.0, best)

	cw, ok, err := scoring.CondorcetWinner(p)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, cw)
}

func TestCopeland_TiesCountZero(t *testing.T) {
	p := election.NewOrdinal("tie", 2, [][]int{{0, 1}, {1, 0}})
	scores, err := scoring.CopelandScores(p)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, scores)

	_, ok, err := scoring.CondorcetWinner(p)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDodgsonLowerBound(t *testing.T) {
	// Condorcet winner exists: bound 0 and flagged exact.
	bounds, err := scoring.DodgsonLowerBounds(handProfile())
	require.NoError(t, err)
	require.Equal(t, 0, bounds[0].Bound)
	require.True(t, bounds[0].Exact)

	// Candidate 1 loses to 0 by 2:1; flipping one voter costs one swap.
	require.Equal(t, 1, bounds[1].Bound)
	require.False(t, bounds[1].Exact)

	// Candidate 3 is last in v0 and v1 and beats only 2 in v2; to beat 0 it
	// must climb three positions in some voter, so the gap bound dominates.
	require.GreaterOrEqual(t, bounds[3].Bound, 3)

	lowest, err := scoring.DodgsonLowerBound(handProfile())
	require.NoError(t, err)
	require.Zero(t, lowest)
}

func TestDodgsonLowerBound_CondorcetCycle(t *testing.T) {
	// 0≻1≻2, 1≻2≻0, 2≻0≻1: every candidate loses one contest 1:2 and needs
	// exactly one adjacent swap, which is the true Dodgson score.
	p := election.NewOrdinal("cycle", 3, [][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}})
	lowest, err := scoring.DodgsonLowerBound(p)
	require.NoError(t, err)
	require.Equal(t, 1.0, lowest)
}

func TestEffectiveNumCandidates(t *testing.T) {
	// Every candidate takes every position equally often: Borda scores are
	// uniform, so the effective number equals m.
	p := election.NewOrdinal("uniform", 3, [][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}})
	eff, err := scoring.EffectiveNumCandidates(p, scoring.BordaMode)
	require.NoError(t, err)
	require.InDelta(t, 3.0, eff, 1e-9)

	eff, err = scoring.EffectiveNumCandidates(p, scoring.PluralityMode)
	require.NoError(t, err)
	require.InDelta(t, 3.0, eff, 1e-9)

	// Identical votes: one plurality winner takes everything.
	id := election.NewOrdinal("identity", 3, [][]int{{0, 1, 2}, {0, 1, 2}})
	eff, err = scoring.EffectiveNumCandidates(id, scoring.PluralityMode)
	require.NoError(t, err)
	require.InDelta(t, 1.0, eff, 1e-9)
}

func TestApprovalStatistics(t *testing.T) {
	p := election.NewApproval("app", 4, [][]int{{0, 1}, {0, 1}, {2, 3}, {2, 3}})

	best, err := scoring.MaxApprovalScore(p)
	require.NoError(t, err)
	require.Equal(t, 2.0, best)

	abs, err := scoring.Abstract(p)
	require.NoError(t, err)
	require.InDelta(t, 4*math.Log(6), abs, 1e-9)

	_, err = scoring.MaxApprovalScore(handProfile())
	require.ErrorIs(t, err, election.ErrBallotMismatch)
}
