package embedding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/elecmap/election"
	"github.com/katalvlaran/elecmap/embedding"
	"github.com/katalvlaran/elecmap/experiment"
)

// placeholder returns a one-voter ordinal profile with m candidates.
func placeholder(id string, m int) *election.Profile {
	vote := make([]int, m)
	for i := range vote {
		vote[i] = i
	}
	return election.NewOrdinal(id, m, [][]int{vote})
}

// mapOf builds an experiment whose true distances are scale·‖p_a − p_b‖ and
// whose coordinates are the points themselves.
func mapOf(t *testing.T, m int, scale float64, ids []string, pts [][]float64) *experiment.Experiment {
	t.Helper()
	exp := experiment.New("test")
	for i, id := range ids {
		require.NoError(t, exp.Add(placeholder(id, m)))
		exp.Coordinates[id] = pts[i]
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, exp.SetDistance(ids[i], ids[j], scale*floats.Distance(pts[i], pts[j], 2)))
		}
	}
	return exp
}

func line(xs ...float64) ([]string, [][]float64) {
	ids := make([]string, len(xs))
	pts := make([][]float64, len(xs))
	for i, x := range xs {
		ids[i] = fmt.Sprintf("e%d", i)
		pts[i] = []float64{x, 0}
	}
	return ids, pts
}

func TestMonotonicityPairwise_ScaledEmbedding(t *testing.T) {
	ids, pts := line(0, 1, 2.5, 4, 7, 11)
	exp := mapOf(t, 4, 3, ids, pts)

	rep, err := embedding.MonotonicityPairwise(exp, "e0")
	require.NoError(t, err)
	require.Equal(t, 10, rep.Pairs) // C(5,2)
	require.Zero(t, rep.Skipped)
	require.InDelta(t, 10.0, rep.Value, 1e-9)
}

func TestMonotonicityPairwise_Distorted(t *testing.T) {
	ids, pts := line(0, 1, 2)
	exp := mapOf(t, 4, 1, ids, pts)
	// Embedded ratio 1/2 stays, true ratio becomes 1/4.
	require.NoError(t, exp.SetDistance("e0", "e2", 4))

	rep, err := embedding.MonotonicityPairwise(exp, "e0")
	require.NoError(t, err)
	require.Equal(t, 1, rep.Pairs)
	require.InDelta(t, 2.0, rep.Value, 1e-12)
}

func TestMonotonicityPairwise_SkipsZeroDistances(t *testing.T) {
	ids, pts := line(0, 0, 1, 2)
	exp := mapOf(t, 4, 1, ids, pts)

	rep, err := embedding.MonotonicityPairwise(exp, "e0")
	require.NoError(t, err)
	require.Equal(t, 2, rep.Skipped) // pairs with e1, which sits on e0
	require.Equal(t, 1, rep.Pairs)
	require.False(t, math.IsNaN(rep.Value) || math.IsInf(rep.Value, 0))
	require.InDelta(t, 1.0, rep.Value, 1e-12)

	ids, pts = line(0, 0, 0)
	exp = mapOf(t, 4, 1, ids, pts)
	rep, err = embedding.MonotonicityPairwise(exp, "e0")
	require.ErrorIs(t, err, embedding.ErrDegenerate)
	require.Equal(t, 1, rep.Skipped)
}

func TestMonotonicityTriplets(t *testing.T) {
	ids, pts := line(0, 1, 2, 3)
	exp := mapOf(t, 4, 1, ids, pts)

	rep, err := embedding.MonotonicityTriplets(exp, "e0", embedding.DefaultTripletEpsilon)
	require.NoError(t, err)
	require.Equal(t, 3, rep.Pairs)
	require.Zero(t, rep.Value)

	// Swap e1 and e3 in truth only: pairs (e1,e2), (e1,e3), (e2,e3) all flip.
	require.NoError(t, exp.SetDistance("e0", "e1", 3))
	require.NoError(t, exp.SetDistance("e0", "e3", 1))
	rep, err = embedding.MonotonicityTriplets(exp, "e0", 0.1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, rep.Value, 1e-12)

	// A reversal within the tolerance is not a violation.
	ids, pts = line(0, 1, 1.05)
	exp = mapOf(t, 4, 1, ids, pts)
	require.NoError(t, exp.SetDistance("e0", "e1", 2))
	rep, err = embedding.MonotonicityTriplets(exp, "e0", 0.1)
	require.NoError(t, err)
	require.Zero(t, rep.Value)

	ids, pts = line(0, 1)
	exp = mapOf(t, 4, 1, ids, pts)
	_, err = embedding.MonotonicityTriplets(exp, "e0", 0.1)
	require.ErrorIs(t, err, embedding.ErrDegenerate)

	_, err = embedding.MonotonicityTriplets(exp, "e0", -1)
	require.ErrorIs(t, err, embedding.ErrBadEpsilon)
}

func TestMonotonicity_MissingData(t *testing.T) {
	ids, pts := line(0, 1, 2)
	exp := mapOf(t, 4, 1, ids, pts)
	delete(exp.Coordinates, "e2")

	_, err := embedding.MonotonicityPairwise(exp, "e0")
	require.ErrorIs(t, err, experiment.ErrMissingCoordinate)

	exp.Coordinates["e2"] = []float64{1, 2, 3}
	_, err = embedding.MonotonicityPairwise(exp, "e0")
	require.ErrorIs(t, err, embedding.ErrDimensionMismatch)
}

func guardianMap(t *testing.T, scale float64) *experiment.Experiment {
	g := embedding.DefaultGuardians()
	ids := []string{g.Identity, g.Uniformity, g.Antagonism, g.Stratification, "ic_0"}
	// Identity and uniformity sit one unit apart.
	pts := [][]float64{{0, 0}, {1, 0}, {0.5, 0.8}, {0.3, -0.4}, {0.6, 0.2}}
	for i := range pts {
		floats.Scale(scale, pts[i])
	}
	// True distances are in units of the 10-candidate diameter (33).
	exp := mapOf(t, 10, embedding.MapDiameter(10)/scale, ids, pts)
	return exp
}

func TestGuardianDistortion_SimilarityIsOne(t *testing.T) {
	require.Equal(t, 33.0, embedding.MapDiameter(10))

	for _, scale := range []float64{1, 0.25, 40} {
		exp := guardianMap(t, scale)

		d, err := embedding.GuardianDistortion(exp, "ic_0", embedding.DefaultGuardians())
		require.NoError(t, err)
		require.Len(t, d.Ratios, 4)
		for _, r := range d.Ratios {
			require.InDelta(t, 1.0, r, 1e-9)
		}
		require.InDelta(t, 1.0, d.Mean, 1e-9)
		require.InDelta(t, 1.0, d.Max, 1e-9)

		// A guardian skips itself.
		d, err = embedding.GuardianDistortion(exp, "identity_10_100_0", embedding.DefaultGuardians())
		require.NoError(t, err)
		require.Len(t, d.Ratios, 3)
		require.NotContains(t, d.Anchors, "identity_10_100_0")
	}
}

func TestGuardianDistortion_Degenerate(t *testing.T) {
	exp := guardianMap(t, 1)
	g := embedding.DefaultGuardians()

	// ic_0 collapses onto antagonism in the embedding: flagged, not Inf.
	exp.Coordinates["ic_0"] = []float64{0.5, 0.8}
	d, err := embedding.GuardianDistortion(exp, "ic_0", g)
	require.NoError(t, err)
	require.Equal(t, []string{g.Antagonism}, d.Flagged)
	require.Len(t, d.Ratios, 3)
	require.False(t, math.IsInf(d.Max, 0))

	// Identity and uniformity coincide: no normaliser.
	exp.Coordinates[g.Uniformity] = []float64{0, 0}
	_, err = embedding.GuardianDistortion(exp, "ic_0", g)
	require.ErrorIs(t, err, embedding.ErrDegenerate)

	_, err = embedding.GuardianDistortion(exp, "missing", g)
	require.ErrorIs(t, err, experiment.ErrUnknownProfile)
}

func TestHierarchicalClusters(t *testing.T) {
	ids := []string{"a", "b", "Identity_x", "c", "d", "e", "f"}
	xs := []float64{0, 1, 50, 2, 10, 11, 12.5}
	pts := make([][]float64, len(xs))
	for i, x := range xs {
		pts[i] = []float64{x}
	}
	exp := mapOf(t, 4, 1, ids, pts)

	labels, err := embedding.HierarchicalClusters(exp, 2, embedding.DefaultExclude)
	require.NoError(t, err)
	require.Equal(t, map[string]int{
		"a": 1, "b": 1, "c": 1,
		"Identity_x": 0,
		"d": 2, "e": 2, "f": 2,
	}, labels)

	labels, err = embedding.HierarchicalClusters(exp, 3, embedding.DefaultExclude)
	require.NoError(t, err)
	require.Equal(t, 1, labels["a"])
	require.Equal(t, 1, labels["b"])
	require.Equal(t, 1, labels["c"])
	require.Equal(t, 2, labels["d"])
	require.Equal(t, 2, labels["e"])
	require.Equal(t, 3, labels["f"])

	// More clusters than points: singletons.
	labels, err = embedding.HierarchicalClusters(exp, embedding.DefaultNumClusters, nil)
	require.NoError(t, err)
	require.Equal(t, 3, labels["Identity_x"])
	require.Equal(t, 7, labels["f"])

	_, err = embedding.HierarchicalClusters(exp, 0, nil)
	require.ErrorIs(t, err, embedding.ErrBadClusterCount)
}

func TestKMeansClusters(t *testing.T) {
	ids := []string{"p0", "p1", "p2", "q0", "q1", "q2"}
	pts := [][]float64{{0, 0}, {0.2, 0.1}, {-0.1, 0.3}, {10, 10}, {10.2, 9.9}, {9.8, 10.1}}
	exp := mapOf(t, 4, 1, ids, pts)

	for seed := int64(0); seed < 5; seed++ {
		labels, err := embedding.KMeansClusters(exp, 2, seed)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"p0": 0, "p1": 0, "p2": 0, "q0": 1, "q1": 1, "q2": 1}, labels)
	}

	labels, err := embedding.KMeansClusters(exp, 1, 0)
	require.NoError(t, err)
	for _, l := range labels {
		require.Zero(t, l)
	}

	_, err = embedding.KMeansClusters(exp, 7, 0)
	require.ErrorIs(t, err, embedding.ErrBadClusterCount)
}
