package features_test

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecmap/committee"
	"github.com/katalvlaran/elecmap/election"
	"github.com/katalvlaran/elecmap/embedding"
	"github.com/katalvlaran/elecmap/experiment"
	"github.com/katalvlaran/elecmap/features"
	"github.com/katalvlaran/elecmap/scoring"
)

func twoParties() *election.Profile {
	return election.NewApproval("parties", 4, [][]int{{0, 1}, {0, 1}, {2, 3}, {2, 3}})
}

func randomOrdinal(id string, seed int64, n, m int) *election.Profile {
	rng := rand.New(rand.NewSource(seed))
	votes := make([][]int, n)
	for v := range votes {
		votes[v] = rng.Perm(m)
	}
	return election.NewOrdinal(id, m, votes)
}

func experimentOf(t *testing.T, profiles ...*election.Profile) *experiment.Experiment {
	t.Helper()
	exp := experiment.New("test-map")
	for _, p := range profiles {
		require.NoError(t, exp.Add(p))
	}
	return exp
}

// embedOnLine places every profile of exp at x along a line and sets the
// true distances to scale·|x_a − x_b|.
func embedOnLine(t *testing.T, exp *experiment.Experiment, scale float64, xs ...float64) {
	t.Helper()
	require.Len(t, xs, len(exp.IDs))
	for i, id := range exp.IDs {
		exp.Coordinates[id] = []float64{xs[i]}
		for j := i + 1; j < len(exp.IDs); j++ {
			require.NoError(t, exp.SetDistance(id, exp.IDs[j], scale*math.Abs(xs[i]-xs[j])))
		}
	}
}

func TestRegistry(t *testing.T) {
	ids := features.IDs()
	require.Len(t, ids, 34)
	require.IsNonDecreasing(t, ids)

	for _, id := range ids {
		f, err := features.Lookup(id)
		require.NoError(t, err, id)
		require.Equal(t, id, f.ID)
		require.NotEmpty(t, f.Summary, id)
	}

	_, err := features.Lookup("no_such_feature")
	require.ErrorIs(t, err, features.ErrUnknownFeature)
	require.Contains(t, err.Error(), "no_such_feature")

	alias, err := features.Lookup(features.LowestDodgsonScore)
	require.NoError(t, err)
	require.Equal(t, features.DodgsonLowerBound, alias.AliasOf)

	f, err := features.Lookup(features.ProportionalityDegreePAV)
	require.NoError(t, err)
	require.Equal(t, features.Global, f.Scope)
	require.Equal(t, features.Vector, f.Kind)

	f, err = features.Lookup(features.Clustering)
	require.NoError(t, err)
	require.Equal(t, features.WholeExperiment, f.Scope)
	require.Equal(t, features.Mapping, f.Kind)
}

// TestJustifiedRatio_EndToEnd runs the registry path on the two-party
// profile: threshold 4/2 = 2, both parties qualify, every voter is covered.
func TestJustifiedRatio_EndToEnd(t *testing.T) {
	exp := experimentOf(t, twoParties())
	params := features.DefaultParams()
	params.CommitteeSize = 2

	values, err := features.ComputeAll(exp, features.JustifiedRatio, params)
	require.NoError(t, err)
	require.Equal(t, map[string]features.Value{"parties": features.ScalarValue(1)}, values)
}

func TestComputeAll_UnknownFeature(t *testing.T) {
	exp := experimentOf(t, twoParties())
	_, err := features.ComputeAll(exp, "bogus", features.DefaultParams())
	require.ErrorIs(t, err, features.ErrUnknownFeature)
}

func TestScoringFeatures_MatchScoring(t *testing.T) {
	p := randomOrdinal("ic_0", 3, 25, 5)
	exp := experimentOf(t, p)
	params := features.DefaultParams()

	cases := map[features.ID]func(*election.Profile) (float64, error){
		features.BordaStd:              scoring.BordaStd,
		features.HighestBordaScore:     scoring.HighestBorda,
		features.HighestPluralityScore: scoring.HighestPlurality,
		features.HighestCopelandScore:  scoring.HighestCopeland,
		features.DodgsonLowerBound:     scoring.DodgsonLowerBound,
		features.LowestDodgsonScore:    scoring.DodgsonLowerBound,
	}
	for id, direct := range cases {
		f, err := features.Lookup(id)
		require.NoError(t, err)
		v, err := f.Compute(exp, "ic_0", params)
		require.NoError(t, err, id)
		want, err := direct(p)
		require.NoError(t, err)
		require.Equal(t, features.ScalarValue(want), v, id)
	}

	f, err := features.Lookup(features.EffectiveNumCandidatesPlurality)
	require.NoError(t, err)
	x, err := f.ComputeProfile(p, params)
	require.NoError(t, err)
	want, err := scoring.EffectiveNumCandidates(p, scoring.PluralityMode)
	require.NoError(t, err)
	require.Equal(t, want, x)
}

func TestCommitteeFeatures_Ordering(t *testing.T) {
	p := randomOrdinal("ic_0", 9, 12, 6)
	params := features.DefaultParams()
	params.CommitteeSize = 3
	params.Samples = 40

	score := func(id features.ID) float64 {
		f, err := features.Lookup(id)
		require.NoError(t, err)
		x, err := f.ComputeProfile(p, params)
		require.NoError(t, err, id)
		return x
	}
	for _, fam := range [][4]features.ID{
		{features.HighestCCScore, features.GreedyApproxCCScore, features.RemovalApproxCCScore, ""},
		{features.HighestHBScore, features.GreedyApproxHBScore, features.RemovalApproxHBScore, ""},
		{features.HighestPAVScore, features.GreedyApproxPAVScore, features.RemovalApproxPAVScore, features.RandApproxPAVScore},
	} {
		opt := score(fam[0])
		g := score(fam[1])
		require.LessOrEqual(t, g, opt+1e-9)
		require.GreaterOrEqual(t, g, (1-1/math.E)*opt-1e-9)
		require.LessOrEqual(t, score(fam[2]), opt+1e-9)
		if fam[3] != "" {
			r := score(fam[3])
			require.LessOrEqual(t, r, opt+1e-9)
			require.Equal(t, r, score(fam[3]), "fixed seed must reproduce")
		}
	}

	require.GreaterOrEqual(t, score(features.PAVTime), 0.0)
}

func TestCommitteeFeatures_Errors(t *testing.T) {
	p := randomOrdinal("big", 1, 3, 40)
	exp := experimentOf(t, p)
	params := features.DefaultParams()
	params.CommitteeSize = 20

	f, err := features.Lookup(features.HighestPAVScore)
	require.NoError(t, err)
	_, err = f.Compute(exp, "big", params)
	require.ErrorIs(t, err, committee.ErrIntractable)
	require.Contains(t, err.Error(), string(features.HighestPAVScore))
	require.Contains(t, err.Error(), `"big"`)

	_, err = f.Compute(exp, "missing", params)
	require.ErrorIs(t, err, experiment.ErrUnknownProfile)

	params.CommitteeSize = 41
	f, err = features.Lookup(features.GreedyApproxCCScore)
	require.NoError(t, err)
	_, err = f.Compute(exp, "big", params)
	require.ErrorIs(t, err, committee.ErrBadCommitteeSize)
}

func TestCohesiveFeatures(t *testing.T) {
	exp := experimentOf(t, twoParties())
	params := features.DefaultParams()
	params.CommitteeSize = 4

	want := map[features.ID]float64{
		features.JustifiedRatio:              1,
		features.Cohesiveness:                2,
		features.NumberOfCohesiveGroups:      2,
		features.NumberOfCohesiveGroupsBrute: 2,
	}
	for id, x := range want {
		f, err := features.Lookup(id)
		require.NoError(t, err)
		v, err := f.Compute(exp, "parties", params)
		require.NoError(t, err, id)
		require.Equal(t, features.ScalarValue(x), v, id)
	}
}

func TestProportionalityDegree(t *testing.T) {
	exp := experimentOf(t, twoParties())
	params := features.DefaultParams()
	params.CommitteeSize = 2

	want := map[features.ID][]float64{
		features.ProportionalityDegreePAV: {1}, // {0,2}: one seat per party
		features.ProportionalityDegreeCC:  {1}, // {0,2}
		features.ProportionalityDegreeAV:  {0}, // {0,1}: ties go to the lowest index
	}
	for id, vec := range want {
		values, err := features.ComputeAll(exp, id, params)
		require.NoError(t, err, id)
		require.Equal(t, features.VectorValue(vec), values["parties"], id)
	}

	f, err := features.Lookup(features.ProportionalityDegreeAV)
	require.NoError(t, err)
	_, err = f.ComputeProfile(twoParties(), params)
	require.ErrorIs(t, err, features.ErrScope)
}

func TestEmbeddingFeatures(t *testing.T) {
	exp := experimentOf(t,
		randomOrdinal("a", 1, 5, 4),
		randomOrdinal("b", 2, 5, 4),
		randomOrdinal("c", 3, 5, 4),
		randomOrdinal("d", 4, 5, 4),
	)
	embedOnLine(t, exp, 2, 0, 1, 3, 6)
	params := features.DefaultParams()

	values, err := features.ComputeAll(exp, features.Monotonicity1, params)
	require.NoError(t, err)
	for id, v := range values {
		require.False(t, v.Undefined, id)
		require.InDelta(t, 3.0, v.Scalar, 1e-9, id) // C(3,2) pairs, each exactly 1
	}

	values, err = features.ComputeAll(exp, features.MonotonicityTriplets, params)
	require.NoError(t, err)
	for _, v := range values {
		require.Zero(t, v.Scalar)
	}

	// All three profiles coincide: the only pair around "a" is degenerate.
	flat := experimentOf(t, randomOrdinal("a", 1, 5, 4), randomOrdinal("b", 2, 5, 4), randomOrdinal("c", 3, 5, 4))
	embedOnLine(t, flat, 1, 0, 0, 0)
	f, err := features.Lookup(features.Monotonicity1)
	require.NoError(t, err)
	v, err := f.Compute(flat, "a", params)
	require.NoError(t, err)
	require.True(t, v.Undefined)

	// Guardians absent: the identity–uniformity normaliser is missing.
	f, err = features.Lookup(features.AvgDistortionFromGuardians)
	require.NoError(t, err)
	_, err = f.Compute(exp, "a", params)
	require.ErrorIs(t, err, experiment.ErrMissingCoordinate)

	// With custom guardians that are part of the map the distortion is defined.
	params.Guardians = embedding.Guardians{Identity: "a", Uniformity: "d", Antagonism: "b", Stratification: "zz"}
	v, err = f.Compute(exp, "c", params)
	require.NoError(t, err)
	require.False(t, v.Undefined)
	require.Greater(t, v.Scalar, 0.0)
}

func TestClusteringFeatures(t *testing.T) {
	exp := experimentOf(t,
		randomOrdinal("a", 1, 5, 4),
		randomOrdinal("b", 2, 5, 4),
		randomOrdinal("Identity_0", 3, 5, 4),
		randomOrdinal("c", 4, 5, 4),
		randomOrdinal("d", 5, 5, 4),
	)
	embedOnLine(t, exp, 1, 0, 0.5, 20, 10, 10.5)
	params := features.DefaultParams()
	params.NumClusters = 2

	values, err := features.ComputeAll(exp, features.Clustering, params)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, features.MappingValue(map[string]float64{
		"a": 1, "b": 1, "Identity_0": 0, "c": 2, "d": 2,
	}), values["test-map"])

	params.NumClusters = 3
	values, err = features.ComputeAll(exp, features.ClusteringKMeans, params)
	require.NoError(t, err)
	labels := values["test-map"].Mapping
	require.Len(t, labels, 5)
	require.Equal(t, labels["a"], labels["b"])
	require.Equal(t, labels["c"], labels["d"])
	require.NotEqual(t, labels["a"], labels["c"])
	require.NotEqual(t, labels["Identity_0"], labels["a"])
	require.NotEqual(t, labels["Identity_0"], labels["c"])
}

func TestValues_RoundTrip(t *testing.T) {
	in := map[string]features.Value{
		"ic_0":       features.ScalarValue(12.5),
		"ic_1":       features.ScalarValue(1.0 / 3),
		"ic,quoted":  features.ScalarValue(-2),
		"degenerate": features.UndefinedValue(features.Scalar),
		"vec":        features.VectorValue([]float64{1, 0.5, 0.1}),
		"empty":      features.VectorValue([]float64{}),
		"map":        features.MappingValue(map[string]float64{"ic_0": 1, "a=b": 2, "ic_1": 0}),
	}

	var buf bytes.Buffer
	require.NoError(t, features.WriteValues(&buf, in))
	require.True(t, strings.HasPrefix(buf.String(), "profile_id,kind,value\n"))
	require.Contains(t, buf.String(), "degenerate,scalar,NA\n")

	out, err := features.ReadValues(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestReadValues_Malformed(t *testing.T) {
	cases := []string{
		"ic_0,tensor,1\n",
		"ic_0,scalar,abc\n",
		"ic_0,scalar,1,2\n",
		"ic_0\n",
		"m,mapping,novalue\n",
		"ic_0,scalar,1\nic_0,scalar,2\n",
	}
	for _, in := range cases {
		_, err := features.ReadValues(strings.NewReader(in))
		require.ErrorIs(t, err, features.ErrMalformedValues, in)
	}
}
