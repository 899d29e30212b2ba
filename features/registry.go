// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/elecmap/election"
	"github.com/katalvlaran/elecmap/experiment"
	"github.com/katalvlaran/elecmap/scoring"
)

var (
	// ErrUnknownFeature is returned by Lookup for an unregistered id.
	ErrUnknownFeature = errors.New("features: unknown feature")

	// ErrScope is returned when a feature is invoked through the wrong
	// calling convention.
	ErrScope = errors.New("features: wrong calling convention")

	// ErrMalformedValues is returned by ReadValues for unparsable input.
	ErrMalformedValues = errors.New("features: malformed value file")
)

// ID names a feature.
type ID string

// Registered feature identifiers.
const (
	BordaStd                        ID = "borda_std"
	HighestBordaScore               ID = "highest_borda_score"
	HighestPluralityScore           ID = "highest_plurality_score"
	HighestCopelandScore            ID = "highest_copeland_score"
	DodgsonLowerBound               ID = "dodgson_lower_bound"
	LowestDodgsonScore              ID = "lowest_dodgson_score"
	EffectiveNumCandidatesBorda     ID = "effective_num_candidates_borda"
	EffectiveNumCandidatesPlurality ID = "effective_num_candidates_plurality"
	MaxApprovalScore                ID = "max_approval_score"
	Abstract                        ID = "abstract"

	HighestCCScore        ID = "highest_cc_score"
	HighestHBScore        ID = "highest_hb_score"
	HighestPAVScore       ID = "highest_pav_score"
	GreedyApproxCCScore   ID = "greedy_approx_cc_score"
	GreedyApproxHBScore   ID = "greedy_approx_hb_score"
	GreedyApproxPAVScore  ID = "greedy_approx_pav_score"
	RemovalApproxCCScore  ID = "removal_approx_cc_score"
	RemovalApproxHBScore  ID = "removal_approx_hb_score"
	RemovalApproxPAVScore ID = "removal_approx_pav_score"
	RandApproxPAVScore    ID = "rand_approx_pav_score"
	PAVTime               ID = "pav_time"

	JustifiedRatio              ID = "justified_ratio"
	Cohesiveness                ID = "cohesiveness"
	NumberOfCohesiveGroups      ID = "number_of_cohesive_groups"
	NumberOfCohesiveGroupsBrute ID = "number_of_cohesive_groups_brute"
	ProportionalityDegreeAV     ID = "proportionality_degree_av"
	ProportionalityDegreePAV    ID = "proportionality_degree_pav"
	ProportionalityDegreeCC     ID = "proportionality_degree_cc"

	Monotonicity1                ID = "monotonicity_1"
	MonotonicityTriplets         ID = "monotonicity_triplets"
	AvgDistortionFromGuardians   ID = "avg_distortion_from_guardians"
	WorstDistortionFromGuardians ID = "worst_distortion_from_guardians"
	Clustering                   ID = "clustering"
	ClusteringKMeans             ID = "clustering_kmeans"
)

// Scope tells which calling convention a feature uses.
type Scope int

const (
	// PerProfile features need only the profile.
	PerProfile Scope = iota
	// Global features need the profile's experiment.
	Global
	// WholeExperiment features label every profile of the experiment at once.
	WholeExperiment
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case PerProfile:
		return "profile"
	case Global:
		return "global"
	case WholeExperiment:
		return "experiment"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ProfileFunc is the per-profile calling convention.
type ProfileFunc func(p *election.Profile, params Params) (float64, error)

// GlobalFunc is the global calling convention.
type GlobalFunc func(exp *experiment.Experiment, profileID string, params Params) (Value, error)

// Feature is one registry entry. Exactly one of the two functions is set,
// matching Scope.
type Feature struct {
	ID      ID
	Scope   Scope
	Kind    Kind
	Summary string
	// AliasOf names the feature this deprecated id computes, if any.
	AliasOf ID

	profile ProfileFunc
	global  GlobalFunc
}

// registry is the static feature table.
var registry = []Feature{
	{ID: BordaStd, Summary: "population std of Borda scores", profile: profileOnly(scoring.BordaStd)},
	{ID: HighestBordaScore, Summary: "largest Borda score", profile: profileOnly(scoring.HighestBorda)},
	{ID: HighestPluralityScore, Summary: "largest plurality score", profile: profileOnly(scoring.HighestPlurality)},
	{ID: HighestCopelandScore, Summary: "largest Copeland score", profile: profileOnly(scoring.HighestCopeland)},
	{ID: DodgsonLowerBound, Summary: "lower bound on the smallest Dodgson score", profile: profileOnly(scoring.DodgsonLowerBound)},
	{ID: LowestDodgsonScore, Summary: "deprecated name of dodgson_lower_bound", AliasOf: DodgsonLowerBound, profile: profileOnly(scoring.DodgsonLowerBound)},
	{ID: EffectiveNumCandidatesBorda, Summary: "1/Σs² over normalised Borda scores", profile: effectiveNumCandidates(scoring.BordaMode)},
	{ID: EffectiveNumCandidatesPlurality, Summary: "1/Σs² over plurality fractions", profile: effectiveNumCandidates(scoring.PluralityMode)},
	{ID: MaxApprovalScore, Summary: "largest approval score", profile: profileOnly(scoring.MaxApprovalScore)},
	{ID: Abstract, Summary: "Σ log C(n, approvals of c)", profile: profileOnly(scoring.Abstract)},

	{ID: HighestCCScore, Summary: "optimal CC committee score (exhaustive)", profile: committeeScore(cc, exhaustive)},
	{ID: HighestHBScore, Summary: "optimal HB committee score (exhaustive)", profile: committeeScore(hb, exhaustive)},
	{ID: HighestPAVScore, Summary: "optimal PAV committee score (exhaustive)", profile: committeeScore(pav, exhaustive)},
	{ID: GreedyApproxCCScore, Summary: "greedy CC committee score", profile: committeeScore(cc, greedy)},
	{ID: GreedyApproxHBScore, Summary: "greedy HB committee score", profile: committeeScore(hb, greedy)},
	{ID: GreedyApproxPAVScore, Summary: "greedy PAV committee score", profile: committeeScore(pav, greedy)},
	{ID: RemovalApproxCCScore, Summary: "removal-heuristic CC committee score", profile: committeeScore(cc, removal)},
	{ID: RemovalApproxHBScore, Summary: "removal-heuristic HB committee score", profile: committeeScore(hb, removal)},
	{ID: RemovalApproxPAVScore, Summary: "removal-heuristic PAV committee score", profile: committeeScore(pav, removal)},
	{ID: RandApproxPAVScore, Summary: "best PAV score of random committees", profile: committeeScore(pav, random)},
	{ID: PAVTime, Summary: "seconds spent on exhaustive PAV", profile: pavTime},

	{ID: JustifiedRatio, Summary: "share of voters in l-large l-cohesive groups", profile: justifiedRatio},
	{ID: Cohesiveness, Summary: "largest cohesiveness level", profile: cohesiveness},
	{ID: NumberOfCohesiveGroups, Summary: "maximal l-cohesive groups", profile: cohesiveGroups},
	{ID: NumberOfCohesiveGroupsBrute, Summary: "maximal l-cohesive groups (all subsets)", profile: cohesiveGroupsBrute},
	{ID: ProportionalityDegreeAV, Scope: Global, Kind: Vector, Summary: "proportionality degree of the AV committee", global: proportionalityDegree(av)},
	{ID: ProportionalityDegreePAV, Scope: Global, Kind: Vector, Summary: "proportionality degree of the PAV committee", global: proportionalityDegree(pav)},
	{ID: ProportionalityDegreeCC, Scope: Global, Kind: Vector, Summary: "proportionality degree of the CC committee", global: proportionalityDegree(cc)},

	{ID: Monotonicity1, Scope: Global, Summary: "pairwise distance-ratio distortion", global: monotonicity1},
	{ID: MonotonicityTriplets, Scope: Global, Summary: "share of order-reversed pairs", global: monotonicityTriplets},
	{ID: AvgDistortionFromGuardians, Scope: Global, Summary: "mean distortion towards guardians", global: avgDistortion},
	{ID: WorstDistortionFromGuardians, Scope: Global, Summary: "largest distortion towards guardians", global: worstDistortion},
	{ID: Clustering, Scope: WholeExperiment, Kind: Mapping, Summary: "complete-linkage cluster labels", global: clustering},
	{ID: ClusteringKMeans, Scope: WholeExperiment, Kind: Mapping, Summary: "k-means cluster labels", global: clusteringKMeans},
}

var byID map[ID]Feature

func init() {
	byID = make(map[ID]Feature, len(registry))
	for _, f := range registry {
		if _, dup := byID[f.ID]; dup {
			panic(fmt.Sprintf("features: duplicate registry entry %q", f.ID))
		}
		if (f.Scope == PerProfile) != (f.profile != nil) || (f.Scope != PerProfile) != (f.global != nil) {
			panic(fmt.Sprintf("features: entry %q does not match its scope %s", f.ID, f.Scope))
		}
		byID[f.ID] = f
	}
}

// Lookup returns the feature registered under id.
func Lookup(id ID) (Feature, error) {
	f, ok := byID[id]
	if !ok {
		return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, id)
	}

	return f, nil
}

// IDs returns every registered id in lexical order.
func IDs() []ID {
	ids := make([]ID, 0, len(registry))
	for _, f := range registry {
		ids = append(ids, f.ID)
	}
	slices.Sort(ids)

	return ids
}
