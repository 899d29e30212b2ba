// SPDX-License-Identifier: MIT

package features

import (
	"github.com/katalvlaran/elecmap/cohesive"
	"github.com/katalvlaran/elecmap/committee"
	"github.com/katalvlaran/elecmap/embedding"
)

// Limits bounds the exponential computations.
type Limits struct {
	MaxCommittees      int // C(m,k) cap for exhaustive committee search
	MaxSubsets         int // C(m,l) cap for cohesive l-subset enumeration
	MaxBruteCandidates int // m cap for number_of_cohesive_groups_brute
}

// Params configures feature computations. Each feature reads only the
// fields it needs.
type Params struct {
	CommitteeSize int                 // k; default 10
	Level         int                 // l for cohesive features; default 1
	Samples       int                 // rand_approx_pav_score draws; default 1000
	Seed          int64               // randomised features; 0 means a fixed default
	ApprovalDepth int                 // approved top positions on ordinal ballots; 0 means k
	NumClusters   int                 // clustering features; default 12
	Algorithm     committee.Algorithm // how winning committees are found; default Greedy
	CohesiveMode  cohesive.Mode       // cohesiveness: Exact or Greedy; default Exact
	Epsilon       float64             // monotonicity_triplets tolerance; default 0.1
	Guardians     embedding.Guardians // distortion reference profiles
	Exclude       []string            // id substrings left out of clustering
	Limits        Limits
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		CommitteeSize: 10,
		Level:         1,
		Samples:       committee.DefaultSamples,
		NumClusters:   embedding.DefaultNumClusters,
		Algorithm:     committee.Greedy,
		CohesiveMode:  cohesive.Exact,
		Epsilon:       embedding.DefaultTripletEpsilon,
		Guardians:     embedding.DefaultGuardians(),
		Exclude:       embedding.DefaultExclude,
		Limits: Limits{
			MaxCommittees:      committee.DefaultMaxCommittees,
			MaxSubsets:         cohesive.DefaultMaxSubsets,
			MaxBruteCandidates: cohesive.DefaultMaxBruteCandidates,
		},
	}
}

// committeeOptions maps Params onto committee.Options for algo.
func (p Params) committeeOptions(algo committee.Algorithm) committee.Options {
	return committee.Options{
		Algo:          algo,
		CommitteeSize: p.CommitteeSize,
		ApprovalDepth: p.ApprovalDepth,
		Samples:       p.Samples,
		Seed:          p.Seed,
		MaxCommittees: p.Limits.MaxCommittees,
	}
}

// cohesiveOptions maps Params onto cohesive.Options.
func (p Params) cohesiveOptions() cohesive.Options {
	return cohesive.Options{
		Mode:               p.CohesiveMode,
		MaxSubsets:         p.Limits.MaxSubsets,
		MaxBruteCandidates: p.Limits.MaxBruteCandidates,
	}
}
