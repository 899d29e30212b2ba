// SPDX-License-Identifier: MIT

package features

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/elecmap/cohesive"
	"github.com/katalvlaran/elecmap/committee"
	"github.com/katalvlaran/elecmap/embedding"
	"github.com/katalvlaran/elecmap/experiment"
)

// undefinedOnDegenerate turns embedding.ErrDegenerate into an Undefined
// value of kind k; other errors pass through.
func undefinedOnDegenerate(err error, k Kind, profileID string) (Value, error) {
	if !errors.Is(err, embedding.ErrDegenerate) {
		return Value{}, err
	}
	log.Debug().Err(err).Str("profile", profileID).Msg("degenerate input, value undefined")

	return UndefinedValue(k), nil
}

// proportionalityDegree scores the committee chosen by rule against the
// profile's cohesive groups. AV committees always come from the greedy
// search, which is exact for AV; PAV and CC use Params.Algorithm.
func proportionalityDegree(rule committee.Rule) GlobalFunc {
	return func(exp *experiment.Experiment, profileID string, params Params) (Value, error) {
		p, err := exp.Profile(profileID)
		if err != nil {
			return Value{}, err
		}
		algo := params.Algorithm
		if rule == av {
			algo = greedy
		}
		res, err := committee.Solve(p, rule, params.committeeOptions(algo))
		if err != nil {
			return Value{}, err
		}
		deg, err := cohesive.ProportionalityDegree(p, res.Committee, params.CommitteeSize, params.cohesiveOptions())
		if err != nil {
			return Value{}, err
		}
		if deg == nil {
			deg = []float64{}
		}

		return VectorValue(deg), nil
	}
}

func monotonicity1(exp *experiment.Experiment, profileID string, _ Params) (Value, error) {
	rep, err := embedding.MonotonicityPairwise(exp, profileID)
	if err != nil {
		return undefinedOnDegenerate(err, Scalar, profileID)
	}
	if rep.Skipped > 0 {
		log.Debug().Str("profile", profileID).Int("skipped", rep.Skipped).Int("pairs", rep.Pairs).
			Msg("skipped pairs with zero distance")
	}

	return ScalarValue(rep.Value), nil
}

func monotonicityTriplets(exp *experiment.Experiment, profileID string, params Params) (Value, error) {
	rep, err := embedding.MonotonicityTriplets(exp, profileID, params.Epsilon)
	if err != nil {
		return undefinedOnDegenerate(err, Scalar, profileID)
	}

	return ScalarValue(rep.Value), nil
}

func guardianDistortion(exp *experiment.Experiment, profileID string, params Params) (embedding.Distortion, error) {
	d, err := embedding.GuardianDistortion(exp, profileID, params.Guardians)
	if err == nil && len(d.Flagged) > 0 {
		log.Debug().Str("profile", profileID).Strs("flagged", d.Flagged).
			Msg("skipped guardians at zero embedded distance")
	}

	return d, err
}

func avgDistortion(exp *experiment.Experiment, profileID string, params Params) (Value, error) {
	d, err := guardianDistortion(exp, profileID, params)
	if err != nil {
		return undefinedOnDegenerate(err, Scalar, profileID)
	}

	return ScalarValue(d.Mean), nil
}

func worstDistortion(exp *experiment.Experiment, profileID string, params Params) (Value, error) {
	d, err := guardianDistortion(exp, profileID, params)
	if err != nil {
		return undefinedOnDegenerate(err, Scalar, profileID)
	}

	return ScalarValue(d.Max), nil
}

func labelsValue(labels map[string]int) Value {
	m := make(map[string]float64, len(labels))
	for id, l := range labels {
		m[id] = float64(l)
	}

	return MappingValue(m)
}

func clustering(exp *experiment.Experiment, _ string, params Params) (Value, error) {
	labels, err := embedding.HierarchicalClusters(exp, params.NumClusters, params.Exclude)
	if err != nil {
		return Value{}, err
	}

	return labelsValue(labels), nil
}

// clusteringKMeans caps the cluster count at the number of profiles.
func clusteringKMeans(exp *experiment.Experiment, _ string, params Params) (Value, error) {
	labels, err := embedding.KMeansClusters(exp, min(params.NumClusters, len(exp.IDs)), params.Seed)
	if err != nil {
		return Value{}, err
	}

	return labelsValue(labels), nil
}
