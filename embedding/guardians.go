// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/elecmap/experiment"
)

// Guardians names the four reference profiles of a map. Identity and
// Uniformity also fix the embedded normaliser.
type Guardians struct {
	Identity       string
	Uniformity     string
	Antagonism     string
	Stratification string
}

// DefaultGuardians returns the ids used by the standard 10-candidate,
// 100-voter maps.
func DefaultGuardians() Guardians {
	return Guardians{
		Identity:       "identity_10_100_0",
		Uniformity:     "uniformity_10_100_0",
		Antagonism:     "antagonism_10_100_0",
		Stratification: "stratification_10_100_0",
	}
}

func (g Guardians) ids() []string {
	return []string{g.Identity, g.Uniformity, g.Antagonism, g.Stratification}
}

// Distortion holds the per-guardian ratios of GuardianDistortion.
type Distortion struct {
	Anchors []string  // guardians that produced a ratio
	Ratios  []float64 // Ratios[i] belongs to Anchors[i]
	Mean    float64
	Max     float64
	Flagged []string // guardians skipped because the embedded distance is 0
}

// MapDiameter returns (m+1)(m−1)/3, the positionwise diameter of the map of
// m-candidate elections.
func MapDiameter(m int) float64 {
	return float64((m+1)*(m-1)) / 3
}

// GuardianDistortion compares the true and embedded distances from id to
// each guardian present in the experiment (id itself excluded):
//
//	ratio = (d(id,g) / MapDiameter(m)) / (emb(id,g) / emb(identity,uniformity))
//
// A guardian at embedded distance 0 is flagged and skipped.
//
// Errors: ErrDegenerate when the normaliser or the diameter is zero or no
// guardian yields a ratio; experiment errors otherwise.
func GuardianDistortion(exp *experiment.Experiment, id string, g Guardians) (Distortion, error) {
	m, err := exp.NumCandidates(id)
	if err != nil {
		return Distortion{}, err
	}
	diam := MapDiameter(m)
	if diam == 0 {
		return Distortion{}, fmt.Errorf("%w: map diameter is 0 for m=%d", ErrDegenerate, m)
	}
	norm, err := embedded(exp, g.Identity, g.Uniformity)
	if err != nil {
		return Distortion{}, err
	}
	if norm == 0 {
		return Distortion{}, fmt.Errorf("%w: %q and %q coincide in the embedding",
			ErrDegenerate, g.Identity, g.Uniformity)
	}

	var out Distortion
	for _, anchor := range g.ids() {
		if anchor == id {
			continue
		}
		if _, ok := exp.Profiles[anchor]; !ok {
			continue
		}
		d, err := exp.Distance(id, anchor)
		if err != nil {
			return Distortion{}, err
		}
		emb, err := embedded(exp, id, anchor)
		if err != nil {
			return Distortion{}, err
		}
		if emb == 0 {
			out.Flagged = append(out.Flagged, anchor)
			continue
		}
		out.Anchors = append(out.Anchors, anchor)
		out.Ratios = append(out.Ratios, (d/diam)/(emb/norm))
	}
	if len(out.Ratios) == 0 {
		return out, fmt.Errorf("%w: no guardian ratio for %q (%d flagged)", ErrDegenerate, id, len(out.Flagged))
	}
	out.Mean = stat.Mean(out.Ratios, nil)
	out.Max = floats.Max(out.Ratios)

	return out, nil
}
