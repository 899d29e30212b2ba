// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"
	"math"

	"github.com/katalvlaran/elecmap/experiment"
)

// MonotonicityPairwise sums the distortion max(r_t/r_e, r_e/r_t) over all
// unordered pairs of profiles other than e0. Pairs involving a zero true or
// embedded distance are skipped and counted in Report.Skipped.
//
// Errors: ErrDegenerate when no pair contributes; experiment errors for
// unknown ids, missing distances or coordinates; ErrDimensionMismatch.
//
// Complexity: O(N·dim + N²).
func MonotonicityPairwise(exp *experiment.Experiment, e0 string) (Report, error) {
	if _, err := exp.Coordinate(e0); err != nil {
		return Report{}, err
	}
	ids := others(exp, e0)
	trueD, embD, err := distancesFrom(exp, e0, ids)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if trueD[i] == 0 || trueD[j] == 0 || embD[i] == 0 || embD[j] == 0 {
				rep.Skipped++
				continue
			}
			rt := trueD[i] / trueD[j]
			re := embD[i] / embD[j]
			rep.Value += math.Max(rt, re) / math.Min(rt, re)
			rep.Pairs++
		}
	}
	if rep.Pairs == 0 {
		return rep, fmt.Errorf("%w: no usable pair around %q (%d skipped)", ErrDegenerate, e0, rep.Skipped)
	}

	return rep, nil
}

// MonotonicityTriplets returns the share of pairs {e1,e2} (both ≠ e0) for
// which d(e0,e1) < d(e0,e2) while the embedded distances satisfy
// emb(e0,e1) > (1+eps)·emb(e0,e2), or symmetrically. No division by a
// distance happens, so nothing is skipped.
//
// Errors: ErrDegenerate when fewer than two other profiles exist,
// ErrBadEpsilon, and experiment errors.
//
// Complexity: O(N·dim + N²).
func MonotonicityTriplets(exp *experiment.Experiment, e0 string, eps float64) (Report, error) {
	if !(eps >= 0) {
		return Report{}, fmt.Errorf("%w: %v", ErrBadEpsilon, eps)
	}
	if _, err := exp.Coordinate(e0); err != nil {
		return Report{}, err
	}
	ids := others(exp, e0)
	trueD, embD, err := distancesFrom(exp, e0, ids)
	if err != nil {
		return Report{}, err
	}

	var (
		rep        Report
		violations int
	)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if (trueD[i] < trueD[j] && embD[i] > embD[j]*(1+eps)) ||
				(trueD[j] < trueD[i] && embD[j] > embD[i]*(1+eps)) {
				violations++
			}
			rep.Pairs++
		}
	}
	if rep.Pairs == 0 {
		return rep, fmt.Errorf("%w: fewer than two profiles besides %q", ErrDegenerate, e0)
	}
	rep.Value = float64(violations) / float64(rep.Pairs)

	return rep, nil
}
