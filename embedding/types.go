// SPDX-License-Identifier: MIT

package embedding

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/elecmap/experiment"
)

var (
	// ErrDegenerate is returned when zero distances leave nothing to measure.
	ErrDegenerate = errors.New("embedding: degenerate input")

	// ErrDimensionMismatch is returned when two coordinates differ in length.
	ErrDimensionMismatch = errors.New("embedding: coordinate dimensions differ")

	// ErrBadClusterCount is returned when k is outside [1, number of points].
	ErrBadClusterCount = errors.New("embedding: cluster count out of range")

	// ErrBadEpsilon is returned for a negative or NaN triplet tolerance.
	ErrBadEpsilon = errors.New("embedding: epsilon must be non-negative")
)

// DefaultTripletEpsilon is the tolerance used by monotonicity_triplets.
const DefaultTripletEpsilon = 0.1

// Report is the outcome of a monotonicity check.
type Report struct {
	Value   float64
	Pairs   int // pairs that contributed to Value
	Skipped int // pairs skipped because of a zero distance
}

// embedded returns the Euclidean distance between the points of a and b.
func embedded(exp *experiment.Experiment, a, b string) (float64, error) {
	ca, err := exp.Coordinate(a)
	if err != nil {
		return 0, err
	}
	cb, err := exp.Coordinate(b)
	if err != nil {
		return 0, err
	}
	if len(ca) != len(cb) {
		return 0, fmt.Errorf("%w: %q has %d, %q has %d", ErrDimensionMismatch, a, len(ca), b, len(cb))
	}

	return floats.Distance(ca, cb, 2), nil
}

// others returns the experiment ids except e0, in experiment order.
func others(exp *experiment.Experiment, e0 string) []string {
	out := make([]string, 0, len(exp.IDs))
	for _, id := range exp.IDs {
		if id != e0 {
			out = append(out, id)
		}
	}

	return out
}

// distancesFrom returns the true and embedded distances from e0 to ids.
func distancesFrom(exp *experiment.Experiment, e0 string, ids []string) (trueD, embD []float64, err error) {
	trueD = make([]float64, len(ids))
	embD = make([]float64, len(ids))
	for i, id := range ids {
		if trueD[i], err = exp.Distance(e0, id); err != nil {
			return nil, nil, err
		}
		if embD[i], err = embedded(exp, e0, id); err != nil {
			return nil, nil, err
		}
	}

	return trueD, embD, nil
}
