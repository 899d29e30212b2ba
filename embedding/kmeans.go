// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/elecmap/experiment"
)

// kmeansMaxIter bounds Lloyd iterations.
const kmeansMaxIter = 100

// KMeansClusters partitions all profiles of exp into k clusters by their
// coordinates: k-means++ seeding from a stream seeded by seed (0 means 1),
// then Lloyd iterations until no assignment changes or kmeansMaxIter is hit.
// An emptied cluster keeps its previous centre. Labels run 0..k−1 in order
// of first appearance in exp.IDs.
//
// Errors: ErrBadClusterCount unless 1 ≤ k ≤ N; ErrMissingCoordinate;
// ErrDimensionMismatch.
//
// Complexity: O(iter·N·k·dim).
func KMeansClusters(exp *experiment.Experiment, k int, seed int64) (map[string]int, error) {
	n := len(exp.IDs)
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d points", ErrBadClusterCount, k, n)
	}

	points := make([][]float64, n)
	for i, id := range exp.IDs {
		c, err := exp.Coordinate(id)
		if err != nil {
			return nil, err
		}
		if i > 0 && len(c) != len(points[0]) {
			return nil, fmt.Errorf("%w: %q has %d, %q has %d",
				ErrDimensionMismatch, id, len(c), exp.IDs[0], len(points[0]))
		}
		points[i] = c
	}

	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	centers := seedCenters(points, k, rng)

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}
	dim := len(points[0])
	counts := make([]int, k)
	for iter := 0; iter < kmeansMaxIter; iter++ {
		changed := false
		for i, x := range points {
			if c := nearest(x, centers); c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		clear(counts)
		for i, x := range points {
			floats.Add(sums[assign[i]], x)
			counts[assign[i]]++
		}
		for c := range centers {
			if counts[c] > 0 {
				floats.ScaleTo(centers[c], 1/float64(counts[c]), sums[c])
			}
		}
	}

	labels := make(map[string]int, n)
	relabel := make(map[int]int, k)
	for i, id := range exp.IDs {
		l, ok := relabel[assign[i]]
		if !ok {
			l = len(relabel)
			relabel[assign[i]] = l
		}
		labels[id] = l
	}

	return labels, nil
}

// seedCenters picks k initial centres by k-means++: the first uniformly,
// each next one with probability proportional to the squared distance to
// the nearest centre chosen so far. When every remaining point coincides
// with a centre the first unchosen point is taken.
func seedCenters(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	chosen := make([]bool, n)
	centers := make([][]float64, 0, k)

	first := rng.Intn(n)
	chosen[first] = true
	centers = append(centers, append([]float64(nil), points[first]...))

	d2 := make([]float64, n)
	for len(centers) < k {
		for i, x := range points {
			d := floats.Distance(x, centers[nearest(x, centers)], 2)
			d2[i] = d * d
		}
		total := floats.Sum(d2)

		pick := -1
		if total > 0 {
			r := rng.Float64() * total
			for i, w := range d2 {
				if w == 0 {
					continue
				}
				pick = i
				if r -= w; r < 0 {
					break
				}
			}
		} else {
			for i := range points {
				if !chosen[i] {
					pick = i
					break
				}
			}
		}
		chosen[pick] = true
		centers = append(centers, append([]float64(nil), points[pick]...))
	}

	return centers
}

// nearest returns the index of the closest centre (ties to the lowest).
func nearest(x []float64, centers [][]float64) int {
	best, bestD := 0, math.Inf(1)
	for c, ctr := range centers {
		if d := floats.Distance(x, ctr, 2); d < bestD {
			best, bestD = c, d
		}
	}

	return best
}
