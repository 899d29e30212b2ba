// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/elecmap/experiment"
)

// DefaultNumClusters is the cluster count used by the clustering features.
const DefaultNumClusters = 12

// DefaultExclude lists the id substrings of path and reference profiles
// left out of hierarchical clustering.
var DefaultExclude = []string{
	"UNID", "ANID", "STID", "ANUN", "STUN", "STAN",
	"Mallows",
	"Urn",
	"Identity", "Uniformity", "Antagonism", "Stratification",
}

// excluded reports whether id contains any of the substrings.
func excluded(id string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(id, s) {
			return true
		}
	}

	return false
}

// HierarchicalClusters groups the profiles whose id contains none of the
// exclude substrings by complete-linkage agglomerative clustering over the
// true distances, merging the closest pair of clusters (ties to the lowest
// slot pair) until k clusters remain. Labels run 1..k in order of first
// appearance in exp.IDs; excluded ids get label 0. With fewer than k
// clustered ids each forms its own cluster.
//
// Errors: ErrBadClusterCount for k < 1; ErrMissingDistance.
//
// Complexity: O(N³) time, O(N²) memory.
func HierarchicalClusters(exp *experiment.Experiment, k int, exclude []string) (map[string]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadClusterCount, k)
	}

	labels := make(map[string]int, len(exp.IDs))
	var names []string
	for _, id := range exp.IDs {
		if excluded(id, exclude) {
			labels[id] = 0
			continue
		}
		names = append(names, id)
	}
	n := len(names)
	if n == 0 {
		return labels, nil
	}

	// dist holds cluster-to-cluster distances; slot i is cluster i while alive.
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := exp.Distance(names[i], names[j])
			if err != nil {
				return nil, err
			}
			dist.SetSym(i, j, d)
		}
	}

	owner := make([]int, n) // owner[p] = slot of the cluster holding point p
	alive := make([]bool, n)
	for i := range owner {
		owner[i] = i
		alive[i] = true
	}

	for clusters := n; clusters > k; clusters-- {
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if alive[j] && dist.At(i, j) < best {
					bi, bj, best = i, j, dist.At(i, j)
				}
			}
		}

		// Complete linkage: the merged cluster is as far as its farthest part.
		for x := 0; x < n; x++ {
			if alive[x] && x != bi && x != bj {
				dist.SetSym(bi, x, math.Max(dist.At(bi, x), dist.At(bj, x)))
			}
		}
		alive[bj] = false
		for p := range owner {
			if owner[p] == bj {
				owner[p] = bi
			}
		}
	}

	next := 1
	slotLabel := make(map[int]int, k)
	for p, id := range names {
		l, ok := slotLabel[owner[p]]
		if !ok {
			l = next
			slotLabel[owner[p]] = l
			next++
		}
		labels[id] = l
	}

	return labels, nil
}
