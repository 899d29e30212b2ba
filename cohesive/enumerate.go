// SPDX-License-Identifier: MIT

package cohesive

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/elecmap/election"
)

// large reports whether a group of size voters deserves l of k seats among
// n voters: size ≥ l·n/k.
func large(size, l, n, k int) bool {
	return size*k >= l*n
}

// supporters returns ∩_{c∈T} rev[c]; T must be non-empty.
func supporters(rev []election.VoterSet, T []int) election.VoterSet {
	s := rev[T[0]]
	for _, c := range T[1:] {
		if len(s) == 0 {
			break
		}
		s = s.Intersect(rev[c])
	}

	return s
}

// guardSubsets refuses enumerating C(m,l) subsets above limit.
func guardSubsets(m, l, limit int) error {
	if combin.LogGeneralizedBinomial(float64(m), float64(l)) > math.Log(float64(limit)) {
		return fmt.Errorf("%w: C(%d,%d) subsets exceed limit %d", ErrIntractable, m, l, limit)
	}

	return nil
}

// largeGroups calls fn with supp(T) for every l-subset T (lexicographic
// order) whose supporters reach the l·n/k threshold, until fn returns false.
// The subset slice is reused between calls.
func largeGroups(rev []election.VoterSet, n, k, l, limit int, fn func(T []int, supp election.VoterSet) bool) error {
	m := len(rev)
	if err := guardSubsets(m, l, limit); err != nil {
		return err
	}

	gen := combin.NewCombinationGenerator(m, l)
	T := make([]int, l)
	for gen.Next() {
		gen.Combination(T)
		if supp := supporters(rev, T); large(len(supp), l, n, k) && !fn(T, supp) {
			return nil
		}
	}

	return nil
}

// key encodes a voter set for deduplication.
func key(s election.VoterSet) string {
	b := make([]byte, 0, 4*len(s))
	for _, v := range s {
		b = strconv.AppendInt(b, int64(v), 36)
		b = append(b, ',')
	}

	return string(b)
}

// maximal returns the distinct inclusion-maximal sets of groups.
func maximal(groups []election.VoterSet) []election.VoterSet {
	seen := make(map[string]struct{}, len(groups))
	distinct := groups[:0]
	for _, g := range groups {
		kg := key(g)
		if _, dup := seen[kg]; dup {
			continue
		}
		seen[kg] = struct{}{}
		distinct = append(distinct, g)
	}
	groups = distinct

	slices.SortStableFunc(groups, func(a, b election.VoterSet) int {
		return len(b) - len(a)
	})

	var kept []election.VoterSet
	for _, g := range groups {
		dominated := false
		for _, h := range kept {
			if g.SubsetOf(h) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, g)
		}
	}

	return kept
}
