// SPDX-License-Identifier: MIT

package cohesive

import (
	"github.com/katalvlaran/elecmap/election"
)

// JustifiedRatio returns the fraction of voters that belong to the common
// supporters of some l-tuple of candidates whose supporter set reaches
// l·n/k voters.
//
// For l = 1 this is the share of voters in a 1-large, 1-cohesive group:
// voters approving at least one candidate approved by n/k voters or more.
// For l > 1 the union of l-tuple supporter sets is an approximation of
// l-cohesive coverage and should be treated as experimental.
//
// A smaller committee raises the threshold, so the ratio is non-decreasing
// in k.
//
// Complexity: O(C(m,l)·l·n); l = 1 is O(m·n).
func JustifiedRatio(p *election.Profile, k, l int, opts Options) (float64, error) {
	rev, opts, err := prepare(p, k, opts)
	if err != nil {
		return 0, err
	}
	if err = checkLevel(l, p.NumCandidates); err != nil {
		return 0, err
	}

	n := p.NumVoters
	covered := make([]bool, n)
	count := 0
	err = largeGroups(rev, n, k, l, opts.MaxSubsets, func(_ []int, supp election.VoterSet) bool {
		for _, v := range supp {
			if !covered[v] {
				covered[v] = true
				count++
			}
		}
		return count < n
	})
	if err != nil {
		return 0, err
	}

	return float64(count) / float64(n), nil
}
