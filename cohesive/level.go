// SPDX-License-Identifier: MIT

package cohesive

import (
	"github.com/katalvlaran/elecmap/election"
)

// LargestLevel returns the largest l ≤ min(k, m) for which an l-cohesive
// group exists, or 0 if none does.
//
// Existence is monotone in l (dropping a candidate from T can only enlarge
// supp(T) while the threshold shrinks), so levels are tried upwards and the
// search stops at the first failure.
//
// Exact enumerates l-subsets for each level and returns ErrIntractable once
// C(m,l) exceeds opts.MaxSubsets. Greedy starts one chain per seed candidate,
// repeatedly adds the candidate keeping the most common supporters (ties to
// the lowest index) and reports the deepest level any chain reaches; it is a
// lower bound on the exact level.
//
// Complexity: Exact O(Σ_l C(m,l)·l·n); Greedy O(m²·min(k,m)·n).
func LargestLevel(p *election.Profile, k int, opts Options) (int, error) {
	rev, opts, err := prepare(p, k, opts)
	if err != nil {
		return 0, err
	}
	top := min(k, p.NumCandidates)

	if opts.Mode == Greedy {
		return greedyLevel(rev, p.NumVoters, k, top), nil
	}

	level := 0
	for l := 1; l <= top; l++ {
		found := false
		err = largeGroups(rev, p.NumVoters, k, l, opts.MaxSubsets, func([]int, election.VoterSet) bool {
			found = true
			return false
		})
		if err != nil {
			return 0, err
		}
		if !found {
			break
		}
		level = l
	}

	return level, nil
}

// greedyLevel grows a candidate chain from every seed and returns the
// deepest level l at which the chain's supporters still reach l·n/k.
func greedyLevel(rev []election.VoterSet, n, k, top int) int {
	m := len(rev)
	best := 0
	inT := make([]bool, m)

	for seed := 0; seed < m; seed++ {
		clear(inT)
		inT[seed] = true
		supp := rev[seed]

		for l := 1; l <= top && large(len(supp), l, n, k); l++ {
			best = max(best, l)
			if l == top {
				break
			}

			next, nextSupp := -1, election.VoterSet(nil)
			for c := 0; c < m; c++ {
				if inT[c] {
					continue
				}
				s := supp.Intersect(rev[c])
				if next < 0 || len(s) > len(nextSupp) {
					next, nextSupp = c, s
				}
			}
			inT[next] = true
			supp = nextSupp
		}
	}

	return best
}
