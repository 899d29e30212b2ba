// SPDX-License-Identifier: MIT

package cohesive

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/elecmap/election"
)

// ProportionalityDegree measures how committee W serves cohesive groups.
// Entry l−1 of the result is, over all l-cohesive groups supp(T), the
// minimum of the average number of committee members approved by the
// group's ⌈l·n/k⌉ least satisfied voters. The vector stops at the largest
// level L with an l-cohesive group and is empty when L = 0.
//
// W may hold at most k members. Groups are always enumerated exactly;
// opts.Mode is ignored and opts.MaxSubsets bounds every level.
//
// Complexity: O(Σ_{l≤L} C(m,l)·(l·n + n log n)).
func ProportionalityDegree(p *election.Profile, W []int, k int, opts Options) ([]float64, error) {
	rev, opts, err := prepare(p, k, opts)
	if err != nil {
		return nil, err
	}
	m, n := p.NumCandidates, p.NumVoters
	if len(W) > k {
		return nil, fmt.Errorf("%w: %d members for committee size %d", ErrBadCommittee, len(W), k)
	}

	inW := make([]bool, m)
	for _, c := range W {
		if c < 0 || c >= m || inW[c] {
			return nil, fmt.Errorf("%w: member %d", ErrBadCommittee, c)
		}
		inW[c] = true
	}
	sat := make([]float64, n)
	for v, vote := range p.Votes {
		for _, c := range vote {
			if inW[c] {
				sat[v]++
			}
		}
	}

	var (
		degree []float64
		buf    = make([]float64, 0, n)
	)
	for l := 1; l <= min(k, m); l++ {
		q := (l*n + k - 1) / k
		worst := math.Inf(1)
		err = largeGroups(rev, n, k, l, opts.MaxSubsets, func(_ []int, supp election.VoterSet) bool {
			buf = buf[:0]
			for _, v := range supp {
				buf = append(buf, sat[v])
			}
			slices.Sort(buf)
			var s float64
			for _, x := range buf[:q] {
				s += x
			}
			worst = min(worst, s/float64(q))
			return true
		})
		if err != nil {
			return nil, err
		}
		if math.IsInf(worst, 1) {
			break
		}
		degree = append(degree, worst)
	}

	return degree, nil
}
