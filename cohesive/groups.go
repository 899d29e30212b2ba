// SPDX-License-Identifier: MIT

package cohesive

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/elecmap/election"
)

// CountGroups returns the number of maximal l-cohesive groups: the distinct
// inclusion-maximal sets supp(T) over l-subsets T of candidates with
// |supp(T)| ≥ l·n/k.
//
// Errors: ErrIntractable when C(m,l) > opts.MaxSubsets, ErrBadLevel,
// ErrBadCommitteeSize, and profile errors.
//
// Complexity: O(C(m,l)·l·n + G²·n) for G qualifying groups.
func CountGroups(p *election.Profile, k, l int, opts Options) (int, error) {
	rev, opts, err := prepare(p, k, opts)
	if err != nil {
		return 0, err
	}
	if err = checkLevel(l, p.NumCandidates); err != nil {
		return 0, err
	}

	var groups []election.VoterSet
	err = largeGroups(rev, p.NumVoters, k, l, opts.MaxSubsets, func(_ []int, supp election.VoterSet) bool {
		groups = append(groups, supp)
		return true
	})
	if err != nil {
		return 0, err
	}

	return len(maximal(groups)), nil
}

// CountGroupsBrute computes the same count as CountGroups by intersecting
// the supporters of every candidate subset of size ≥ l. It enumerates 2^m
// subsets and is refused with ErrIntractable when m > opts.MaxBruteCandidates.
//
// Complexity: O(2^m·m·n).
func CountGroupsBrute(p *election.Profile, k, l int, opts Options) (int, error) {
	rev, opts, err := prepare(p, k, opts)
	if err != nil {
		return 0, err
	}
	m, n := p.NumCandidates, p.NumVoters
	if err = checkLevel(l, m); err != nil {
		return 0, err
	}
	if m > opts.MaxBruteCandidates {
		return 0, fmt.Errorf("%w: %d candidates exceed brute-force limit %d",
			ErrIntractable, m, opts.MaxBruteCandidates)
	}

	var (
		groups []election.VoterSet
		T      = make([]int, 0, m)
	)
	for mask := uint64(1); mask < 1<<m; mask++ {
		if bits.OnesCount64(mask) < l {
			continue
		}
		T = T[:0]
		for c := 0; c < m; c++ {
			if mask&(1<<c) != 0 {
				T = append(T, c)
			}
		}
		if supp := supporters(rev, T); large(len(supp), l, n, k) {
			groups = append(groups, supp)
		}
	}

	return len(maximal(groups)), nil
}
