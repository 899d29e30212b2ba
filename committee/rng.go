// SPDX-License-Identifier: MIT

// RNG utilities for RandomSample.
//
// Determinism: the same seed yields the same sequence of committees on every
// platform, and the i-th committee does not depend on how many are drawn in
// total. math/rand.Rand is not goroutine-safe; every search owns its stream.

package committee

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// committeeSampler draws uniform size-k subsets of 0..m-1.
type committeeSampler struct {
	rng  *rand.Rand
	perm []int
	k    int
}

func newCommitteeSampler(m, k int, seed int64) *committeeSampler {
	return &committeeSampler{rng: rngFromSeed(seed), perm: make([]int, m), k: k}
}

// next returns a uniformly random committee (partial Fisher–Yates on a fresh
// identity permutation). The returned slice is reused by the next call.
//
// Complexity: O(m).
func (s *committeeSampler) next() []int {
	for i := range s.perm {
		s.perm[i] = i
	}
	n := len(s.perm)
	for i := 0; i < s.k; i++ {
		j := i + s.rng.Intn(n-i)
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}

	return s.perm[:s.k]
}
