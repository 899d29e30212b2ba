// SPDX-License-Identifier: MIT

// Package scoring computes single-winner scoring-rule statistics of a
// profile.
//
//   - Borda: per-candidate Borda scores from the positionwise matrix, their
//     population standard deviation, and the highest raw Borda score.
//   - Plurality: highest number of first places.
//   - Copeland: pairwise wins minus pairwise losses.
//   - Dodgson: a LOWER BOUND on the Dodgson score. Computing the exact
//     Dodgson score is NP-hard; this package never claims to return it.
//   - Approval statistics: highest approval score and the "abstract"
//     log-binomial spread of approvalwise vectors.
//
// All functions are pure apart from the memoized derived views of the
// profile; none of them log or panic on user input.
package scoring
