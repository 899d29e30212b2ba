// SPDX-License-Identifier: MIT

// Package committee scores fixed-size committees and searches for committees
// of maximal score under committee scoring rules.
//
// Rules are ordered-weighted-average (OWA) committee scoring rules. Every
// voter v assigns a utility u_v(c) to each candidate and rates a committee W
// by sorting the utilities of its members in decreasing order and weighting
// the i-th best one by w_i:
//
//	Rule  weights w             utilities (ordinal)        utilities (approval)
//	AV    (1, 1, 1, …)          top ApprovalDepth → 1      approved → 1
//	CC    (1, 0, 0, …)          Borda: m−1−position        approved → 1
//	HB    (1, 1/2, 1/3, …)      Borda: m−1−position        approved → 1
//	PAV   (1, 1/2, 1/3, …)      top ApprovalDepth → 1      approved → 1
//
// so that CC = Σ_v (m−1−best position in W), HB = Σ_v Σ_i borda_i/i and
// PAV = Σ_v H(|A_v ∩ W|) with H the harmonic number.
//
// Algorithms (Options.Algo):
//
//   - Exhaustive — enumerates all C(m,k) committees. Exact, exponential.
//     Requests with C(m,k) > Options.MaxCommittees fail with ErrIntractable
//     instead of running.
//   - Greedy — k rounds, each adding the candidate with the largest exact
//     marginal gain (ties: lowest index). The rules are monotone submodular,
//     so the result is at least (1−1/e) of the optimum. O(k·m·n·k log k).
//   - Removal — starts from all candidates and drops the one whose removal
//     leaves the highest score until k remain. A complementary heuristic with
//     no worst-case guarantee. O(m²·n·m log m).
//   - RandomSample — best of Options.Samples uniformly drawn committees from a
//     seeded stream. A Monte-Carlo lower bound on the optimum, not a
//     multiplicative approximation.
//
// Every algorithm returns the committee it realises together with its score
// and the Guarantee that applies to it.
package committee
