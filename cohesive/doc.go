// SPDX-License-Identifier: MIT

// Package cohesive detects l-cohesive voter groups in approval profiles and
// measures how well a committee represents them.
//
// A group V of voters is l-cohesive for committee size k when
//
//	|V| ≥ l·n/k   and   |∩_{v∈V} A_v| ≥ l,
//
// i.e. the group is large enough to deserve l seats and agrees on at least l
// candidates. Every such group lies inside supp(T) = ∩_{c∈T} R_c for some
// l-subset T of candidates, where R_c is the set of voters approving c (the
// profile's reverse approvals). The package therefore works on l-subsets of
// candidates rather than on voter subsets.
//
// What is provided:
//
//   - JustifiedRatio(p, k, l, opts): share of voters covered by some
//     l-tuple whose common supporters reach l·n/k. For l = 1 this is the
//     classical 1-cohesive coverage; for l > 1 it is an approximation (the
//     union of l-tuple supporter sets) and is reported as experimental.
//   - LargestLevel(p, k, opts): the largest l with an l-cohesive group.
//     Mode Exact enumerates l-subsets; Mode Greedy grows each l-set from a
//     seed candidate and yields a lower bound in polynomial time.
//   - CountGroups(p, k, l, opts): number of inclusion-maximal l-cohesive
//     groups, by l-subset enumeration.
//   - CountGroupsBrute(p, k, l, opts): the same count by enumerating every
//     candidate subset; refused above Options.MaxBruteCandidates.
//   - ProportionalityDegree(p, W, k, opts): for l = 1..L, the worst average
//     satisfaction of the ⌈l·n/k⌉ least satisfied members of an l-cohesive
//     group under committee W.
//
// Size thresholds compare integers (|V|·k ≥ l·n), so no rounding is involved.
//
// Exponential paths are opt-in and bounded: subset enumerations are refused
// with ErrIntractable once C(m,l) exceeds Options.MaxSubsets, and the brute
// force once m exceeds Options.MaxBruteCandidates (default 20, i.e. about a
// million subsets).
//
// All functions require approval ballots and return election.ErrBallotMismatch
// otherwise.
package cohesive
