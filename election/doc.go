// SPDX-License-Identifier: MIT

// Package election models a single voting profile ("election") and the
// derived views that feature computations read from it.
//
// Two ballot kinds are supported:
//
//   - Ordinal: every vote is a permutation of the candidate indices
//     0..NumCandidates-1, most preferred first.
//   - Approval: every vote is a set of approved candidate indices,
//     possibly empty.
//
// Derived views are computed on first use and memoized on the profile:
//
//	PositionwiseMatrix — M[i][j] = fraction of votes ranking i at position j
//	ApprovalwiseVector — a[i]    = fraction of voters approving i
//	ReverseApprovals   — R[i]    = set of voters approving i
//	PairwiseMatrix     — P[a][b] = number of voters ranking a above b
//
// Vote consistency is checked when the first derived view is built; a
// malformed profile yields ErrMalformedProfile and nothing is cached.
//
// Profiles are produced by an external generator; this package never
// generates votes.
package election
