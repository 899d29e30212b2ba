// SPDX-License-Identifier: MIT

// Package embedding checks how faithfully a low-dimensional embedding of an
// experiment (its Coordinates) reproduces the true pairwise distances, and
// clusters the experiment's profiles.
//
// Diagnostics:
//
//   - MonotonicityPairwise(exp, e0): Σ over unordered pairs {e1,e2} of
//     max(r_t/r_e, r_e/r_t), where r_t = d(e0,e1)/d(e0,e2) and r_e is the
//     same ratio of embedded (Euclidean) distances. A perfect embedding
//     scores exactly the number of pairs.
//   - MonotonicityTriplets(exp, e0, eps): share of pairs whose order by true
//     distance is reversed in the embedding by more than a (1+eps) factor.
//   - GuardianDistortion(exp, id, g): ratios of the normalised true distance
//     (divided by the map diameter (m+1)(m−1)/3) to the normalised embedded
//     distance (divided by the identity–uniformity distance) from id to each
//     guardian profile.
//
// Degenerate input: a zero true or embedded distance in a denominator is
// never turned into NaN or Inf. The pair (or guardian) is skipped and counted
// in Report.Skipped (Distortion.Flagged); when nothing remains the function
// returns ErrDegenerate.
//
// Clustering:
//
//   - HierarchicalClusters: complete linkage over the true distance matrix,
//     merged down to k clusters; labels 1..k by first appearance in
//     experiment order, excluded ids labelled 0.
//   - KMeansClusters: Lloyd's algorithm over the coordinates with seeded
//     k-means++ initialisation; labels 0..k−1 by first appearance.
package embedding
