// SPDX-License-Identifier: MIT

// Package features is the registry of election-map features: named analyses
// that turn a profile (or a profile inside its experiment) into a number, a
// vector or a labelled mapping.
//
// Every feature is an entry of one static table, validated when the package
// is initialised. A feature uses one of two calling conventions:
//
//   - per-profile: func(*election.Profile, Params) (float64, error)
//   - global:      func(*experiment.Experiment, profileID string, Params) (Value, error)
//
// Global features read the experiment's distances and coordinates; features
// of scope WholeExperiment (the clusterings) ignore the profile id and label
// every profile at once.
//
// Usage:
//
//	f, err := features.Lookup(features.GreedyApproxPAVScore)
//	v, err := f.Compute(exp, "ic_0", features.DefaultParams())
//	all, err := features.ComputeAll(exp, features.JustifiedRatio, params)
//	err = features.WriteValues(os.Stdout, all)
//
// Unknown identifiers are reported with ErrUnknownFeature, never defaulted.
// Errors of the underlying packages are wrapped with the feature id and the
// profile id. Degenerate embedding input (zero distances) yields a Value
// marked Undefined instead of an error, so one bad profile does not abort a
// whole run.
//
// Exponential computations (highest_*_score, pav_time,
// number_of_cohesive_groups_brute) are bounded by Params.Limits and fail
// with the ErrIntractable sentinel of the committee or cohesive package.
//
// The registry logs one debug line per computation through zerolog; the
// algorithm packages themselves never log.
package features
