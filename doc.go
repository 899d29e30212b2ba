// SPDX-License-Identifier: MIT

// Package elecmap computes features of elections placed on a "map of
// elections": scoring-rule outcomes, committee scores under NP-hard
// multiwinner rules, cohesive voter groups, and the quality of the map's
// low-dimensional embedding.
//
// What is elecmap?
//
//	An in-memory feature engine over voting profiles and the experiment
//	that holds them:
//		• Profiles: ordinal rankings or approval sets, with cached
//		  positionwise, pairwise and reverse-approval views
//		• Single-winner scores: Borda, plurality, Copeland, Dodgson bound
//		• Committee rules: AV, CC, HB, PAV scored exactly or by greedy,
//		  removal and random-sampling approximations
//		• Cohesiveness: justified ratio, largest cohesive level, maximal
//		  cohesive groups, proportionality degree
//		• Embedding diagnostics: monotonicity, guardian distortion,
//		  hierarchical and k-means clustering
//
// Layout:
//
//	election/   — Profile, ballots, validated derived views
//	experiment/ — profiles + distances + coordinates, YAML decoding
//	scoring/    — single-winner statistics
//	committee/  — committee scores and searches (exhaustive, greedy, removal, random)
//	cohesive/   — l-cohesive groups and proportionality
//	embedding/  — distance/embedding consistency and clustering
//	features/   — the feature registry, Params, Value, CSV value files
//	cmd/elecmap — command-line front end
//
// Exponential computations are opt-in and bounded: they return an
// ErrIntractable sentinel above configurable limits instead of running
// unbounded. Randomised searches take an explicit seed.
//
// Quick example:
//
//	exp, _ := experiment.LoadFile("map.yaml")
//	values, _ := features.ComputeAll(exp, features.GreedyApproxPAVScore, features.DefaultParams())
//	_ = features.WriteValues(os.Stdout, values)
package elecmap
