// SPDX-License-Identifier: MIT

package features

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/elecmap/election"
	"github.com/katalvlaran/elecmap/experiment"
)

// Compute evaluates f for profileID within exp. Per-profile features
// resolve the profile from the experiment; whole-experiment features
// ignore profileID. Errors are wrapped with the feature and profile ids.
func (f Feature) Compute(exp *experiment.Experiment, profileID string, params Params) (Value, error) {
	start := time.Now()

	var (
		v   Value
		err error
	)
	switch f.Scope {
	case PerProfile:
		var p *election.Profile
		if p, err = exp.Profile(profileID); err == nil {
			var x float64
			x, err = f.profile(p, params)
			v = ScalarValue(x)
		}
	default:
		v, err = f.global(exp, profileID, params)
	}
	if err != nil {
		return Value{}, fmt.Errorf("features: %s on %q: %w", f.ID, profileID, err)
	}

	log.Debug().
		Str("feature", string(f.ID)).
		Str("profile", profileID).
		Bool("undefined", v.Undefined).
		Dur("elapsed", time.Since(start)).
		Msg("feature computed")

	return v, nil
}

// ComputeProfile evaluates a per-profile feature without an experiment.
// Other scopes return ErrScope.
func (f Feature) ComputeProfile(p *election.Profile, params Params) (float64, error) {
	if f.Scope != PerProfile {
		return 0, fmt.Errorf("%w: %s is a %s feature", ErrScope, f.ID, f.Scope)
	}
	x, err := f.profile(p, params)
	if err != nil {
		return 0, fmt.Errorf("features: %s on %q: %w", f.ID, p.ID, err)
	}

	return x, nil
}

// ComputeAll evaluates feature id for every profile of exp, keyed by
// profile id. A whole-experiment feature runs once and its value is keyed
// by exp.ID. The first error aborts the run.
func ComputeAll(exp *experiment.Experiment, id ID, params Params) (map[string]Value, error) {
	f, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	if f.AliasOf != "" {
		log.Warn().Str("feature", string(id)).Str("use", string(f.AliasOf)).Msg("deprecated feature id")
	}

	if f.Scope == WholeExperiment {
		v, err := f.Compute(exp, "", params)
		if err != nil {
			return nil, err
		}
		return map[string]Value{exp.ID: v}, nil
	}

	out := make(map[string]Value, len(exp.IDs))
	for _, pid := range exp.IDs {
		v, err := f.Compute(exp, pid, params)
		if err != nil {
			return nil, err
		}
		out[pid] = v
	}

	return out, nil
}
