// SPDX-License-Identifier: MIT

package features

import (
	"time"

	"github.com/katalvlaran/elecmap/cohesive"
	"github.com/katalvlaran/elecmap/committee"
	"github.com/katalvlaran/elecmap/election"
	"github.com/katalvlaran/elecmap/scoring"
)

// Short names for the registry table.
const (
	av  = committee.AV
	cc  = committee.CC
	hb  = committee.HB
	pav = committee.PAV

	exhaustive = committee.Exhaustive
	greedy     = committee.Greedy
	removal    = committee.Removal
	random     = committee.RandomSample
)

// profileOnly adapts a parameterless profile statistic.
func profileOnly(fn func(*election.Profile) (float64, error)) ProfileFunc {
	return func(p *election.Profile, _ Params) (float64, error) {
		return fn(p)
	}
}

func effectiveNumCandidates(mode scoring.Mode) ProfileFunc {
	return func(p *election.Profile, _ Params) (float64, error) {
		return scoring.EffectiveNumCandidates(p, mode)
	}
}

// committeeScore returns the score of the committee algo finds for rule.
func committeeScore(rule committee.Rule, algo committee.Algorithm) ProfileFunc {
	return func(p *election.Profile, params Params) (float64, error) {
		res, err := committee.Solve(p, rule, params.committeeOptions(algo))
		if err != nil {
			return 0, err
		}
		return res.Score, nil
	}
}

// pavTime returns the wall-clock seconds of an exhaustive PAV search.
func pavTime(p *election.Profile, params Params) (float64, error) {
	start := time.Now()
	if _, err := committee.Solve(p, pav, params.committeeOptions(exhaustive)); err != nil {
		return 0, err
	}

	return time.Since(start).Seconds(), nil
}

func justifiedRatio(p *election.Profile, params Params) (float64, error) {
	return cohesive.JustifiedRatio(p, params.CommitteeSize, params.Level, params.cohesiveOptions())
}

func cohesiveness(p *election.Profile, params Params) (float64, error) {
	l, err := cohesive.LargestLevel(p, params.CommitteeSize, params.cohesiveOptions())
	return float64(l), err
}

func cohesiveGroups(p *election.Profile, params Params) (float64, error) {
	n, err := cohesive.CountGroups(p, params.CommitteeSize, params.Level, params.cohesiveOptions())
	return float64(n), err
}

func cohesiveGroupsBrute(p *election.Profile, params Params) (float64, error) {
	n, err := cohesive.CountGroupsBrute(p, params.CommitteeSize, params.Level, params.cohesiveOptions())
	return float64(n), err
}
