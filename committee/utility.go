// SPDX-License-Identifier: MIT

package committee

import (
	"github.com/katalvlaran/elecmap/election"
)

// evaluator scores committees of one profile under one rule. The utility
// table is built once so that every evaluation is O(n·|W| log |W|).
type evaluator struct {
	rule    Rule
	util    [][]float64 // util[v][c]
	weights []float64   // OWA weights, len == m
	buf     []float64
}

// newEvaluator builds the utility table of p for rule. depth is the number
// of top positions approved on ordinal ballots (AV, PAV).
func newEvaluator(p *election.Profile, rule Rule, depth int) (*evaluator, error) {
	m := p.NumCandidates
	util := make([][]float64, p.NumVoters)

	switch p.Ballot {
	case election.Approval:
		rev, err := p.ReverseApprovals()
		if err != nil {
			return nil, err
		}
		for v := range util {
			util[v] = make([]float64, m)
		}
		for c, voters := range rev {
			for _, v := range voters {
				util[v][c] = 1
			}
		}

	default:
		pos, err := p.Positions()
		if err != nil {
			return nil, err
		}
		for v, row := range pos {
			u := make([]float64, m)
			for c, at := range row {
				switch rule {
				case CC, HB:
					u[c] = float64(m - 1 - at)
				default:
					if at < depth {
						u[c] = 1
					}
				}
			}
			util[v] = u
		}
	}

	weights := make([]float64, m)
	for i := range weights {
		switch rule {
		case AV:
			weights[i] = 1
		case CC:
			if i == 0 {
				weights[i] = 1
			}
		case HB, PAV:
			weights[i] = 1 / float64(i+1)
		default:
			return nil, ErrUnknownRule
		}
	}

	return &evaluator{rule: rule, util: util, weights: weights, buf: make([]float64, 0, m)}, nil
}

// score returns the rule's score of committee W (any order, distinct members).
func (e *evaluator) score(W []int) float64 {
	var total float64
	for _, u := range e.util {
		total += e.voterScore(u, W)
	}

	return total
}

// voterScore returns Σ_i w_i·(i-th largest utility among W) for one voter.
func (e *evaluator) voterScore(u []float64, W []int) float64 {
	switch e.rule {
	case CC:
		var best float64
		for _, c := range W {
			best = max(best, u[c])
		}
		return best
	case AV:
		var s float64
		for _, c := range W {
			s += u[c]
		}
		return s
	}

	// Insertion sort, descending; committees are small.
	b := e.buf[:0]
	for _, c := range W {
		x := u[c]
		i := len(b)
		b = append(b, x)
		for i > 0 && b[i-1] < x {
			b[i] = b[i-1]
			i--
		}
		b[i] = x
	}
	e.buf = b

	var s float64
	for i, x := range b {
		if x == 0 {
			break
		}
		s += e.weights[i] * x
	}

	return s
}
