// SPDX-License-Identifier: MIT

package scoring

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/elecmap/election"
)

// MaxApprovalScore returns the largest number of voters approving a single
// candidate.
func MaxApprovalScore(p *election.Profile) (float64, error) {
	vec, err := p.ApprovalwiseVector()
	if err != nil {
		return 0, err
	}

	return math.Round(floats.Max(vec) * float64(p.NumVoters)), nil
}

// Abstract returns Σ_i log C(n, a_i), where a_i is the number of voters
// approving candidate i. It is 0 for unanimous or empty approvals and grows
// as approvals spread towards n/2 per candidate.
func Abstract(p *election.Profile) (float64, error) {
	vec, err := p.ApprovalwiseVector()
	if err != nil {
		return 0, err
	}

	n := float64(p.NumVoters)
	var total float64
	for _, a := range vec {
		k := math.Round(a * n)
		total += combin.LogGeneralizedBinomial(n, k)
	}

	return total, nil
}
