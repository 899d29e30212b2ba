// SPDX-License-Identifier: MIT

package election

import "gonum.org/v1/gonum/mat"

// PositionwiseMatrix returns the m×m matrix M with M[i][j] equal to the
// fraction of votes that rank candidate i at position j. Rows and columns
// each sum to 1.
//
// The returned matrix is shared with the cache and must be treated as
// read-only.
//
// Errors: ErrBallotMismatch for approval profiles, ErrMalformedProfile.
//
// Complexity: O(n·m) on first call, O(1) afterwards.
func (p *Profile) PositionwiseMatrix() (*mat.Dense, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.positionwise != nil {
		return p.positionwise, nil
	}
	if err := p.requireBallot(Ordinal, "positionwise matrix"); err != nil {
		return nil, err
	}
	if err := p.ensureValid(); err != nil {
		return nil, err
	}

	m := p.NumCandidates
	counts := make([]float64, m*m)
	for _, vote := range p.Votes {
		for pos, c := range vote {
			counts[c*m+pos]++
		}
	}
	M := mat.NewDense(m, m, counts)
	M.Scale(1/float64(p.NumVoters), M)
	p.positionwise = M

	return M, nil
}

// ApprovalwiseVector returns, for every candidate, the fraction of voters
// approving it. The slice is shared with the cache; do not modify it.
//
// Errors: ErrBallotMismatch for ordinal profiles, ErrMalformedProfile.
func (p *Profile) ApprovalwiseVector() ([]float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.approvalwise != nil {
		return p.approvalwise, nil
	}
	if err := p.requireBallot(Approval, "approvalwise vector"); err != nil {
		return nil, err
	}
	if err := p.ensureValid(); err != nil {
		return nil, err
	}

	vec := make([]float64, p.NumCandidates)
	for _, vote := range p.Votes {
		for _, c := range vote {
			vec[c]++
		}
	}
	n := float64(p.NumVoters)
	for i := range vec {
		vec[i] /= n
	}
	p.approvalwise = vec

	return vec, nil
}

// ReverseApprovals returns, for every candidate, the sorted set of voters
// approving it. The sets are shared with the cache; do not modify them.
//
// Errors: ErrBallotMismatch for ordinal profiles, ErrMalformedProfile.
func (p *Profile) ReverseApprovals() ([]VoterSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.reverse != nil {
		return p.reverse, nil
	}
	if err := p.requireBallot(Approval, "reverse approvals"); err != nil {
		return nil, err
	}
	if err := p.ensureValid(); err != nil {
		return nil, err
	}

	rev := make([]VoterSet, p.NumCandidates)
	// Voters are visited in increasing order, so every set is built sorted.
	for v, vote := range p.Votes {
		for _, c := range vote {
			rev[c] = append(rev[c], v)
		}
	}
	p.reverse = rev

	return rev, nil
}

// PairwiseMatrix returns P with P[a][b] = number of voters ranking a above b.
// The matrix is shared with the cache; do not modify it.
//
// Errors: ErrBallotMismatch for approval profiles, ErrMalformedProfile.
//
// Complexity: O(n·m²) on first call.
func (p *Profile) PairwiseMatrix() ([][]int, error) {
	pos, err := p.Positions()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pairwise != nil {
		return p.pairwise, nil
	}

	m := p.NumCandidates
	P := make([][]int, m)
	for a := range P {
		P[a] = make([]int, m)
	}
	for _, row := range pos {
		for a := 0; a < m; a++ {
			for b := a + 1; b < m; b++ {
				if row[a] < row[b] {
					P[a][b]++
				} else {
					P[b][a]++
				}
			}
		}
	}
	p.pairwise = P

	return P, nil
}

// Positions returns pos with pos[v][c] = position of candidate c in vote v.
// The table is shared with the cache; do not modify it.
//
// Errors: ErrBallotMismatch for approval profiles, ErrMalformedProfile.
func (p *Profile) Positions() ([][]int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.positions != nil {
		return p.positions, nil
	}
	if err := p.requireBallot(Ordinal, "positions"); err != nil {
		return nil, err
	}
	if err := p.ensureValid(); err != nil {
		return nil, err
	}

	pos := make([][]int, p.NumVoters)
	for v, vote := range p.Votes {
		row := make([]int, p.NumCandidates)
		for i, c := range vote {
			row[c] = i
		}
		pos[v] = row
	}
	p.positions = pos

	return pos, nil
}

// Invalidate drops every memoized view; the next accessor recomputes it.
func (p *Profile) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.validated = false
	p.positionwise = nil
	p.approvalwise = nil
	p.reverse = nil
	p.pairwise = nil
	p.positions = nil
}
