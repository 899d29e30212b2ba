// SPDX-License-Identifier: MIT

package election

import "fmt"

// Validate checks the profile invariants:
//   - NumVoters > 0, NumCandidates > 0, len(Votes) == NumVoters;
//   - ordinal votes are permutations of 0..NumCandidates-1;
//   - approval votes contain distinct indices in [0, NumCandidates).
//
// Errors wrap ErrMalformedProfile with the profile id and the first
// offending voter.
//
// Complexity: O(n·m).
func (p *Profile) Validate() error {
	if p.NumVoters <= 0 || p.NumCandidates <= 0 {
		return fmt.Errorf("%w: %q has %d voters and %d candidates",
			ErrMalformedProfile, p.ID, p.NumVoters, p.NumCandidates)
	}
	if len(p.Votes) != p.NumVoters {
		return fmt.Errorf("%w: %q declares %d voters but holds %d votes",
			ErrMalformedProfile, p.ID, p.NumVoters, len(p.Votes))
	}

	seen := make([]int, p.NumCandidates) // seen[c] == v+1 when voter v used c
	for v, vote := range p.Votes {
		if p.Ballot == Ordinal && len(vote) != p.NumCandidates {
			return fmt.Errorf("%w: %q voter %d ranks %d of %d candidates",
				ErrMalformedProfile, p.ID, v, len(vote), p.NumCandidates)
		}
		for _, c := range vote {
			if c < 0 || c >= p.NumCandidates {
				return fmt.Errorf("%w: %q voter %d lists candidate %d outside [0,%d)",
					ErrMalformedProfile, p.ID, v, c, p.NumCandidates)
			}
			if seen[c] == v+1 {
				return fmt.Errorf("%w: %q voter %d lists candidate %d twice",
					ErrMalformedProfile, p.ID, v, c)
			}
			seen[c] = v + 1
		}
	}

	return nil
}

// ensureValid runs Validate once per cache lifetime. Caller holds p.mu.
func (p *Profile) ensureValid() error {
	if p.validated {
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.validated = true

	return nil
}

// requireBallot returns ErrBallotMismatch unless p carries ballot b.
func (p *Profile) requireBallot(b Ballot, view string) error {
	if p.Ballot != b {
		return fmt.Errorf("%w: %s needs %s ballots, %q is %s",
			ErrBallotMismatch, view, b, p.ID, p.Ballot)
	}

	return nil
}
