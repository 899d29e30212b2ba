// SPDX-License-Identifier: MIT

// Package experiment holds the read-shared context of one analysis run:
// an ordered collection of profiles, the pairwise distances between them and
// their embedded coordinates.
//
// Distances and coordinates are produced by external stages (distance
// computation, multidimensional scaling). Feature computations read them and
// never write to them.
package experiment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/elecmap/election"
)

var (
	// ErrUnknownProfile is returned when an id is not part of the experiment.
	ErrUnknownProfile = errors.New("experiment: unknown profile id")

	// ErrDuplicateProfile is returned by Add when the id is already present.
	ErrDuplicateProfile = errors.New("experiment: duplicate profile id")

	// ErrMissingDistance is returned when no distance is stored for a pair.
	ErrMissingDistance = errors.New("experiment: missing distance")

	// ErrNegativeDistance is returned by SetDistance for d < 0 or NaN.
	ErrNegativeDistance = errors.New("experiment: distance must be a non-negative number")

	// ErrAsymmetricDistance is returned by Decode when a file gives d(a,b)
	// and d(b,a) different values.
	ErrAsymmetricDistance = errors.New("experiment: asymmetric distance")

	// ErrMissingCoordinate is returned when a profile has no embedded point.
	ErrMissingCoordinate = errors.New("experiment: missing coordinate")
)

// Experiment is the context shared by all feature invocations of a run.
//
// IDs fixes the iteration order; Profiles, Distances and Coordinates are
// keyed by the same ids. Distances is symmetric with an implicit zero
// diagonal; the triangle inequality is not assumed.
type Experiment struct {
	ID          string
	IDs         []string
	Profiles    map[string]*election.Profile
	Distances   map[string]map[string]float64
	Coordinates map[string][]float64
}

// New returns an empty experiment.
func New(id string) *Experiment {
	return &Experiment{
		ID:          id,
		Profiles:    make(map[string]*election.Profile),
		Distances:   make(map[string]map[string]float64),
		Coordinates: make(map[string][]float64),
	}
}

// Add appends p to the experiment, keeping insertion order.
func (e *Experiment) Add(p *election.Profile) error {
	if _, ok := e.Profiles[p.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProfile, p.ID)
	}
	e.IDs = append(e.IDs, p.ID)
	e.Profiles[p.ID] = p

	return nil
}

// Profile returns the profile stored under id.
func (e *Experiment) Profile(id string) (*election.Profile, error) {
	p, ok := e.Profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, id)
	}

	return p, nil
}

// SetDistance stores d for both (a,b) and (b,a).
func (e *Experiment) SetDistance(a, b string, d float64) error {
	if !(d >= 0) {
		return fmt.Errorf("%w: d(%q,%q)=%v", ErrNegativeDistance, a, b, d)
	}
	e.setHalf(a, b, d)
	e.setHalf(b, a, d)

	return nil
}

func (e *Experiment) setHalf(a, b string, d float64) {
	row, ok := e.Distances[a]
	if !ok {
		row = make(map[string]float64)
		e.Distances[a] = row
	}
	row[b] = d
}

// Distance returns the true distance between a and b. The diagonal is 0.
// A pair stored in only one direction is read from that direction.
func (e *Experiment) Distance(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	if d, ok := e.Distances[a][b]; ok {
		return d, nil
	}
	if d, ok := e.Distances[b][a]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("%w: d(%q,%q)", ErrMissingDistance, a, b)
}

// Coordinate returns the embedded point of id.
func (e *Experiment) Coordinate(id string) ([]float64, error) {
	c, ok := e.Coordinates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingCoordinate, id)
	}

	return c, nil
}

// NumCandidates returns the candidate count of profile id.
func (e *Experiment) NumCandidates(id string) (int, error) {
	p, err := e.Profile(id)
	if err != nil {
		return 0, err
	}

	return p.NumCandidates, nil
}
