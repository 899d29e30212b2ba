// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/elecmap/election"
)

// document is the YAML layout of an experiment file:
//
//	id: my-map
//	profiles:
//	  - id: ic_0
//	    ballot: ordinal
//	    num_candidates: 4
//	    votes: [[0,1,2,3],[1,0,2,3]]
//	distances:
//	  ic_0: {ic_1: 3.5}
//	coordinates:
//	  ic_0: [0.1, 0.2]
type document struct {
	ID          string                        `yaml:"id"`
	Profiles    []profileDoc                  `yaml:"profiles"`
	Distances   map[string]map[string]float64 `yaml:"distances"`
	Coordinates map[string][]float64          `yaml:"coordinates"`
}

type profileDoc struct {
	ID            string  `yaml:"id"`
	Ballot        string  `yaml:"ballot"`
	NumCandidates int     `yaml:"num_candidates"`
	Votes         [][]int `yaml:"votes"`
}

// Decode reads a YAML experiment document from r. Every profile is
// validated; distances are stored symmetrically, and a pair listed in both
// directions must carry the same value in each.
func Decode(r io.Reader) (*Experiment, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("experiment: decode: %w", err)
	}

	e := New(doc.ID)
	for _, pd := range doc.Profiles {
		ballot, err := election.ParseBallot(pd.Ballot)
		if err != nil {
			return nil, fmt.Errorf("experiment: profile %q: %w", pd.ID, err)
		}
		p := &election.Profile{
			ID:            pd.ID,
			Ballot:        ballot,
			NumVoters:     len(pd.Votes),
			NumCandidates: pd.NumCandidates,
			Votes:         pd.Votes,
		}
		if err = p.Validate(); err != nil {
			return nil, err
		}
		if err = e.Add(p); err != nil {
			return nil, err
		}
	}

	for _, a := range slices.Sorted(maps.Keys(doc.Distances)) {
		row := doc.Distances[a]
		for _, b := range slices.Sorted(maps.Keys(row)) {
			d := row[b]
			if prev, ok := e.Distances[a][b]; ok && prev != d {
				return nil, fmt.Errorf("%w: d(%q,%q)=%v but d(%q,%q)=%v",
					ErrAsymmetricDistance, b, a, prev, a, b, d)
			}
			if err := e.SetDistance(a, b, d); err != nil {
				return nil, err
			}
		}
	}
	for id, c := range doc.Coordinates {
		e.Coordinates[id] = c
	}

	return e, nil
}

// LoadFile decodes the experiment stored at path.
func LoadFile(path string) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
