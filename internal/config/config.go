// SPDX-License-Identifier: MIT

// Package config loads run configuration from the environment, optionally
// preloaded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/elecmap/cohesive"
	"github.com/katalvlaran/elecmap/committee"
	"github.com/katalvlaran/elecmap/features"
)

// Config holds the feature defaults and limits of a run.
type Config struct {
	CommitteeSize int    `env:"ELECMAP_COMMITTEE_SIZE" envDefault:"10"`
	Level         int    `env:"ELECMAP_LEVEL" envDefault:"1"`
	Samples       int    `env:"ELECMAP_SAMPLES" envDefault:"1000"`
	Seed          int64  `env:"ELECMAP_SEED" envDefault:"0"`
	ApprovalDepth int    `env:"ELECMAP_APPROVAL_DEPTH" envDefault:"0"`
	NumClusters   int    `env:"ELECMAP_NUM_CLUSTERS" envDefault:"12"`
	Algorithm     string `env:"ELECMAP_ALGORITHM" envDefault:"greedy"`
	CohesiveMode  string `env:"ELECMAP_COHESIVE_MODE" envDefault:"exact"`
	LimitsConfig
	LogLevel string `env:"ELECMAP_LOG_LEVEL" envDefault:"info"`
}

// LimitsConfig bounds the exponential computations.
type LimitsConfig struct {
	MaxCommittees      int `env:"ELECMAP_MAX_COMMITTEES" envDefault:"2000000"`
	MaxSubsets         int `env:"ELECMAP_MAX_SUBSETS" envDefault:"2000000"`
	MaxBruteCandidates int `env:"ELECMAP_MAX_BRUTE_CANDIDATES" envDefault:"20"`
}

// Load reads the given .env files (or ./.env when none is given and it
// exists) into the process environment without overriding variables that
// are already set, then parses Config from the environment.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) > 0 {
		if err := godotenv.Load(dotenv...); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Params maps the configuration onto feature parameters; fields without a
// variable keep features.DefaultParams.
func (c *Config) Params() (features.Params, error) {
	algo, err := committee.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return features.Params{}, fmt.Errorf("config: ELECMAP_ALGORITHM: %w", err)
	}
	mode, err := cohesive.ParseMode(c.CohesiveMode)
	if err != nil {
		return features.Params{}, fmt.Errorf("config: ELECMAP_COHESIVE_MODE: %w", err)
	}

	p := features.DefaultParams()
	p.CommitteeSize = c.CommitteeSize
	p.Level = c.Level
	p.Samples = c.Samples
	p.Seed = c.Seed
	p.ApprovalDepth = c.ApprovalDepth
	p.NumClusters = c.NumClusters
	p.Algorithm = algo
	p.CohesiveMode = mode
	p.Limits = features.Limits{
		MaxCommittees:      c.MaxCommittees,
		MaxSubsets:         c.MaxSubsets,
		MaxBruteCandidates: c.MaxBruteCandidates,
	}

	return p, nil
}
