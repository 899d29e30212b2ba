// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/elecmap/cohesive"
	"github.com/katalvlaran/elecmap/committee"
	"github.com/katalvlaran/elecmap/experiment"
	"github.com/katalvlaran/elecmap/features"
)

type computeOptions struct {
	experiment    string
	feature       string
	out           string
	committeeSize int
	level         int
	samples       int
	seed          int64
	numClusters   int
	algorithm     string
	cohesiveMode  string
}

func newComputeCommand(a *app) *cobra.Command {
	o := &computeOptions{}
	cmd := &cobra.Command{
		Use:   "compute --experiment FILE --feature ID",
		Short: "Compute one feature for every profile of an experiment",
		Long: `Decode the YAML experiment, compute the feature for every profile
(once for whole-experiment features such as clustering) and write the
values as CSV rows: profile_id,kind,value...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd, a, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.experiment, "experiment", "e", "", "experiment YAML file (required)")
	f.StringVarP(&o.feature, "feature", "f", "", "feature id, see 'elecmap features' (required)")
	f.StringVarP(&o.out, "out", "o", "", "write values to this file instead of stdout")
	f.IntVarP(&o.committeeSize, "committee-size", "k", 0, "committee size")
	f.IntVarP(&o.level, "level", "l", 0, "cohesiveness level")
	f.IntVar(&o.samples, "samples", 0, "random committees drawn by rand_approx_pav_score")
	f.Int64Var(&o.seed, "seed", 0, "seed of the randomised features")
	f.IntVar(&o.numClusters, "num-clusters", 0, "cluster count of the clustering features")
	f.StringVar(&o.algorithm, "algorithm", "", "committee search: greedy, exhaustive, removal or random")
	f.StringVar(&o.cohesiveMode, "cohesive-mode", "", "cohesiveness search: exact or greedy")
	_ = cmd.MarkFlagRequired("experiment")
	_ = cmd.MarkFlagRequired("feature")

	return cmd
}

// params starts from the configuration and applies the flags that were set.
func (o *computeOptions) params(cmd *cobra.Command, a *app) (features.Params, error) {
	p, err := a.cfg.Params()
	if err != nil {
		return p, err
	}

	flags := cmd.Flags()
	if flags.Changed("committee-size") {
		p.CommitteeSize = o.committeeSize
	}
	if flags.Changed("level") {
		p.Level = o.level
	}
	if flags.Changed("samples") {
		p.Samples = o.samples
	}
	if flags.Changed("seed") {
		p.Seed = o.seed
	}
	if flags.Changed("num-clusters") {
		p.NumClusters = o.numClusters
	}
	if flags.Changed("algorithm") {
		if p.Algorithm, err = committee.ParseAlgorithm(o.algorithm); err != nil {
			return p, err
		}
	}
	if flags.Changed("cohesive-mode") {
		if p.CohesiveMode, err = cohesive.ParseMode(o.cohesiveMode); err != nil {
			return p, err
		}
	}

	return p, nil
}

func runCompute(cmd *cobra.Command, a *app, o *computeOptions) error {
	start := time.Now()

	params, err := o.params(cmd, a)
	if err != nil {
		return err
	}
	id := features.ID(o.feature)
	if _, err = features.Lookup(id); err != nil {
		return err
	}
	exp, err := experiment.LoadFile(o.experiment)
	if err != nil {
		return err
	}

	values, err := features.ComputeAll(exp, id, params)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", o.out, err)
		}
		defer f.Close()
		w = f
	}
	if err = features.WriteValues(w, values); err != nil {
		return fmt.Errorf("write values: %w", err)
	}

	log.Info().
		Str("experiment", exp.ID).
		Str("feature", o.feature).
		Int("values", len(values)).
		Dur("elapsed", time.Since(start)).
		Msg("features computed")

	return nil
}
