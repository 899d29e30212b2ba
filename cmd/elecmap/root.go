// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/elecmap/internal/config"
	"github.com/katalvlaran/elecmap/internal/logger"
)

var version = "dev"

// app carries state shared by the subcommands once the root has run.
type app struct {
	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}
	var (
		envFile string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "elecmap",
		Short: "Feature engine for maps of elections",
		Long: `elecmap computes features of voting profiles: scoring-rule outcomes,
committee scores (exact and approximate), cohesive groups, and
embedding diagnostics over an experiment's distances and coordinates.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load configuration from this .env file (default ./.env if present)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var (
			cfg *config.Config
			err error
		)
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if debug {
			level = "debug"
		}
		if err = logger.Init(level, cmd.ErrOrStderr()); err != nil {
			return err
		}
		a.cfg = cfg

		return nil
	}

	cmd.AddCommand(newFeaturesCommand())
	cmd.AddCommand(newComputeCommand(a))

	return cmd
}
