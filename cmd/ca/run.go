package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lattice-ca/internal/config"
	"lattice-ca/internal/core"
	"lattice-ca/internal/engine"
	"lattice-ca/internal/lattice"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		flags      config.RunConfig
		sets       []string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a seed grid and print the live cell count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := config.RunConfig{Sim: "seating", LogLevel: "warn"}
			if configPath != "" {
				file, err := config.Load(configPath)
				if err != nil {
					return err
				}
				rc.Merge(*file)
			}
			params, err := parseSets(sets)
			if err != nil {
				return err
			}
			flags.Params = params
			if !cmd.Flags().Changed("sim") {
				flags.Sim = ""
			}
			if !cmd.Flags().Changed("log") {
				flags.LogLevel = ""
			}
			rc.Merge(flags)
			if err := rc.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(rc.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			factory, err := core.Lookup(rc.Sim)
			if err != nil {
				return err
			}
			ca := factory(rc.Params)

			text := rc.Grid
			if rc.Input != "" {
				if text, err = readInput(rc.Input, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			entry := logger.WithFields(logrus.Fields{"sim": ca.Name(), "run": uuid.NewString()})
			for _, k := range sortedKeys(rc.Params) {
				entry.Debugf("param %s=%s", k, rc.Params[k])
			}

			res, err := simulate(cmd, ca, text, entry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Live)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML run file")
	cmd.Flags().StringVar(&flags.Sim, "sim", "seating", "automaton to run (see `ca list`)")
	cmd.Flags().StringVar(&flags.Input, "input", "", "seed grid file, or - for stdin")
	cmd.Flags().StringVar(&flags.LogLevel, "log", "warn", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a parameter (key=value, repeatable)")
	return cmd
}

func simulate(cmd *cobra.Command, ca core.Automaton, text string, log *logrus.Entry) (engine.Result, error) {
	initial, err := ca.Parse(text)
	if err != nil {
		return engine.Result{}, fmt.Errorf("%s seed grid: %w", ca.Name(), err)
	}
	if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		log.Tracef("seed:\n%s", lattice.Render(initial, ca.Symbols()))
	}
	return engine.Simulate(commandContext(cmd), ca.Bundle(), initial, ca.Stop(), engine.WithLogger(log))
}
