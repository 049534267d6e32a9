package main

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"lattice-ca/internal/core"
	"lattice-ca/internal/engine"
)

type sweepResult struct {
	seed   int64
	result engine.Result
}

func newSweepCmd() *cobra.Command {
	var (
		sim     string
		runs    int
		rows    int
		cols    int
		density float64
		seed    int64
		workers int
		sets    []string
		logLvl  string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Simulate many random seed grids and summarise the live counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs <= 0 || rows <= 0 || cols <= 0 {
				return fmt.Errorf("runs, rows and cols must be positive")
			}
			if density < 0 || density > 1 {
				return fmt.Errorf("density %v outside [0,1]", density)
			}
			logger, err := newLogger(logLvl, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			factory, err := core.Lookup(sim)
			if err != nil {
				return err
			}
			params, err := parseSets(sets)
			if err != nil {
				return err
			}

			results := make([]sweepResult, runs)
			g, ctx := errgroup.WithContext(commandContext(cmd))
			g.SetLimit(max(workers, 1))
			for i := 0; i < runs; i++ {
				g.Go(func() error {
					ca := factory(params)
					s := seed + int64(i)
					initial, err := ca.Parse(ca.Random(rows, cols, density, s))
					if err != nil {
						return err
					}
					entry := logger.WithFields(logrus.Fields{"sim": ca.Name(), "seed": s})
					res, err := engine.Simulate(ctx, ca.Bundle(), initial, ca.Stop(), engine.WithLogger(entry))
					if err != nil {
						return err
					}
					results[i] = sweepResult{seed: s, result: res}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			printSweep(cmd, sim, results)
			return nil
		},
	}
	cmd.Flags().StringVar(&sim, "sim", "cubes", "automaton to sweep")
	cmd.Flags().IntVar(&runs, "runs", 32, "number of random seeds")
	cmd.Flags().IntVar(&rows, "rows", 8, "seed grid rows")
	cmd.Flags().IntVar(&cols, "cols", 8, "seed grid columns")
	cmd.Flags().Float64Var(&density, "density", 0.35, "probability a seed cell is live")
	cmd.Flags().Int64Var(&seed, "seed", 42, "first seed; run i uses seed+i")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of runs simulated at once")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a parameter (key=value, repeatable)")
	cmd.Flags().StringVar(&logLvl, "log", "warn", "log level")
	return cmd
}

func printSweep(cmd *cobra.Command, sim string, results []sweepResult) {
	live := make([]float64, len(results))
	gens := make([]float64, len(results))
	converged := 0
	for i, r := range results {
		live[i] = float64(r.result.Live)
		gens[i] = float64(r.result.Generations)
		if r.result.Converged {
			converged++
		}
	}
	mean, std := stat.MeanStdDev(live, nil)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "sim=%s runs=%d\n", sim, len(results))
	fmt.Fprintf(w, "live: mean=%.2f stddev=%.2f\n", mean, std)
	fmt.Fprintf(w, "generations: mean=%.2f\n", stat.Mean(gens, nil))
	fmt.Fprintf(w, "converged: %d/%d\n", converged, len(results))
}
