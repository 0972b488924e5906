package main

import (
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/R3mmurd/MonteCarlo/pi"
)

func newPiCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "pi [samples]",
		Short: "Estimate pi from random points in the unit square",
		Example: `  montecarlo pi
  montecarlo pi 1000000 --seed 42`,
		Args: argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := samples(cmd, n, args, a.cfg.Pi.Samples)
			if err != nil {
				return err
			}

			return a.runPi(count)
		},
	}

	cmd.Flags().IntVarP(&n, "samples", "n", DefaultConfig().Pi.Samples, "number of points")

	return cmd
}

func (a *app) runPi(n int) error {
	opts := []pi.Option{pi.WithWorkers(a.cfg.Workers)}
	if a.cfg.Seed != nil {
		opts = append(opts, pi.WithSeed(*a.cfg.Seed))
	}

	a.logger.Debug("estimating pi", "samples", n)

	start := time.Now()
	res, err := pi.Run(n, opts...)
	if err != nil {
		return err
	}

	r := a.report
	r.Title("Pi estimate")
	r.Field("Samples", "%s", formatCount(res.Samples))
	r.Field("Hits", "%s", formatCount(res.Hits))
	r.Field("Estimate", "%.10f", res.Value)
	r.Field("Absolute error", "%.3g", math.Abs(res.Value-math.Pi))
	r.Field("Seed", "%d", res.Seed)
	r.Field("Workers", "%d", res.Workers)
	r.Elapsed(start)

	return nil
}
