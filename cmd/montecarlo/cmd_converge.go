package main

import (
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/R3mmurd/MonteCarlo/convergence"
	"github.com/R3mmurd/MonteCarlo/integrate"
	"github.com/R3mmurd/MonteCarlo/pi"
)

type convergeFlags struct {
	sizes []int
	runs  int
	fn    string
	a, b  float64
}

func newConvergeCmd(a *app) *cobra.Command {
	var f convergeFlags

	cmd := &cobra.Command{
		Use:   "converge [pi|integrate]",
		Short: "Measure how the estimation error shrinks with the sample count",
		Long: `Run an estimator repeatedly at several sample counts, report the
root-mean-square error at each and fit err = a * n^b. An unbiased estimator
gives b close to -0.5.`,
		Example: `  montecarlo converge pi --seed 1
  montecarlo converge integrate --func sin --b 3 --sizes 1000,10000,100000 --runs 64`,
		Args:      argsRange(0, 1),
		ValidArgs: []string{"pi", "integrate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Converge
			fl := cmd.Flags()
			if fl.Changed("sizes") {
				cfg.Sizes = f.sizes
			}
			if fl.Changed("runs") {
				cfg.Runs = f.runs
			}

			target := "pi"
			if len(args) > 0 {
				target = args[0]
			}

			switch target {
			case "pi":
				return a.runConverge("pi", piTrial, math.Pi, cfg)
			case "integrate":
				ic := a.cfg.Integrate
				if fl.Changed("func") {
					ic.Func = f.fn
				}
				if fl.Changed("a") {
					ic.A = f.a
				}
				if fl.Changed("b") {
					ic.B = f.b
				}
				builtin, err := integrate.Lookup(ic.Func)
				if err != nil {
					return err
				}
				trial := func(n int, seed uint64) (float64, error) {
					return integrate.Estimate(builtin.Fn, ic.A, ic.B, n, integrate.WithSeed(seed))
				}

				return a.runConverge("integral of "+builtin.Expr, trial, builtin.Exact(ic.A, ic.B), cfg)
			default:
				return usagef("unknown estimator %q, want pi or integrate", target)
			}
		},
	}

	def := DefaultConfig()
	fl := cmd.Flags()
	fl.IntSliceVar(&f.sizes, "sizes", def.Converge.Sizes, "comma-separated sample counts")
	fl.IntVar(&f.runs, "runs", def.Converge.Runs, "trials per sample count")
	fl.StringVarP(&f.fn, "func", "f", def.Integrate.Func, "integrand name for the integrate estimator")
	fl.Float64Var(&f.a, "a", def.Integrate.A, "lower bound for the integrate estimator")
	fl.Float64Var(&f.b, "b", def.Integrate.B, "upper bound for the integrate estimator")

	return cmd
}

func piTrial(n int, seed uint64) (float64, error) {
	return pi.Estimate(n, pi.WithSeed(seed))
}

func (a *app) runConverge(name string, trial convergence.Trial, exact float64, cfg ConvergeConfig) error {
	opts := []convergence.Option{convergence.WithRuns(cfg.Runs)}
	if a.cfg.Seed != nil {
		opts = append(opts, convergence.WithSeed(*a.cfg.Seed))
	}

	a.logger.Debug("convergence study", "estimator", name, "sizes", cfg.Sizes, "runs", cfg.Runs)

	start := time.Now()
	study, err := convergence.Run(trial, exact, cfg.Sizes, opts...)
	if err != nil {
		return err
	}

	r := a.report
	r.Title("Convergence of %s", name)
	r.Field("Exact", "%.10f", study.Exact)
	r.Field("Runs per size", "%d", study.Runs)
	for i, p := range study.Points {
		r.Item("n=%-12s mean=%.8f  rms error=%.3g", formatCount(p.Samples), study.Means[i], p.RMSError)
	}
	r.Field("Fit", "%s", study.Fit)
	r.Field("R squared", "%.4f", study.Fit.RSquared)
	r.Field("Seed", "%d", study.Seed)
	r.Elapsed(start)

	return nil
}
