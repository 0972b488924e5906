package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/R3mmurd/MonteCarlo/integrate"
)

type integrateFlags struct {
	samples int
	fn      string
	a       float64
	b       float64
	list    bool
}

func newIntegrateCmd(a *app) *cobra.Command {
	var f integrateFlags

	cmd := &cobra.Command{
		Use:   "integrate [samples]",
		Short: "Estimate a definite integral with the sample-mean method",
		Long: fmt.Sprintf(`Estimate the integral of a catalog function over [a, b].

Available functions: %s.`, strings.Join(integrate.Names(), ", ")),
		Example: `  montecarlo integrate
  montecarlo integrate --func sin --a 0 --b 3.14159 -n 200000 --seed 7`,
		Args: argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.list {
				for _, b := range integrate.Builtins() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", b.Name, b.Expr)
				}

				return nil
			}

			return a.runIntegrate(cmd, args, f)
		},
	}

	def := DefaultConfig().Integrate
	fl := cmd.Flags()
	fl.IntVarP(&f.samples, "samples", "n", def.Samples, "number of samples")
	fl.StringVarP(&f.fn, "func", "f", def.Func, "integrand name from the catalog")
	fl.Float64Var(&f.a, "a", def.A, "lower bound")
	fl.Float64Var(&f.b, "b", def.B, "upper bound")
	fl.BoolVar(&f.list, "list", false, "list the available integrands and exit")

	return cmd
}

func (a *app) runIntegrate(cmd *cobra.Command, args []string, f integrateFlags) error {
	cfg := a.cfg.Integrate
	n, err := samples(cmd, f.samples, args, cfg.Samples)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("func") {
		cfg.Func = f.fn
	}
	if cmd.Flags().Changed("a") {
		cfg.A = f.a
	}
	if cmd.Flags().Changed("b") {
		cfg.B = f.b
	}

	builtin, err := integrate.Lookup(cfg.Func)
	if err != nil {
		return err
	}

	opts := []integrate.Option{integrate.WithWorkers(a.cfg.Workers)}
	if a.cfg.Seed != nil {
		opts = append(opts, integrate.WithSeed(*a.cfg.Seed))
	}

	a.logger.Debug("integrating",
		"func", builtin.Name, "a", cfg.A, "b", cfg.B, "samples", n)

	start := time.Now()
	res, err := integrate.Run(builtin.Fn, cfg.A, cfg.B, n, opts...)
	if err != nil {
		return err
	}

	exact := builtin.Exact(cfg.A, cfg.B)

	r := a.report
	r.Title("Integral of %s over [%g, %g]", builtin.Expr, cfg.A, cfg.B)
	r.Field("Samples", "%s", formatCount(res.Samples))
	r.Field("Estimate", "%.10f", res.Value)
	r.Field("Standard error", "%.3g", res.StdError)
	r.Field("Exact", "%.10f", exact)
	r.Field("Absolute error", "%.3g", math.Abs(res.Value-exact))
	r.Field("Seed", "%d", res.Seed)
	r.Field("Workers", "%d", res.Workers)
	r.Elapsed(start)

	return nil
}
