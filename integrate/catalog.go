package integrate

import (
	"fmt"
	"math"
	"slices"

	"github.com/R3mmurd/MonteCarlo/errs"
)

// Builtin is a named integrand with a closed-form antiderivative, used by
// the CLI and as a reference for accuracy checks.
type Builtin struct {
	Name  string                     // Name is the catalog key, e.g. "exp-x2".
	Expr  string                     // Expr is a human-readable formula.
	Fn    Func                       // Fn evaluates the integrand.
	Exact func(a, b float64) float64 // Exact returns the analytic integral over [a, b].
}

// String returns the formula of the integrand.
func (b Builtin) String() string {
	return b.Expr
}

var catalog = []Builtin{
	{
		Name:  "exp-x2",
		Expr:  "e^(-x^2)",
		Fn:    func(x float64) float64 { return math.Exp(-x * x) },
		Exact: func(a, b float64) float64 { return math.Sqrt(math.Pi) / 2 * (math.Erf(b) - math.Erf(a)) },
	},
	{
		Name:  "x",
		Expr:  "x",
		Fn:    func(x float64) float64 { return x },
		Exact: func(a, b float64) float64 { return (b*b - a*a) / 2 },
	},
	{
		Name:  "x2",
		Expr:  "x^2",
		Fn:    func(x float64) float64 { return x * x },
		Exact: func(a, b float64) float64 { return (b*b*b - a*a*a) / 3 },
	},
	{
		Name:  "sin",
		Expr:  "sin(x)",
		Fn:    math.Sin,
		Exact: func(a, b float64) float64 { return math.Cos(a) - math.Cos(b) },
	},
	{
		Name:  "lorentz",
		Expr:  "1/(1+x^2)",
		Fn:    func(x float64) float64 { return 1 / (1 + x*x) },
		Exact: func(a, b float64) float64 { return math.Atan(b) - math.Atan(a) },
	},
	{
		// Upper unit semicircle, zero outside [-1, 1].
		Name: "semicircle",
		Expr: "sqrt(1-x^2)",
		Fn: func(x float64) float64 {
			if x <= -1 || x >= 1 {
				return 0
			}
			return math.Sqrt(1 - x*x)
		},
		Exact: func(a, b float64) float64 { return semicircleArea(b) - semicircleArea(a) },
	},
}

// semicircleArea is the antiderivative of sqrt(1-x^2), clamped to [-1, 1].
func semicircleArea(x float64) float64 {
	x = math.Max(-1, math.Min(1, x))
	return (x*math.Sqrt(1-x*x) + math.Asin(x)) / 2
}

// Lookup returns the catalog integrand with the given name.
func Lookup(name string) (Builtin, error) {
	idx := slices.IndexFunc(catalog, func(b Builtin) bool { return b.Name == name })
	if idx < 0 {
		return Builtin{}, fmt.Errorf("%w: %q", errs.ErrUnknownIntegrand, name)
	}

	return catalog[idx], nil
}

// Builtins returns a copy of the catalog in declaration order.
func Builtins() []Builtin {
	return slices.Clone(catalog)
}

// Names returns the catalog keys in declaration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, b := range catalog {
		names[i] = b.Name
	}

	return names
}
