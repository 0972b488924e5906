package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/R3mmurd/MonteCarlo/errs"
)

// Exit statuses.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitUnreadable  = 3
	exitConfigError = 4
)

// usageError marks command-line misuse: a missing argument, an unknown
// command or a malformed flag.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by the root command to a process status.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		return exitUsage
	case errors.Is(err, errs.ErrUnreadableInput):
		return exitUnreadable
	case errors.Is(err, errConfig),
		errors.Is(err, errs.ErrZeroSamples),
		errors.Is(err, errs.ErrEmptyRegion),
		errors.Is(err, errs.ErrUnboundedRegion),
		errors.Is(err, errs.ErrInvalidBounds),
		errors.Is(err, errs.ErrInvalidRadius),
		errors.Is(err, errs.ErrInvalidThreshold),
		errors.Is(err, errs.ErrInvalidWorkers),
		errors.Is(err, errs.ErrUnknownIntegrand),
		errors.Is(err, errs.ErrInsufficientData):
		return exitConfigError
	default:
		return exitFailure
	}
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	seed       uint64
	workers    int
	configPath string
	logLevel   string
	plain      bool
}

// app carries the state shared by the commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	flags  globalFlags
	cfg    Config
	logger *slog.Logger
	report *reporter
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := newApp(stdout, stderr)

	root := &cobra.Command{
		Use:   "montecarlo",
		Short: "Monte Carlo estimation of integrals, pi and sphere volumes",
		Long: `montecarlo estimates definite integrals, the value of pi and the union
and overlap volumes of sphere sets by uniform random sampling.

Every run reports the seed it used; pass it back with --seed to reproduce
the result exactly.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			cmd.SetOut(a.stderr)
			_ = cmd.Usage()

			return usagef("missing command")
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.Uint64Var(&a.flags.seed, "seed", 0, "sampler seed (default: derived from the current time)")
	pf.IntVarP(&a.flags.workers, "workers", "w", 1, "sampling goroutines, 0 for GOMAXPROCS")
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.BoolVar(&a.flags.plain, "plain", false, "disable styled output")

	root.AddCommand(
		newIntegrateCmd(a),
		newPiCmd(a),
		newSpheresCmd(a),
		newGenerateCmd(a),
		newConvergeCmd(a),
	)

	return root
}

// setup loads the configuration, applies the persistent flag overrides and
// prepares logging and reporting.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := DefaultConfig()
	if a.flags.configPath != "" {
		loaded, err := LoadConfig(a.flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := a.flags.seed
		cfg.Seed = &seed
	}
	if flags.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.report = newReporter(a.stdout, a.flags.plain)
	a.logger.Debug("configuration loaded",
		slog.String("config", a.flags.configPath),
		slog.Int("workers", cfg.Workers),
		slog.Bool("seeded", cfg.Seed != nil),
	)

	return nil
}

// samples resolves the sample count: the -n flag wins over a positional
// count, which wins over the configured value.
func samples(cmd *cobra.Command, flagValue int, positional []string, configured int) (int, error) {
	if cmd.Flags().Changed("samples") {
		return flagValue, nil
	}
	if len(positional) > 0 {
		n, err := strconv.Atoi(positional[0])
		if err != nil {
			return 0, usagef("invalid sample count %q", positional[0])
		}

		return n, nil
	}

	return configured, nil
}

// argsRange is cobra.RangeArgs with its error marked as misuse. The command
// usage is printed to stderr before the error is returned.
func argsRange(lo, hi int) cobra.PositionalArgs {
	check := cobra.RangeArgs(lo, hi)

	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			cmd.SetOut(cmd.ErrOrStderr())
			_ = cmd.Usage()

			return usageError{err: err}
		}

		return nil
	}
}
