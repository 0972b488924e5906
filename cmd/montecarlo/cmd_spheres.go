package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/R3mmurd/MonteCarlo/geometry"
	"github.com/R3mmurd/MonteCarlo/spheres"
	"github.com/R3mmurd/MonteCarlo/volume"
)

type spheresFlags struct {
	samples   int
	threshold int
}

func newSpheresCmd(a *app) *cobra.Command {
	var f spheresFlags

	cmd := &cobra.Command{
		Use:   "spheres FILE [samples]",
		Short: "Estimate the union and overlap volumes of a sphere set",
		Long: `Estimate the union volume of the spheres listed in FILE and the volume
covered by at least --threshold of them.

FILE holds one sphere per line as "x y z r". Files ending in .zst, .s2 or
.lz4 are decompressed first. Malformed lines are skipped with a warning.`,
		Example: `  montecarlo spheres spheres.txt
  montecarlo spheres spheres.txt.zst 5000000 --threshold 3`,
		Args: argsRange(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Spheres
			n, err := samples(cmd, f.samples, args[1:], cfg.Samples)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = f.threshold
			}

			return a.runSpheres(args[0], n, cfg.Threshold)
		},
	}

	def := DefaultConfig().Spheres
	fl := cmd.Flags()
	fl.IntVarP(&f.samples, "samples", "n", def.Samples, "number of points")
	fl.IntVarP(&f.threshold, "threshold", "k", def.Threshold, "containment count that marks a point as overlap")

	return cmd
}

func (a *app) runSpheres(path string, n, threshold int) error {
	set, err := spheres.ReadFile(path)
	if err != nil {
		return err
	}
	for _, s := range set.Skipped {
		a.logger.Warn("skipped sphere record",
			slog.String("file", path),
			slog.Int("line", s.Line),
			slog.String("reason", s.Reason),
		)
	}

	opts := []volume.Option{
		volume.WithOverlapThreshold(threshold),
		volume.WithWorkers(a.cfg.Workers),
	}
	if a.cfg.Seed != nil {
		opts = append(opts, volume.WithSeed(*a.cfg.Seed))
	}

	a.logger.Debug("estimating volumes",
		"file", path, "spheres", len(set.Spheres), "samples", n, "threshold", threshold)

	start := time.Now()
	res, err := volume.Estimate(set.Spheres, n, opts...)
	if err != nil {
		return err
	}

	r := a.report
	r.Title("Spheres (%d)", len(set.Spheres))
	for _, s := range set.Spheres {
		r.Item("%s", s)
	}
	if len(set.Skipped) > 0 {
		r.Field("Skipped records", "%d", len(set.Skipped))
	}
	r.Field("Fingerprint", "%016x", set.Fingerprint())
	r.Blank()

	size := res.Box.Size()
	r.Title("Bounding box")
	r.Field("Min", "%s", geometry.FormatPoint(res.Box.Min))
	r.Field("Max", "%s", geometry.FormatPoint(res.Box.Max))
	r.Field("Dimensions", "%g x %g x %g", size.X, size.Y, size.Z)
	r.Field("Volume", "%.6f", res.BoxVolume)
	r.Blank()

	r.Title("Volumes")
	r.Field("Theoretical", "%.6f", res.Theoretical)
	r.Field("Samples", "%s", formatCount(res.Samples))
	r.Field("Hit volume", "%.6f", res.HitVolume)
	r.Field("Overlap volume", "%.6f (threshold %d)", res.OverlapVolume, res.Threshold)
	r.Field("Seed", "%d", res.Seed)
	r.Field("Workers", "%d", res.Workers)
	r.Elapsed(start)

	return nil
}
