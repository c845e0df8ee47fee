package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/golsim/internal/config"
	"github.com/san-kum/golsim/internal/experiment"
)

func densitySweep(cmd *cobra.Command, args []string) error {
	if steps <= 0 || runs <= 0 {
		return fmt.Errorf("steps and runs must be positive")
	}

	base := config.DefaultConfig()
	base.GridLength = gridLength
	base.Sweeps = sweepLen
	base.Frames = 1
	base.Sweeper = "serial"
	if err := base.Validate(); err != nil {
		return err
	}

	sweep := &experiment.DensitySweep{
		Base:      base,
		Min:       densityMin,
		Max:       densityMax,
		Steps:     steps,
		Runs:      runs,
		SeedStart: sweepSeed,
		Limit:     parallel,
	}

	var points []experiment.DensityPoint
	err := withProgress(cmd.Context(), "Sweeping:", func(ctx context.Context, report func(done, total int)) error {
		var err error
		points, err = experiment.RunDensitySweep(ctx, sweep, report)
		return err
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tFINAL\tSURVIVED")
	finals := make([]float64, len(points))
	for i, p := range points {
		finals[i] = p.MeanFinal
		fmt.Fprintf(w, "%.3f\t%.4f\t%.0f%%\n", p.Density, p.MeanFinal, 100*p.Survived)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(finals) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("final live fraction after %d sweeps, density %.2f to %.2f", sweepLen, densityMin, densityMax)),
		))
	}
	return nil
}
