package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var (
	dataDir string
	// run
	gridLength  int
	sweeps      int
	frames      int
	seed        int64
	density     float64
	patternName string
	preset      string
	configFile  string
	fps         int
	scale       int
	makeMovie   bool
	movieFormat string
	saveRun     bool
	fileName    string
	sweeperName string
	workers     int
	quiet       bool
	// inspection
	frameIndex int
	population bool
	outName    string
	// density sweep
	densityMin float64
	densityMax float64
	steps      int
	runs       int
	parallel   int
	sweepSeed  int64
	sweepLen   int
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "golsim",
		Short:         "game of life on a torus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".golsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&gridLength, "grid", 64, "grid side length")
	runCmd.Flags().IntVar(&sweeps, "sweeps", 100, "total sweeps")
	runCmd.Flags().IntVar(&frames, "frames", 100, "recorded frames after the initial one")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().Float64Var(&density, "density", 0.5, "initial live fraction (random fill)")
	runCmd.Flags().StringVar(&patternName, "pattern", "", "named starting pattern instead of a random fill")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().IntVar(&fps, "fps", 10, "movie frame rate")
	runCmd.Flags().IntVar(&scale, "scale", 8, "movie pixels per cell")
	runCmd.Flags().BoolVar(&makeMovie, "movie", true, "render a movie")
	runCmd.Flags().StringVar(&movieFormat, "format", "gif", "movie format (gif, mp4)")
	runCmd.Flags().BoolVar(&saveRun, "save", true, "save the evolution")
	runCmd.Flags().StringVar(&fileName, "name", "test", "output file name without extension")
	runCmd.Flags().StringVar(&sweeperName, "sweeper", "auto", "sweeper (auto, serial, parallel)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers, 0 for all cpus")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no progress output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "draw one frame of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame index, negative counts from the end")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "classify a run and find its dominant period",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a saved run to a movie",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().IntVar(&fps, "fps", 10, "movie frame rate")
	renderCmd.Flags().IntVar(&scale, "scale", 8, "movie pixels per cell")
	renderCmd.Flags().StringVar(&movieFormat, "format", "gif", "movie format (gif, mp4)")
	renderCmd.Flags().StringVar(&outName, "out", "", "output name without extension (default: inside the run directory)")
	renderCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no progress output")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a frame or the population curve to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame index, negative counts from the end")
	exportSVGCmd.Flags().IntVar(&scale, "scale", 8, "pixels per cell")
	exportSVGCmd.Flags().BoolVar(&population, "population", false, "export the population curve instead of a frame")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "final live fraction against initial density",
		Args:  cobra.NoArgs,
		RunE:  densitySweep,
	}
	sweepCmd.Flags().IntVar(&gridLength, "grid", 64, "grid side length")
	sweepCmd.Flags().IntVar(&sweepLen, "sweeps", 200, "total sweeps per run")
	sweepCmd.Flags().Float64Var(&densityMin, "min", 0.05, "lowest initial density")
	sweepCmd.Flags().Float64Var(&densityMax, "max", 0.95, "highest initial density")
	sweepCmd.Flags().IntVar(&steps, "steps", 10, "densities to try")
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "seeds per density")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 1, "first seed")
	sweepCmd.Flags().IntVar(&parallel, "parallel", 0, "runs in flight, 0 for no limit")
	sweepCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no progress output")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, analyzeCmd, renderCmd, exportJSONCmd, exportSVGCmd, sweepCmd, presetsCmd)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
