package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/golsim/internal/config"
	"github.com/san-kum/golsim/internal/experiment"
	"github.com/san-kum/golsim/internal/life"
	"github.com/san-kum/golsim/internal/render"
	"github.com/san-kum/golsim/internal/storage"
	"github.com/san-kum/golsim/internal/viz"
)

// resolveConfig applies defaults, then the preset, then the config file,
// then any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	if configFile != "" {
		if err := config.Overlay(configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		cfg.GridLength = gridLength
	}
	if flags.Changed("sweeps") {
		cfg.Sweeps = sweeps
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("seed") || cfg.Seed == nil {
		cfg.SetSeed(seed)
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternName
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("movie") {
		cfg.MakeMovie = makeMovie
	}
	if flags.Changed("format") {
		cfg.MovieFormat = movieFormat
	}
	if flags.Changed("save") {
		cfg.SaveEvolution = saveRun
	}
	if flags.Changed("name") {
		cfg.FileName = fileName
	}
	if flags.Changed("sweeper") {
		cfg.Sweeper = sweeperName
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, cfg.Validate()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	start := "random fill"
	if cfg.Pattern != "" {
		start = cfg.Pattern
	}
	status("running %dx%d grid, %d sweeps, %d frames every %d sweeps (%s)",
		cfg.GridLength, cfg.GridLength, cfg.Sweeps, cfg.Frames, cfg.Interval(), start)

	var result *experiment.Result
	err = withProgress(ctx, "Sweeping:", func(ctx context.Context, report func(done, total int)) error {
		exp := experiment.New(cfg)
		exp.AddObserver(experiment.NewFrameProgress(cfg.Frames, report))
		var err error
		result, err = exp.Run(ctx)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %d sweeps in %v (%s sweeper)\n",
		viz.StatusOK.Render("done"), result.Sweeps, result.Elapsed, result.Sweeper)
	printMetrics(result.Metrics)

	if cfg.SaveEvolution {
		if err := saveEvolution(cfg, result); err != nil {
			return err
		}
	}

	if cfg.MakeMovie {
		if err := makeMovieFile(ctx, cfg.MovieFormat, cfg.FileName, result.Series, render.Options{FPS: cfg.FPS, Scale: cfg.Scale}); err != nil {
			return err
		}
	}

	return nil
}

func saveEvolution(cfg *config.Config, result *experiment.Result) error {
	path := cfg.FileName + ".npy"
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := storage.WriteNPY(f, result.Series); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	status("saved evolution to %s", path)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Name:       cfg.FileName,
		Seed:       cfg.SeedValue(),
		GridLength: cfg.GridLength,
		Sweeps:     result.Sweeps,
		Frames:     cfg.Frames,
		Interval:   result.Interval,
		Density:    cfg.Density,
		Pattern:    cfg.Pattern,
		Sweeper:    result.Sweeper,
		Elapsed:    result.Elapsed,
		Metrics:    result.Metrics,
	}, result.Series)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", viz.MetricLabel.Render("run id:"), viz.MetricValue.Render(runID))
	return nil
}

// makeMovieFile renders ts to name.<ext> with each frame titled by its
// index. A missing ffmpeg falls back to gif.
func makeMovieFile(ctx context.Context, format, name string, ts *life.TimeSeries, opts render.Options) error {
	opts.Title = render.FrameTitle
	enc, err := render.ForFormat(format)
	if err != nil {
		return err
	}

	var path string
	err = withProgress(ctx, "Rendering:", func(ctx context.Context, report func(done, total int)) error {
		var err error
		path, err = render.RenderFile(ctx, enc, name, ts, opts, report)
		return err
	})
	if errors.Is(err, render.ErrCodecUnavailable) {
		fmt.Println(viz.StatusError.Render("ffmpeg not found, writing gif instead"))
		return makeMovieFile(ctx, "gif", name, ts, opts)
	}
	if err != nil {
		return err
	}
	status("wrote %s", path)
	return nil
}

// withProgress runs work with a Bubble Tea bar on a terminal, a plain
// redrawn bar otherwise, and no output at all under --quiet.
func withProgress(ctx context.Context, title string, work func(ctx context.Context, report func(done, total int)) error) error {
	switch {
	case quiet:
		return work(ctx, func(int, int) {})
	case isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()):
		return viz.RunProgress(ctx, os.Stdout, title, work)
	default:
		return work(ctx, viz.TextProgress(os.Stdout, title, 50, 3))
	}
}

func status(format string, args ...any) {
	if quiet {
		return
	}
	fmt.Println(viz.Subtle.Render(fmt.Sprintf(format, args...)))
}

func printMetrics(metrics map[string]float64) {
	if quiet || len(metrics) == 0 {
		return
	}
	fmt.Println(viz.Title.Render("metrics"))
	for _, name := range sortedKeys(metrics) {
		fmt.Printf("  %s %s\n", viz.MetricLabel.Render(name+":"), viz.MetricValue.Render(fmt.Sprintf("%.6g", metrics[name])))
	}
}
