package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/golsim/internal/analysis"
	"github.com/san-kum/golsim/internal/config"
	"github.com/san-kum/golsim/internal/export"
	"github.com/san-kum/golsim/internal/life"
	"github.com/san-kum/golsim/internal/render"
	"github.com/san-kum/golsim/internal/storage"
	"github.com/san-kum/golsim/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGRID\tSWEEPS\tFRAMES\tSTART\tSWEEPER\tPOP")

	for _, run := range runs {
		start := fmt.Sprintf("random %.2f", run.Density)
		if run.Pattern != "" {
			start = run.Pattern
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%.0f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.GridLength,
			run.Sweeps,
			run.Frames,
			start,
			run.Sweeper,
			run.Metrics["population"],
		)
	}

	return w.Flush()
}

// frameOf resolves a possibly negative frame index against ts.
func frameOf(ts *life.TimeSeries, index int) (*life.Grid, int, error) {
	k := index
	if k < 0 {
		k += ts.Frames
	}
	if k < 0 || k >= ts.Frames {
		return nil, 0, fmt.Errorf("frame %d out of range for %d frames", index, ts.Frames)
	}
	return ts.Frame(k), k, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ts, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	g, k, err := frameOf(ts, frameIndex)
	if err != nil {
		return err
	}

	canvas := viz.CanvasFor(g.L)
	canvas.DrawGrid(g)

	fmt.Println(viz.Title.Render(fmt.Sprintf("%s  frame %d/%d  sweep %d", meta.ID, k, ts.Frames-1, k*meta.Interval)))
	fmt.Println(viz.GridPanel.Render(canvas.String()))
	fmt.Printf("%s %s\n", viz.MetricLabel.Render("population:"), viz.MetricValue.Render(fmt.Sprint(g.Population())))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, pops, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d, interval: %d sweeps\n\n", len(pops), meta.Interval)

	graph := asciigraph.Plot(analysis.PopulationSeries(pops),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("population per frame"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Println(viz.SparklineChart(analysis.PopulationSeries(pops), 80))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ts, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	report := analysis.Classify(ts)

	fmt.Println(viz.Title.Render("analysis: " + meta.ID))
	fmt.Printf("  %s %s\n", viz.MetricLabel.Render("kind:"), viz.MetricValue.Render(string(report.Kind)))
	if report.ExtinctAt >= 0 {
		fmt.Printf("  %s frame %d (sweep %d)\n", viz.MetricLabel.Render("extinct at:"), report.ExtinctAt, report.ExtinctAt*meta.Interval)
	}
	if report.Period > 0 {
		fmt.Printf("  %s frame %d, period %d frames (%d sweeps)\n",
			viz.MetricLabel.Render("cycle:"), report.CycleStart, report.Period, report.Period*meta.Interval)
	}

	series := analysis.PopulationSeries(report.Populations)
	if len(series) < 4 {
		return nil
	}

	ps := analysis.PowerSpectrum(series)
	fmt.Println()
	fmt.Println(asciigraph.Plot(ps[1:],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population power spectrum"),
	))
	fmt.Println()

	if period := analysis.DominantPeriod(series); period > 0 {
		fmt.Printf("dominant period: %.2f frames (%.1f sweeps)\n", period, period*float64(meta.Interval))
	} else {
		fmt.Println("dominant period: none (constant population)")
	}
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	ts, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	name := outName
	if name == "" {
		name = filepath.Join(st.Dir(runID), "movie")
	}
	return makeMovieFile(cmd.Context(), movieFormat, name, ts, render.Options{FPS: fps, Scale: scale})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ts, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, export.NewSeriesData(meta.ID, ts, meta.Interval, meta.Metrics))
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	if population {
		_, pops, err := st.LoadPopulation(runID)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, export.PopulationToSVG(pops, 800, 300, "#225ea8"))
		return err
	}

	ts, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	g, _, err := frameOf(ts, frameIndex)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, export.GridToSVG(g, float64(scale)))
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tGRID\tSWEEPS\tFRAMES\tSTART\tSWEEPER")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		start := fmt.Sprintf("random %.2f", p.Density)
		if p.Pattern != "" {
			start = p.Pattern
		}
		sweeper := p.Sweeper
		if sweeper == "" {
			sweeper = config.DefaultSweeper
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n", name, p.GridLength, p.Sweeps, p.Frames, start, sweeper)
	}
	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
