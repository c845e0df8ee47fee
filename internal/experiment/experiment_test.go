package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/golsim/internal/config"
	"github.com/san-kum/golsim/internal/life"
)

func TestRunBlockPreset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Apply(config.GetPreset("block"))

	result, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Interval != 3 || result.Sweeps != 15 {
		t.Errorf("interval=%d sweeps=%d, want 3 and 15", result.Interval, result.Sweeps)
	}
	if result.Series.Frames != 6 {
		t.Errorf("expected 6 frames, got %d", result.Series.Frames)
	}
	for k := 0; k < result.Series.Frames; k++ {
		if !result.Series.Frame(k).Equal(result.Initial) {
			t.Errorf("frame %d differs from the initial block", k)
		}
	}
	if result.Metrics["population"] != 4 || result.Metrics["activity"] != 0 {
		t.Errorf("unexpected metrics %v", result.Metrics)
	}
	if result.Sweeper != "serial" {
		t.Errorf("auto sweeper on a 4 grid = %s, want serial", result.Sweeper)
	}
}

func TestRunRandomIsReproducible(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GridLength = 24
	cfg.Sweeps = 40
	cfg.Frames = 10
	cfg.SetSeed(9)

	a, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	cfg.Sweeper = "parallel"
	cfg.Workers = 3
	b, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if b.Sweeper != "parallel" {
		t.Errorf("sweeper = %s, want parallel", b.Sweeper)
	}
	for k := 0; k < a.Series.Frames; k++ {
		if !a.Series.Frame(k).Equal(b.Series.Frame(k)) {
			t.Errorf("frame %d differs between serial and parallel runs", k)
		}
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GridLength = 0
	if _, err := New(cfg).Run(context.Background()); !errors.Is(err, life.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Pattern = "nonexistent"
	if _, err := New(cfg).Run(context.Background()); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestRunUnknownSweeper(t *testing.T) {
	cfg := config.DefaultConfig()
	r := NewRegistry()
	delete(r.sweepers, "auto")

	if _, err := New(cfg).WithRegistry(r).Run(context.Background()); err == nil {
		t.Error("expected error for missing sweeper")
	}
}

func TestFrameProgress(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GridLength = 8
	cfg.Sweeps = 8
	cfg.Frames = 4

	var calls [][2]int
	exp := New(cfg)
	exp.AddObserver(NewFrameProgress(cfg.Frames, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}))

	if _, err := exp.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(calls) != 4 || calls[0] != [2]int{1, 4} || calls[3] != [2]int{4, 4} {
		t.Errorf("progress calls = %v", calls)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(config.DefaultConfig()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestListSweepers(t *testing.T) {
	names := NewRegistry().ListSweepers()
	if len(names) != 3 || names[0] != "auto" || names[2] != "serial" {
		t.Errorf("sweepers = %v", names)
	}
}

func TestEnsembleSeeds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GridLength = 16
	cfg.Sweeps = 10
	cfg.Frames = 5

	results, err := NewEnsemble(cfg, 4, 100, 2).Run(context.Background())
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	cfg.SetSeed(102)
	single, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !results[2].Initial.Equal(single.Initial) {
		t.Error("ensemble run 2 should use seed 102")
	}
	if results[0].Initial.Equal(results[1].Initial) {
		t.Error("different seeds gave identical initial grids")
	}
}

func TestEnsembleInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Frames = 0
	if _, err := NewEnsemble(cfg, 3, 1, 0).Run(context.Background()); !errors.Is(err, life.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestDensitySweep(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GridLength = 12
	cfg.Sweeps = 20
	cfg.Frames = 4

	var calls int
	points, err := RunDensitySweep(context.Background(), &DensitySweep{
		Base: cfg, Min: 0, Max: 1, Steps: 3, Runs: 2, SeedStart: 1,
	}, func(done, total int) { calls++ })
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(points) != 3 || calls != 3 {
		t.Fatalf("points=%d calls=%d, want 3 and 3", len(points), calls)
	}
	if points[0].Density != 0 || points[1].Density != 0.5 || points[2].Density != 1 {
		t.Errorf("densities = %v", points)
	}
	// empty and full grids both die out
	for _, i := range []int{0, 2} {
		if points[i].MeanFinal != 0 || points[i].Survived != 0 {
			t.Errorf("density %.1f should go extinct: %+v", points[i].Density, points[i])
		}
	}
}
