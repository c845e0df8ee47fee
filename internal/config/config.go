package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/golsim/internal/life"
)

const (
	DefaultGridLength = 64
	DefaultSweeps     = 100
	DefaultFrames     = 100
	DefaultDensity    = 0.5
	DefaultFPS        = 10
	DefaultScale      = 8
	DefaultFileName   = "test"
	DefaultSweeper    = "auto"
	DefaultFormat     = "gif"
)

type Config struct {
	GridLength    int     `yaml:"grid_length"`
	Sweeps        int     `yaml:"sweeps"`
	Frames        int     `yaml:"frames"`
	Seed          *int64  `yaml:"seed,omitempty"`
	Density       float64 `yaml:"density"`
	Pattern       string  `yaml:"pattern,omitempty"`
	FPS           int     `yaml:"fps"`
	Scale         int     `yaml:"scale"`
	MakeMovie     bool    `yaml:"make_movie"`
	MovieFormat   string  `yaml:"movie_format"`
	SaveEvolution bool    `yaml:"save_evolution"`
	FileName      string  `yaml:"file_name"`
	Sweeper       string  `yaml:"sweeper"`
	Workers       int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		GridLength:    DefaultGridLength,
		Sweeps:        DefaultSweeps,
		Frames:        DefaultFrames,
		Density:       DefaultDensity,
		FPS:           DefaultFPS,
		Scale:         DefaultScale,
		MakeMovie:     true,
		MovieFormat:   DefaultFormat,
		SaveEvolution: true,
		FileName:      DefaultFileName,
		Sweeper:       DefaultSweeper,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Overlay(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay reads a yaml file over cfg. Keys missing from the file keep
// their current value.
func Overlay(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[config.Overlay] failed to read file: %s", path)
	}
	return errors.Wrapf(yaml.Unmarshal(data, cfg), "[config.Overlay] failed to unmarshal: %s", path)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[config.Save] failed to marshal")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "[config.Save] failed to write file: %s", path)
}

// SeedValue returns the configured seed, 0 when none is set.
func (c *Config) SeedValue() int64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// SetSeed stores a seed owned by c; copies of c are not affected.
func (c *Config) SetSeed(seed int64) { c.Seed = &seed }

// Interval is the number of sweeps between recorded frames.
func (c *Config) Interval() int {
	return life.Interval(c.Sweeps, c.Frames)
}

// Validate reports the first invalid field as an error wrapping life.ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.GridLength <= 0:
		return invalid("grid_length must be positive, got %d", c.GridLength)
	case c.Frames <= 0:
		return invalid("frames must be positive, got %d", c.Frames)
	case c.Sweeps <= 0:
		return invalid("sweeps must be positive, got %d", c.Sweeps)
	case c.Density < 0 || c.Density > 1:
		return invalid("density must be in [0, 1], got %g", c.Density)
	case c.MakeMovie && c.FPS <= 0:
		return invalid("fps must be positive, got %d", c.FPS)
	case c.MakeMovie && c.Scale <= 0:
		return invalid("scale must be positive, got %d", c.Scale)
	case c.FileName == "":
		return invalid("file_name must not be empty")
	}
	switch c.MovieFormat {
	case "gif", "mp4":
	default:
		return invalid("unknown movie_format %q", c.MovieFormat)
	}
	switch c.Sweeper {
	case "auto", "serial", "parallel":
	default:
		return invalid("unknown sweeper %q", c.Sweeper)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", life.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
