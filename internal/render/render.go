// Package render turns a recorded time series into an animation, one heat
// map frame per recorded grid, in frame order.
package render

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/san-kum/golsim/internal/life"
)

// ErrCodecUnavailable is returned when an encoder's external codec is missing.
var ErrCodecUnavailable = errors.New("render: codec unavailable")

// Two-colour heat map taken from the ends of the YlGnBu colour map.
var (
	DeadColor  = color.RGBA{0xff, 0xff, 0xd9, 0xff}
	AliveColor = color.RGBA{0x08, 0x1d, 0x58, 0xff}
)

// Progress is called after each frame with the number of frames done so far.
type Progress func(done, total int)

type Options struct {
	FPS   int
	Scale int
	// Title, when set, labels each frame in a strip above the grid.
	Title func(frame int) string
}

func (o Options) validate() error {
	if o.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", life.ErrInvalidConfig, o.FPS)
	}
	if o.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %d", life.ErrInvalidConfig, o.Scale)
	}
	return nil
}

type Encoder interface {
	Ext() string
	Encode(ctx context.Context, w io.Writer, ts *life.TimeSeries, opts Options, progress Progress) error
}

// ForFormat returns the encoder for "gif" or "mp4".
func ForFormat(format string) (Encoder, error) {
	switch format {
	case "gif":
		return NewGIF(), nil
	case "mp4":
		return NewFFmpeg(""), nil
	}
	return nil, fmt.Errorf("%w: unknown movie format %q", life.ErrInvalidConfig, format)
}

// RenderFile encodes ts into name plus the encoder's extension and returns
// the path written. A failed render leaves no partial file behind.
func RenderFile(ctx context.Context, enc Encoder, name string, ts *life.TimeSeries, opts Options, progress Progress) (string, error) {
	path := name + "." + enc.Ext()
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "[render.RenderFile] failed to create %s", path)
	}

	if err := enc.Encode(ctx, f, ts, opts, progress); err != nil {
		f.Close()
		os.Remove(path)
		return "", errors.Wrapf(err, "[render.RenderFile] %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "[render.RenderFile] failed to close %s", path)
	}
	return path, nil
}

func report(progress Progress, done, total int) {
	if progress != nil {
		progress(done, total)
	}
}
