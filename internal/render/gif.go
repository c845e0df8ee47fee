package render

import (
	"context"
	"image/gif"
	"io"

	"github.com/pkg/errors"

	"github.com/san-kum/golsim/internal/life"
)

type GIF struct{}

func NewGIF() *GIF { return &GIF{} }

func (g *GIF) Ext() string { return "gif" }

// Delay converts frames per second to the GIF delay unit of 1/100 s.
func Delay(fps int) int {
	return max(1, (100+fps/2)/fps)
}

func (g *GIF) Encode(ctx context.Context, w io.Writer, ts *life.TimeSeries, opts Options, progress Progress) error {
	if err := opts.validate(); err != nil {
		return err
	}

	anim := gif.GIF{LoopCount: 0}
	delay := Delay(opts.FPS)

	for k := 0; k < ts.Frames; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		anim.Image = append(anim.Image, paletted(ts.Frame(k), opts, opts.title(k)))
		anim.Delay = append(anim.Delay, delay)
		report(progress, k+1, ts.Frames)
	}

	return errors.Wrap(gif.EncodeAll(w, &anim), "[render.GIF] failed to encode")
}
