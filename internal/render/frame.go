package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/golsim/internal/life"
)

// captionBand is the height in pixels of the title strip above the grid.
const captionBand = 17

var palette = color.Palette{DeadColor, AliveColor}

// FrameTitle labels frame k the way the original movies did.
func FrameTitle(k int) string {
	return fmt.Sprintf("t = %.3e", float64(k))
}

func (o Options) title(k int) string {
	if o.Title == nil {
		return ""
	}
	return o.Title(k)
}

// frameSize is the pixel size of a rendered frame for a grid of side l.
func (o Options) frameSize(l int) (w, h int) {
	w = l * o.Scale
	h = w
	if o.Title != nil {
		h += captionBand
	}
	return w, h
}

// paletted draws one grid with each cell as a scale×scale block under an
// optional centred title; index 1 is alive.
func paletted(g *life.Grid, opts Options, title string) *image.Paletted {
	w, h := opts.frameSize(g.L)
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)

	top := h - w
	if title != "" && top > 0 {
		face := basicfont.Face7x13
		d := &font.Drawer{Dst: img, Src: image.NewUniform(AliveColor), Face: face}
		x := max(0, (w-d.MeasureString(title).Ceil())/2)
		d.Dot = fixed.P(x, (top+face.Ascent)/2+1)
		d.DrawString(title)
	}

	scale := opts.Scale
	for i := 0; i < g.L; i++ {
		for j := 0; j < g.L; j++ {
			if g.At(i, j) != life.Alive {
				continue
			}
			for py := top + i*scale; py < top+(i+1)*scale; py++ {
				for px := j * scale; px < (j+1)*scale; px++ {
					img.SetColorIndex(px, py, 1)
				}
			}
		}
	}
	return img
}

// rgbFrame expands img into packed rgb24 bytes.
func rgbFrame(dst []byte, img *image.Paletted) {
	for i, idx := range img.Pix {
		r, g, b, _ := img.Palette[idx].RGBA()
		dst[i*3], dst[i*3+1], dst[i*3+2] = byte(r>>8), byte(g>>8), byte(b>>8)
	}
}
