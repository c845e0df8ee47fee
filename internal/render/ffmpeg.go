package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/pkg/errors"

	"github.com/san-kum/golsim/internal/life"
)

// FFmpeg pipes raw RGB frames into an ffmpeg process and streams a
// fragmented MP4 to the writer.
type FFmpeg struct {
	Binary string
}

// NewFFmpeg uses binary, or "ffmpeg" from PATH when empty.
func NewFFmpeg(binary string) *FFmpeg {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &FFmpeg{Binary: binary}
}

func (f *FFmpeg) Ext() string { return "mp4" }

func (f *FFmpeg) Encode(ctx context.Context, w io.Writer, ts *life.TimeSeries, opts Options, progress Progress) error {
	if err := opts.validate(); err != nil {
		return err
	}
	bin, err := exec.LookPath(f.Binary)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCodecUnavailable, f.Binary, err)
	}

	fw, fh := opts.frameSize(ts.L)
	cmd := exec.CommandContext(ctx, bin,
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo", "-pix_fmt", "rgb24",
		"-s", fmt.Sprintf("%dx%d", fw, fh),
		"-r", strconv.Itoa(opts.FPS),
		"-i", "-",
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-movflags", "frag_keyframe+empty_moov",
		"-f", "mp4", "-",
	)
	var stderr bytes.Buffer
	cmd.Stdout = w
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return errors.Wrap(err, "[render.FFmpeg] failed to open stdin")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "[render.FFmpeg] failed to start %s", bin)
	}

	frame := make([]byte, fw*fh*3)
	var writeErr error
	for k := 0; k < ts.Frames && writeErr == nil; k++ {
		rgbFrame(frame, paletted(ts.Frame(k), opts, opts.title(k)))
		if _, writeErr = stdin.Write(frame); writeErr == nil {
			report(progress, k+1, ts.Frames)
		}
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return errors.Wrapf(err, "[render.FFmpeg] %s", bytes.TrimSpace(stderr.Bytes()))
	}
	return errors.Wrap(writeErr, "[render.FFmpeg] failed to write frame")
}
