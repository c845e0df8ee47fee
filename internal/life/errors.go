package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when the simulator is called with a grid
	// size, frame count, interval or buffer that cannot describe a valid run.
	ErrInvalidConfig = errors.New("life: invalid configuration")

	// ErrShapeMismatch indicates the time series does not match (L, L, nFrames+1).
	ErrShapeMismatch = fmt.Errorf("%w: time series shape mismatch", ErrInvalidConfig)

	// ErrInvalidCell indicates a grid value outside {Dead, Alive}.
	ErrInvalidCell = fmt.Errorf("%w: cell value not 0 or 1", ErrInvalidConfig)
)

// FrameError wraps an error with the frame at which the run stopped.
type FrameError struct {
	Frame   int
	Sweeps  int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (after %d sweeps): %v", e.Frame, e.Sweeps, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
