// Package live animates terrain profiles frame by frame.
package live

import (
	"context"
	"fmt"
	"io"
)

// FrameError aborts a live loop. X and Y are the last attempted point.
type FrameError struct {
	X, Y int
	Err  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame at point (%d, %d): %v", e.X, e.Y, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Animation produces successive frames.
type Animation interface {
	// Step advances the animation by one frame.
	Step() error
	// Frame renders the current frame for a terminal.
	Frame() string
	// Last returns the most recently attempted point.
	Last() (x, y int)
}

// Run steps a, writes each frame to out and waits on p, until ctx is done.
// Cancellation ends the loop after the frame in flight and is not an error.
func Run(ctx context.Context, a Animation, p Pacer, out io.Writer) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := a.Step(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, a.Frame()); err != nil {
			x, y := a.Last()
			return &FrameError{X: x, Y: y, Err: fmt.Errorf("write frame: %w", err)}
		}
		if err := p.Wait(ctx); err != nil {
			return nil
		}
	}
}
