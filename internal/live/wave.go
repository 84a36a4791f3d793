package live

import (
	"fmt"

	"map-creator/internal/maps"
	"map-creator/internal/noise"
	"map-creator/internal/render"
)

// Wave animates a 2D noise field as a moving profile: frame n draws row
// n of the field, each value mapped onto the frame height.
type Wave struct {
	asm           *maps.Assembler
	width, height int
	info          render.Info
	frame         *maps.Profile
	slice         int
	lastX, lastY  int
}

// NewWave maps k onto the range (0, height-1), whatever cfg.Range says.
func NewWave(k noise.Kernel, cfg noise.Config, width, height int) (*Wave, error) {
	if dim := k.Dimension(); dim != 2 {
		return nil, fmt.Errorf("wave over %dD noise: %w", dim, noise.ErrNotImplemented)
	}
	if width < 1 || height < 2 {
		return nil, &noise.ConfigError{Field: "size", Reason: fmt.Sprintf("%dx%d too small for a wave", width, height)}
	}
	g, err := noise.NewGenerator(k, cfg.WithRange(0, height-1))
	if err != nil {
		return nil, err
	}
	return &Wave{
		asm:    &maps.Assembler{Gen: g, Clamp: maps.ClampTop},
		width:  width,
		height: height,
		info:   render.NewInfo(cfg, width, height),
		frame:  maps.NewProfile(width, height),
	}, nil
}

// Slice is the field row the next Step draws.
func (w *Wave) Slice() int { return w.slice }

// Buffer returns a copy of the current frame.
func (w *Wave) Buffer() *maps.Profile { return w.frame.Clone() }

func (w *Wave) Last() (int, int) { return w.lastX, w.lastY }

// Step draws a fresh frame from the next field row.
func (w *Wave) Step() error {
	frame := maps.NewProfile(w.width, w.height)
	for x := 0; x < w.width; x++ {
		v := w.asm.Gen.Accumulate(noise.Point{X: float64(x), Y: float64(w.slice)})
		y, err := w.asm.RowFor(v, w.height)
		w.lastX, w.lastY = x, y
		if err == nil {
			err = frame.Mark(x, y)
		}
		if err != nil {
			return &FrameError{X: x, Y: y, Err: err}
		}
	}
	w.frame = frame
	w.slice++
	return nil
}

func (w *Wave) Frame() string {
	return render.Frame(w.info, w.frame.Rows())
}
