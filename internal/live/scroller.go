package live

import (
	"fmt"

	"map-creator/internal/maps"
	"map-creator/internal/noise"
	"map-creator/internal/render"
)

// Scroller streams a 1D profile to the left, one new column per frame.
type Scroller struct {
	asm   *maps.Assembler
	buf   *maps.Profile
	info  render.Info
	nextX int
	lastX int
	lastY int
}

// NewScroller fills a width x height buffer with a full profile and
// positions the cursor at width+1. New columns always clamp to the last
// row, whatever clamp the initial profile used.
func NewScroller(asm *maps.Assembler, width, height int) (*Scroller, error) {
	if dim := asm.Gen.Kernel().Dimension(); dim != 1 {
		return nil, fmt.Errorf("scrolling %dD terrain: %w", dim, noise.ErrNotImplemented)
	}
	if width < 1 || height < 1 {
		return nil, &noise.ConfigError{Field: "size", Reason: fmt.Sprintf("%dx%d must be positive", width, height)}
	}

	buf, _ := asm.Profile(width, height)
	stream := *asm
	stream.Clamp = maps.ClampTop

	return &Scroller{
		asm:   &stream,
		buf:   buf,
		info:  render.NewInfo(asm.Gen.Config(), width, height),
		nextX: width + 1,
	}, nil
}

// NextX is the coordinate the next Step samples.
func (s *Scroller) NextX() int { return s.nextX }

// Buffer returns a copy of the current frame.
func (s *Scroller) Buffer() *maps.Profile { return s.buf.Clone() }

func (s *Scroller) Last() (int, int) { return s.lastX, s.lastY }

// Step shifts every row left and writes the sample at NextX into the
// last column.
func (s *Scroller) Step() error {
	s.buf.ShiftLeft()

	r := s.asm.Point(float64(s.nextX), s.buf.Height)
	s.lastX, s.lastY = s.nextX, r.Y
	if r.Err == nil {
		r.Err = s.buf.Mark(s.buf.Width-1, r.Y)
	}
	if r.Err != nil {
		return &FrameError{X: s.nextX, Y: r.Y, Err: r.Err}
	}

	s.nextX++
	return nil
}

func (s *Scroller) Frame() string {
	return render.Frame(s.info, s.buf.Rows())
}
