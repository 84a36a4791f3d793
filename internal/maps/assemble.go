package maps

import (
	"errors"
	"fmt"
	"log"
	"math"

	"map-creator/internal/noise"
)

// ErrNonFinite is reported when the generator yields NaN or an infinity.
var ErrNonFinite = errors.New("non-finite noise value")

// Clamp decides where values at or above the grid height land.
type Clamp int

const (
	// ClampTop pins them to the last row, height-1.
	ClampTop Clamp = iota
	// ClampLegacy pins them to height. That row does not exist, so such
	// points are skipped.
	ClampLegacy
)

// PointResult is the outcome of placing one sample.
type PointResult struct {
	X, Y  int
	Value float64
	Err   error
}

// OK reports whether the point was placed.
func (r PointResult) OK() bool { return r.Err == nil }

// Report summarizes a profile assembly.
type Report struct {
	Placed  int
	Skipped []PointResult
}

// Assembler samples a Generator across a grid.
type Assembler struct {
	Gen   *noise.Generator
	Clamp Clamp
	Logf  func(format string, args ...any) // defaults to log.Printf
}

func (a *Assembler) logf(format string, args ...any) {
	if a.Logf != nil {
		a.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// RowFor maps a sample onto a row index of a grid of the given height.
func (a *Assembler) RowFor(v float64, height int) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	// Bounds are checked before the conversion; int() of a float beyond
	// the int range is undefined.
	switch {
	case v < 0:
		return 0, nil
	case v >= float64(height):
		if a.Clamp == ClampLegacy {
			return height, nil
		}
		return height - 1, nil
	}
	return int(v), nil
}

// Point samples column x of a profile of the given height.
func (a *Assembler) Point(x float64, height int) PointResult {
	v := a.Gen.Accumulate(noise.Point{X: x})
	y, err := a.RowFor(v, height)
	return PointResult{X: int(x), Y: y, Value: v, Err: err}
}

// Profile samples once per column and marks the resulting row. Points that
// cannot be placed leave their column empty and are logged and reported.
func (a *Assembler) Profile(width, height int) (*Profile, Report) {
	p := NewProfile(width, height)
	var rep Report
	for x := 0; x < width; x++ {
		r := a.Point(float64(x), height)
		if r.Err == nil {
			r.Err = p.Mark(r.X, r.Y)
		}
		if r.Err != nil {
			a.logf("Skipping point [%d, %d]: %v", r.X, r.Y, r.Err)
			rep.Skipped = append(rep.Skipped, r)
			continue
		}
		rep.Placed++
	}
	return p, rep
}

// Field stores the sample of every (x, y) cell.
func (a *Assembler) Field(width, height int) *Field {
	f := NewField(width, height, a.Gen.Config().Range != nil)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Values[y][x] = a.Gen.Accumulate(noise.Point{X: float64(x), Y: float64(y)})
		}
	}
	return f
}

// Generate assembles the map matching the kernel's dimension.
func (a *Assembler) Generate(width, height int) (Map, Report, error) {
	if width < 1 || height < 1 {
		return nil, Report{}, &noise.ConfigError{Field: "size", Reason: fmt.Sprintf("%dx%d must be positive", width, height)}
	}
	switch dim := a.Gen.Kernel().Dimension(); dim {
	case 1:
		p, rep := a.Profile(width, height)
		return p, rep, nil
	case 2:
		f := a.Field(width, height)
		return f, a.fieldReport(f), nil
	default:
		return nil, Report{}, fmt.Errorf("%dD map: %w", dim, noise.ErrNotImplemented)
	}
}

// fieldReport counts the placed cells of f. Non-finite samples are
// reported and logged as skipped.
func (a *Assembler) fieldReport(f *Field) Report {
	var rep Report
	for y, line := range f.Values {
		for x, v := range line {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				a.logf("Skipping point [%d, %d]: %v", x, y, ErrNonFinite)
				rep.Skipped = append(rep.Skipped, PointResult{X: x, Y: y, Value: v, Err: ErrNonFinite})
				continue
			}
			rep.Placed++
		}
	}
	return rep
}
