package noise

import (
	"errors"
	"math"
)

// ErrNotImplemented is returned for capabilities that only exist as a
// placeholder, currently anything three dimensional.
var ErrNotImplemented = errors.New("not implemented")

// Point is a sample position. Kernels read only the axes they use.
type Point struct {
	X, Y, Z float64
}

// Scale multiplies every axis by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// Kernel computes one coherent-noise sample at a continuous coordinate.
type Kernel interface {
	Dimension() int
	Sample(p Point) float64
}

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

// Perlin1D is gradient noise along X.
type Perlin1D struct {
	table *Table
}

// NewPerlin1D creates a 1D kernel over its own permutation table.
func NewPerlin1D(t *Table) *Perlin1D {
	return &Perlin1D{table: t}
}

func (k *Perlin1D) Dimension() int { return 1 }

// Gradient returns the slope, -1 or +1, at an integer lattice point.
func (k *Perlin1D) Gradient(p int) float64 {
	r := k.table.At(p)
	q := reference[r&0xFF]
	if float64(reference[q])/256.0 < 0.5 {
		return -1.0
	}
	return 1.0
}

// Sample interpolates the contributions of the two surrounding lattice
// points. It is zero on every lattice point.
func (k *Perlin1D) Sample(p Point) float64 {
	x := p.X
	p0 := math.Floor(x)
	p1 := p0 + 1.0

	faded := Fade(x - p0)

	g0 := k.Gradient(int(p0))
	g1 := k.Gradient(int(p1))

	return (1.0-faded)*g0*(x-p0) + faded*g1*(x-p1)
}

// Corners selects how the 2D kernel builds the corner-to-point offsets.
type Corners int

const (
	// CornersLegacy builds offset vectors with the axes swapped as
	// (dy, dx). Maps saved by earlier versions depend on it.
	CornersLegacy Corners = iota
	// CornersIndependent uses the true (dx, dy) offset for each corner.
	CornersIndependent
)

// String implements fmt.Stringer.
func (c Corners) String() string {
	switch c {
	case CornersLegacy:
		return "legacy"
	case CornersIndependent:
		return "independent"
	}
	return "unknown"
}

// ParseCorners is the inverse of Corners.String.
func ParseCorners(s string) (Corners, error) {
	switch s {
	case "", "legacy":
		return CornersLegacy, nil
	case "independent":
		return CornersIndependent, nil
	}
	return 0, &ConfigError{Field: "corners", Reason: "must be legacy or independent, got " + s}
}

// latticeOffsets are the corners added to the floored position, after the
// origin corner itself.
var latticeOffsets = [3][2]float64{
	{1.0, 0.0}, {0.0, 1.0}, {1.0, 1.0},
}

// Perlin2D is gradient noise over the X/Y plane.
type Perlin2D struct {
	table   *Table
	corners Corners
}

// NewPerlin2D creates a 2D kernel.
func NewPerlin2D(t *Table, c Corners) *Perlin2D {
	return &Perlin2D{table: t, corners: c}
}

func (k *Perlin2D) Dimension() int { return 2 }

// Gradient returns the unit vector at lattice point (i, j).
func (k *Perlin2D) Gradient(i, j int) (float64, float64) {
	at := k.table.At
	xi := at(at(at(i)))
	yi := (at(xi) + at(j)) & 0xFF

	x := float64(xi)/255.0*2.0 - 1.0
	y := float64(yi)/255.0*2.0 - 1.0

	// x is zero only for xi = 127.5, so l > 0.
	l := math.Sqrt(x*x + y*y)
	return x / l, y / l
}

func (k *Perlin2D) corner(cx, cy, px, py float64) float64 {
	gx, gy := k.Gradient(int(cx), int(cy))
	dx, dy := px-cx, py-cy
	if k.corners == CornersLegacy {
		dx, dy = dy, dx
	}
	return gx*dx + gy*dy
}

// Sample blends the four corner contributions, horizontal fade first.
func (k *Perlin2D) Sample(p Point) float64 {
	x0, y0 := math.Floor(p.X), math.Floor(p.Y)

	n0 := k.corner(x0, y0, p.X, p.Y)
	n1 := k.corner(x0+latticeOffsets[0][0], y0+latticeOffsets[0][1], p.X, p.Y)
	n2 := k.corner(x0+latticeOffsets[1][0], y0+latticeOffsets[1][1], p.X, p.Y)
	n3 := k.corner(x0+latticeOffsets[2][0], y0+latticeOffsets[2][1], p.X, p.Y)

	h := Fade(p.X - x0)
	v := Fade(p.Y - y0)

	bottom := (1.0-h)*n0 + h*n1
	top := (1.0-h)*n2 + h*n3

	return (1.0-v)*bottom + v*top
}

// Perlin3D holds the place of a volumetric kernel. It has no algorithm
// yet and samples a flat field.
type Perlin3D struct{}

// NewPerlin3D creates the placeholder kernel.
func NewPerlin3D() *Perlin3D {
	return &Perlin3D{}
}

func (k *Perlin3D) Dimension() int { return 3 }

func (k *Perlin3D) Sample(Point) float64 { return 0 }
