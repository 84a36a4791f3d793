package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names a kernel implementation.
type Backend string

const (
	// BackendPerlin is the gradient noise of this package.
	BackendPerlin Backend = "perlin"
	// BackendLibrary delegates to github.com/aquilax/go-perlin.
	BackendLibrary Backend = "library"
	// BackendSimplex delegates to github.com/ojrac/opensimplex-go.
	BackendSimplex Backend = "simplex"
)

// ParseBackend validates a backend name; empty selects BackendPerlin.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case "":
		return BackendPerlin, nil
	case BackendPerlin, BackendLibrary, BackendSimplex:
		return b, nil
	}
	return "", &ConfigError{Field: "backend", Reason: fmt.Sprintf("unknown backend %q (available: perlin, library, simplex)", s)}
}

// KernelSpec selects and seeds a kernel.
type KernelSpec struct {
	Backend   Backend
	Dimension int
	Seed      int64
	Corners   Corners
}

// NewKernel builds the kernel described by s. Every kernel gets its own
// permutation state derived from s.Seed.
func NewKernel(s KernelSpec) (Kernel, error) {
	if s.Dimension < 1 || s.Dimension > 3 {
		return nil, &ConfigError{Field: "dimension", Reason: fmt.Sprintf("must be 1, 2 or 3, got %d", s.Dimension)}
	}

	switch s.Backend {
	case "", BackendPerlin:
		switch s.Dimension {
		case 1:
			return NewPerlin1D(NewTable(s.Seed)), nil
		case 2:
			return NewPerlin2D(NewTable(s.Seed), s.Corners), nil
		default:
			return NewPerlin3D(), nil
		}
	case BackendLibrary:
		if s.Dimension == 3 {
			return nil, fmt.Errorf("library backend in 3D: %w", ErrNotImplemented)
		}
		return NewLibrary(s.Dimension, s.Seed), nil
	case BackendSimplex:
		if s.Dimension == 3 {
			return nil, fmt.Errorf("simplex backend in 3D: %w", ErrNotImplemented)
		}
		return NewSimplex(s.Dimension, s.Seed), nil
	}
	return nil, &ConfigError{Field: "backend", Reason: fmt.Sprintf("unknown backend %q", s.Backend)}
}

// Library wraps a single-octave aquilax Perlin generator. The octave sum
// stays with Generator so every backend shares one compositor.
type Library struct {
	dim int
	p   *perlin.Perlin
}

// NewLibrary creates a 1D or 2D library kernel.
func NewLibrary(dim int, seed int64) *Library {
	return &Library{dim: dim, p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (k *Library) Dimension() int { return k.dim }

func (k *Library) Sample(p Point) float64 {
	if k.dim == 1 {
		return k.p.Noise1D(p.X)
	}
	return k.p.Noise2D(p.X, p.Y)
}

// Simplex wraps OpenSimplex noise. The 1D variant samples the X axis of
// the 2D field.
type Simplex struct {
	dim int
	n   opensimplex.Noise
}

// NewSimplex creates a 1D or 2D simplex kernel.
func NewSimplex(dim int, seed int64) *Simplex {
	return &Simplex{dim: dim, n: opensimplex.New(seed)}
}

func (k *Simplex) Dimension() int { return k.dim }

func (k *Simplex) Sample(p Point) float64 {
	if k.dim == 1 {
		return k.n.Eval2(p.X, 0)
	}
	return k.n.Eval2(p.X, p.Y)
}
