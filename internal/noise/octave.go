package noise

import (
	"fmt"
	"math"
)

// ConfigError reports an invalid generation parameter. It is returned
// before any sampling happens.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Range is an integer output interval, Low < High.
type Range struct {
	Low, High int
}

// Scale maps v from [-1, 1] onto [Low, High], truncating toward zero.
// Values outside [-1, 1] land outside the range; callers clamp. Results
// beyond the int range saturate at math.MinInt or math.MaxInt, and NaN
// maps to Low.
func (r Range) Scale(v float64) int {
	v = (v + 1.0) / 2.0
	f := (float64(r.High)-float64(r.Low))*v + float64(r.Low)
	switch {
	case math.IsNaN(f):
		return r.Low
	case f >= maxIntFloat:
		return math.MaxInt
	case f <= minIntFloat:
		return math.MinInt
	}
	return int(f)
}

// float64(math.MaxInt) rounds up to 2^63, which int cannot hold, so the
// upper test is >=.
const (
	maxIntFloat = float64(math.MaxInt)
	minIntFloat = float64(math.MinInt)
)

// Config holds the octave parameters of one generation run.
type Config struct {
	Amplitude      float64
	AmplitudeScale float64
	Frequency      float64
	FrequencyScale float64
	Octaves        int
	Range          *Range // nil leaves the raw sum
}

// DefaultConfig matches the map creator's command line defaults.
func DefaultConfig() Config {
	return Config{
		Amplitude:      1.0,
		AmplitudeScale: 1.0,
		Frequency:      300.0,
		FrequencyScale: 1.0,
		Octaves:        4,
	}
}

// Validate checks the bounds every Generator relies on.
func (c Config) Validate() error {
	switch {
	case !(c.Amplitude > 0):
		return &ConfigError{Field: "amplitude", Reason: fmt.Sprintf("must be > 0, got %g", c.Amplitude)}
	case !(c.Frequency > 0):
		return &ConfigError{Field: "frequency", Reason: fmt.Sprintf("must be > 0, got %g", c.Frequency)}
	case c.Octaves < 1:
		return &ConfigError{Field: "octaves", Reason: fmt.Sprintf("must be >= 1, got %d", c.Octaves)}
	case c.Range != nil && c.Range.Low >= c.Range.High:
		return &ConfigError{Field: "range", Reason: fmt.Sprintf("low %d must be below high %d", c.Range.Low, c.Range.High)}
	}
	return nil
}

// WithRange returns a copy of c mapped onto [low, high].
func (c Config) WithRange(low, high int) Config {
	c.Range = &Range{Low: low, High: high}
	return c
}

// Generator sums octaves of one kernel into fractal noise.
type Generator struct {
	kernel Kernel
	cfg    Config
}

// NewGenerator validates cfg and binds it to k.
func NewGenerator(k Kernel, cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Range != nil {
		r := *cfg.Range
		cfg.Range = &r
	}
	return &Generator{kernel: k, cfg: cfg}, nil
}

// Kernel returns the underlying kernel.
func (g *Generator) Kernel() Kernel { return g.kernel }

// Config returns a copy of the bound configuration.
func (g *Generator) Config() Config {
	c := g.cfg
	if c.Range != nil {
		r := *c.Range
		c.Range = &r
	}
	return c
}

// Sum returns the raw octave sum at p. Octave i samples at frequency
// (F/2^i)*FS with amplitude (A/2^i)*AS, so later octaves add finer and
// weaker detail.
func (g *Generator) Sum(p Point) float64 {
	res := 0.0
	for i := 0; i < g.cfg.Octaves; i++ {
		div := math.Exp2(float64(i))
		freq := (g.cfg.Frequency / div) * g.cfg.FrequencyScale
		ampl := (g.cfg.Amplitude / div) * g.cfg.AmplitudeScale
		res += g.kernel.Sample(p.Scale(1.0/freq)) * ampl
	}
	return res
}

// Accumulate returns Sum, remapped onto the configured range if any.
// Non-finite sums are returned unscaled so callers can detect them.
func (g *Generator) Accumulate(p Point) float64 {
	res := g.Sum(p)
	if g.cfg.Range != nil && !math.IsNaN(res) && !math.IsInf(res, 0) {
		return float64(g.cfg.Range.Scale(res))
	}
	return res
}
