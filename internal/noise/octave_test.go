package noise

import (
	"errors"
	"math"
	"testing"
)

// constKernel returns a fixed value and records the points it saw.
type constKernel struct {
	v   float64
	got []Point
}

func (k *constKernel) Dimension() int { return 1 }

func (k *constKernel) Sample(p Point) float64 {
	k.got = append(k.got, p)
	return k.v
}

func TestSingleOctaveIsOneSample(t *testing.T) {
	k := NewPerlin1D(NewTable(DefaultSeed))
	cfg := Config{Amplitude: 2.5, AmplitudeScale: 1, Frequency: 7, FrequencyScale: 1, Octaves: 1}
	g, err := NewGenerator(k, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		p := Point{X: float64(i) * 0.91}
		want := k.Sample(p.Scale(1.0/cfg.Frequency)) * cfg.Amplitude
		if got := g.Accumulate(p); got != want {
			t.Errorf("Accumulate(%v) = %v, want %v", p.X, got, want)
		}
	}
}

func TestOctaveSchedule(t *testing.T) {
	k := &constKernel{v: 1}
	g, err := NewGenerator(k, Config{Amplitude: 8, AmplitudeScale: 0.5, Frequency: 4, FrequencyScale: 2, Octaves: 3})
	if err != nil {
		t.Fatal(err)
	}

	// amplitudes (8/2^i)*0.5 = 4, 2, 1
	if got := g.Sum(Point{X: 16}); got != 7 {
		t.Errorf("Sum = %v, want 7", got)
	}

	// frequencies (4/2^i)*2 = 8, 4, 2, so X=16 is sampled at 2, 4, 8
	wantX := []float64{2, 4, 8}
	if len(k.got) != len(wantX) {
		t.Fatalf("kernel sampled %d times, want %d", len(k.got), len(wantX))
	}
	for i, p := range k.got {
		if p.X != wantX[i] {
			t.Errorf("octave %d sampled X=%v, want %v", i, p.X, wantX[i])
		}
	}
}

func TestRangeScale(t *testing.T) {
	tests := []struct {
		r    Range
		in   float64
		want int
	}{
		{Range{0, 100}, -1, 0},
		{Range{0, 100}, 1, 100},
		{Range{0, 100}, 0, 50},
		{Range{0, 39}, 0, 19},
		{Range{0, 255}, 0.5, 191},
		{Range{-10, 10}, -1, -10},
		// no clamping outside [-1, 1]
		{Range{0, 100}, 1.5, 125},
		{Range{0, 100}, -1.5, -25},
		// saturation instead of an undefined conversion
		{Range{0, 4}, 1e30, math.MaxInt},
		{Range{0, 4}, -1e30, math.MinInt},
		{Range{3, 9}, math.NaN(), 3},
		// High-Low does not fit an int
		{Range{math.MinInt / 2, math.MaxInt/2 + 1}, 1, math.MaxInt/2 + 1},
		{Range{math.MinInt / 2, math.MaxInt/2 + 1}, -1, math.MinInt / 2},
	}
	for _, tt := range tests {
		if got := tt.r.Scale(tt.in); got != tt.want {
			t.Errorf("%v.Scale(%v) = %d, want %d", tt.r, tt.in, got, tt.want)
		}
	}
}

func TestAccumulateScales(t *testing.T) {
	for _, v := range []float64{-1, 1} {
		k := &constKernel{v: v}
		cfg := Config{Amplitude: 1, AmplitudeScale: 1, Frequency: 1, FrequencyScale: 1, Octaves: 1}.WithRange(0, 100)
		g, err := NewGenerator(k, cfg)
		if err != nil {
			t.Fatal(err)
		}
		want := 0.0
		if v > 0 {
			want = 100
		}
		if got := g.Accumulate(Point{}); got != want {
			t.Errorf("kernel %v: Accumulate = %v, want %v", v, got, want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	base := DefaultConfig()
	tests := []struct {
		name  string
		mod   func(*Config)
		field string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero amplitude", func(c *Config) { c.Amplitude = 0 }, "amplitude"},
		{"negative frequency", func(c *Config) { c.Frequency = -1 }, "frequency"},
		{"zero octaves", func(c *Config) { c.Octaves = 0 }, "octaves"},
		{"inverted range", func(c *Config) { c.Range = &Range{Low: 5, High: 5} }, "range"},
		{"valid range", func(c *Config) { c.Range = &Range{Low: 0, High: 5} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mod(&c)
			err := c.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if _, err := NewGenerator(&constKernel{}, c); err == nil {
				t.Error("NewGenerator accepted an invalid config")
			}
		})
	}
}

func TestGeneratorOwnsRange(t *testing.T) {
	cfg := DefaultConfig().WithRange(0, 10)
	g, err := NewGenerator(&constKernel{v: 1}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Range.High = 1000
	if got := g.Config().Range.High; got != 10 {
		t.Errorf("generator range changed with caller copy: High = %d", got)
	}
}

func TestAccumulateKeepsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1)} {
		g, err := NewGenerator(&constKernel{v: v}, DefaultConfig().WithRange(0, 39))
		if err != nil {
			t.Fatal(err)
		}
		got := g.Accumulate(Point{X: 1})
		if !math.IsNaN(got) && !math.IsInf(got, 0) {
			t.Errorf("kernel %v: Accumulate = %v, want it left non-finite", v, got)
		}
	}
}
