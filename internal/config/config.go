// Package config holds the command line settings shared by the map
// creator commands and turns them into generators.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"map-creator/internal/live"
	"map-creator/internal/maps"
	"map-creator/internal/noise"
	"map-creator/internal/render"
)

const (
	DefaultWidth  = 40
	DefaultHeight = 40
	DefaultDepth  = 40
	DefaultName   = "newmap"
	DefaultSpeed  = 3.0
)

// Settings are the generation parameters of one run.
type Settings struct {
	Width, Height, Depth int
	Dimension            int

	Amplitude      float64
	AmplitudeScale float64
	Frequency      float64
	FrequencyScale float64
	Octaves        int
	Range          string // "low,high"; empty picks a default per dimension

	Seed        int64 // 0 picks a time based seed
	Backend     string
	Corners     string
	LegacyClamp bool

	Name        string
	Path        string // directory or s3://bucket/prefix
	Speed       float64
	Interactive bool
	Info        bool
}

// Defaults returns the settings of a run without flags.
func Defaults() Settings {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	nc := noise.DefaultConfig()
	return Settings{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Depth:          DefaultDepth,
		Dimension:      1,
		Amplitude:      nc.Amplitude,
		AmplitudeScale: nc.AmplitudeScale,
		Frequency:      nc.Frequency,
		FrequencyScale: nc.FrequencyScale,
		Octaves:        nc.Octaves,
		Seed:           noise.DefaultSeed,
		Backend:        string(noise.BackendPerlin),
		Corners:        noise.CornersLegacy.String(),
		Name:           DefaultName,
		Path:           cwd,
		Speed:          DefaultSpeed,
	}
}

// RegisterNoise binds the noise flags, each under a short and a long name.
func (s *Settings) RegisterNoise(fs *flag.FlagSet) {
	intVar(fs, &s.Width, "W", "width", s.Width, "desired map width")
	intVar(fs, &s.Height, "H", "height", s.Height, "desired map height")
	intVar(fs, &s.Depth, "D", "depth", s.Depth, "desired map depth")
	intVar(fs, &s.Dimension, "d", "dimension", s.Dimension, "map dimension: 1, 2 or 3")

	floatVar(fs, &s.Amplitude, "a", "amplitude", s.Amplitude, "initial amplitude")
	floatVar(fs, &s.Frequency, "f", "frequency", s.Frequency, "initial frequency")
	intVar(fs, &s.Octaves, "o", "octaves", s.Octaves, "number of octaves per point")
	floatVar(fs, &s.AmplitudeScale, "A", "ampl_scale", s.AmplitudeScale, "scales the amplitude")
	floatVar(fs, &s.FrequencyScale, "F", "freq_scale", s.FrequencyScale, "scales the frequency")
	stringVar(fs, &s.Range, "R", "mapping_range", s.Range,
		"comma-separated range the values are mapped to, e.g. 0,20 (default 0,<height>-1 in 1D, 0,255 otherwise)")

	fs.Int64Var(&s.Seed, "seed", s.Seed, "permutation seed (0 = random)")
	fs.StringVar(&s.Backend, "backend", s.Backend, "noise backend: perlin, library or simplex")
	fs.StringVar(&s.Corners, "corners", s.Corners, "2D corner offsets: legacy or independent")
	fs.BoolVar(&s.LegacyClamp, "legacy-clamp", s.LegacyClamp, "clamp 1D rows at height instead of height-1")
	floatVar(fs, &s.Speed, "S", "speed", s.Speed, "update speed (frames per second) in live mode")
}

// RegisterOutput binds the flags of the static map writer.
func (s *Settings) RegisterOutput(fs *flag.FlagSet) {
	stringVar(fs, &s.Name, "N", "map_name", s.Name, "map file name")
	stringVar(fs, &s.Path, "P", "path", s.Path, "directory or s3://bucket/prefix to save the map to")
	boolVar(fs, &s.Interactive, "I", "interactive", s.Interactive, "interactive mode; width and height follow the terminal")
	fs.BoolVar(&s.Info, "info", s.Info, "also write <map_name>.json with the generation parameters")
}

func intVar(fs *flag.FlagSet, p *int, short, long string, v int, usage string) {
	fs.IntVar(p, short, v, usage)
	fs.IntVar(p, long, v, usage)
}

func floatVar(fs *flag.FlagSet, p *float64, short, long string, v float64, usage string) {
	fs.Float64Var(p, short, v, usage)
	fs.Float64Var(p, long, v, usage)
}

func stringVar(fs *flag.FlagSet, p *string, short, long string, v string, usage string) {
	fs.StringVar(p, short, v, usage)
	fs.StringVar(p, long, v, usage)
}

func boolVar(fs *flag.FlagSet, p *bool, short, long string, v bool, usage string) {
	fs.BoolVar(p, short, v, usage)
	fs.BoolVar(p, long, v, usage)
}

// ParseRange parses "low,high". Values past the second are ignored.
func ParseRange(s string) (*noise.Range, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return nil, &noise.ConfigError{Field: "range", Reason: fmt.Sprintf("%q must be two comma-separated integers", s)}
	}
	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, &noise.ConfigError{Field: "range", Reason: fmt.Sprintf("low bound %q is not an integer", parts[0])}
	}
	high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, &noise.ConfigError{Field: "range", Reason: fmt.Sprintf("high bound %q is not an integer", parts[1])}
	}
	if low >= high {
		return nil, &noise.ConfigError{Field: "range", Reason: fmt.Sprintf("low %d must be below high %d", low, high)}
	}
	return &noise.Range{Low: low, High: high}, nil
}

// ParseSize parses "WxH".
func ParseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height %q", parts[1])
	}
	return w, h, nil
}

// Validate checks everything that can be checked before sampling.
func (s *Settings) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return &noise.ConfigError{Field: "size", Reason: fmt.Sprintf("%dx%d must be positive", s.Width, s.Height)}
	}
	if _, err := s.KernelSpec(); err != nil {
		return err
	}
	if _, err := s.NoiseConfig(); err != nil {
		return err
	}
	if s.Speed <= 0 {
		return &noise.ConfigError{Field: "speed", Reason: fmt.Sprintf("must be > 0, got %g", s.Speed)}
	}
	return nil
}

// EffectiveSeed resolves a zero seed to a time based one, once.
func (s *Settings) EffectiveSeed() int64 {
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	return s.Seed
}

// DefaultRange is the output range used when none is given.
func (s *Settings) DefaultRange() noise.Range {
	if s.Dimension == 1 {
		return noise.Range{Low: 0, High: s.Height - 1}
	}
	return noise.Range{Low: 0, High: 255}
}

// NoiseConfig builds the octave configuration.
func (s *Settings) NoiseConfig() (noise.Config, error) {
	c := noise.Config{
		Amplitude:      s.Amplitude,
		AmplitudeScale: s.AmplitudeScale,
		Frequency:      s.Frequency,
		FrequencyScale: s.FrequencyScale,
		Octaves:        s.Octaves,
	}
	if s.Range != "" {
		r, err := ParseRange(s.Range)
		if err != nil {
			return c, err
		}
		c.Range = r
	} else {
		r := s.DefaultRange()
		c.Range = &r
	}
	return c, c.Validate()
}

// KernelSpec selects the kernel.
func (s *Settings) KernelSpec() (noise.KernelSpec, error) {
	b, err := noise.ParseBackend(s.Backend)
	if err != nil {
		return noise.KernelSpec{}, err
	}
	c, err := noise.ParseCorners(s.Corners)
	if err != nil {
		return noise.KernelSpec{}, err
	}
	if s.Dimension < 1 || s.Dimension > 3 {
		return noise.KernelSpec{}, &noise.ConfigError{Field: "dimension", Reason: fmt.Sprintf("must be 1, 2 or 3, got %d", s.Dimension)}
	}
	return noise.KernelSpec{Backend: b, Dimension: s.Dimension, Seed: s.EffectiveSeed(), Corners: c}, nil
}

// Clamp returns the row clamp for 1D maps.
func (s *Settings) Clamp() maps.Clamp {
	if s.LegacyClamp {
		return maps.ClampLegacy
	}
	return maps.ClampTop
}

// Assembler builds a fresh kernel, generator and assembler.
func (s *Settings) Assembler() (*maps.Assembler, error) {
	spec, err := s.KernelSpec()
	if err != nil {
		return nil, err
	}
	cfg, err := s.NoiseConfig()
	if err != nil {
		return nil, err
	}
	k, err := noise.NewKernel(spec)
	if err != nil {
		return nil, err
	}
	g, err := noise.NewGenerator(k, cfg)
	if err != nil {
		return nil, err
	}
	return &maps.Assembler{Gen: g, Clamp: s.Clamp()}, nil
}

// FitTerminal sizes the map to the area a cols x rows terminal leaves
// below the info lines. Without -R the 1D range follows the new height.
func (s *Settings) FitTerminal(cols, rows int) {
	s.Width, s.Height = cols, rows-render.InfoRows
}

// Animation builds the live animation for the dimension: a scroller in 1D,
// a wave in 2D.
func (s *Settings) Animation() (live.Animation, error) {
	asm, err := s.Assembler()
	if err != nil {
		return nil, err
	}
	switch s.Dimension {
	case 1:
		return live.NewScroller(asm, s.Width, s.Height)
	case 2:
		return live.NewWave(asm.Gen.Kernel(), asm.Gen.Config(), s.Width, s.Height)
	}
	return nil, fmt.Errorf("%dD live mode: %w", s.Dimension, noise.ErrNotImplemented)
}

// MapInfo describes the run for the metadata sidecar.
func (s *Settings) MapInfo(cfg noise.Config) *maps.Info {
	clamp := "top"
	if s.LegacyClamp {
		clamp = "legacy"
	}
	info := &maps.Info{
		Name:      s.Name,
		Dimension: s.Dimension,
		Width:     s.Width,
		Height:    s.Height,
		Seed:      s.Seed,
		Backend:   s.Backend,
		Clamp:     clamp,
		Noise:     maps.NewJSONCfg(cfg),
	}
	if s.Dimension == 2 {
		info.Corners = s.Corners
	}
	return info
}
