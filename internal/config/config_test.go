package config

import (
	"errors"
	"flag"
	"testing"

	"map-creator/internal/live"
	"map-creator/internal/maps"
	"map-creator/internal/noise"
	"map-creator/internal/render"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in        string
		low, high int
		wantErr   bool
	}{
		{"0,20", 0, 20, false},
		{" -5 , 5", -5, 5, false},
		{"0,20,99", 0, 20, false},
		{"20", 0, 0, true},
		{"a,20", 0, 0, true},
		{"0,b", 0, 0, true},
		{"5,5", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRange(tt.in)
			if tt.wantErr {
				var ce *noise.ConfigError
				if !errors.As(err, &ce) {
					t.Fatalf("ParseRange(%q) err = %v, want *noise.ConfigError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if r.Low != tt.low || r.High != tt.high {
				t.Errorf("ParseRange(%q) = %+v, want {%d %d}", tt.in, *r, tt.low, tt.high)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("80x24")
	if err != nil || w != 80 || h != 24 {
		t.Errorf("ParseSize(80x24) = %d, %d, %v", w, h, err)
	}
	for _, bad := range []string{"80", "x24", "80x", "0x10", "axb"} {
		if _, _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) accepted", bad)
		}
	}
}

func TestFlags(t *testing.T) {
	s := Defaults()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.RegisterNoise(fs)
	s.RegisterOutput(fs)

	args := []string{"-W", "12", "-height", "7", "-o", "2", "-R", "1,5", "-N", "ridge", "-info"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if s.Width != 12 || s.Height != 7 || s.Octaves != 2 || s.Range != "1,5" || s.Name != "ridge" || !s.Info {
		t.Errorf("parsed settings = %+v", s)
	}
	if s.Frequency != 300 || s.Amplitude != 1 || s.Dimension != 1 {
		t.Errorf("defaults lost: frequency %g amplitude %g dimension %d", s.Frequency, s.Amplitude, s.Dimension)
	}
}

func TestDefaultRange(t *testing.T) {
	s := Defaults()
	s.Height = 20
	cfg, err := s.NoiseConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Range != (noise.Range{Low: 0, High: 19}) {
		t.Errorf("1D default range = %+v, want {0 19}", *cfg.Range)
	}

	s.Dimension = 2
	cfg, _ = s.NoiseConfig()
	if *cfg.Range != (noise.Range{Low: 0, High: 255}) {
		t.Errorf("2D default range = %+v, want {0 255}", *cfg.Range)
	}

	s.Range = "3,9"
	cfg, _ = s.NoiseConfig()
	if *cfg.Range != (noise.Range{Low: 3, High: 9}) {
		t.Errorf("explicit range = %+v, want {3 9}", *cfg.Range)
	}
}

func TestFitTerminalRange(t *testing.T) {
	s := Defaults()
	s.FitTerminal(100, 30)
	if s.Width != 100 || s.Height != 30-render.InfoRows {
		t.Fatalf("map area = %dx%d, want 100x%d", s.Width, s.Height, 30-render.InfoRows)
	}
	cfg, err := s.NoiseConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := noise.Range{Low: 0, High: 30 - render.InfoRows - 1}
	if *cfg.Range != want {
		t.Errorf("terminal range = %+v, want %+v", *cfg.Range, want)
	}

	s = Defaults()
	s.Range = "0,39"
	s.FitTerminal(100, 30)
	cfg, _ = s.NoiseConfig()
	if *cfg.Range != (noise.Range{Low: 0, High: 39}) {
		t.Errorf("explicit range = %+v, want {0 39}", *cfg.Range)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Width = 0 }},
		{"dimension", func(s *Settings) { s.Dimension = 4 }},
		{"backend", func(s *Settings) { s.Backend = "value" }},
		{"corners", func(s *Settings) { s.Corners = "diagonal" }},
		{"octaves", func(s *Settings) { s.Octaves = 0 }},
		{"amplitude", func(s *Settings) { s.Amplitude = -1 }},
		{"range", func(s *Settings) { s.Range = "9,3" }},
		{"speed", func(s *Settings) { s.Speed = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.modify(&s)
			var ce *noise.ConfigError
			if err := s.Validate(); !errors.As(err, &ce) {
				t.Errorf("Validate() = %v, want *noise.ConfigError", err)
			}
		})
	}

	s := Defaults()
	if err := s.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestSeed(t *testing.T) {
	s := Defaults()
	if s.EffectiveSeed() != noise.DefaultSeed {
		t.Errorf("EffectiveSeed() = %d, want %d", s.EffectiveSeed(), noise.DefaultSeed)
	}
	s.Seed = 0
	seed := s.EffectiveSeed()
	if seed == 0 || s.EffectiveSeed() != seed {
		t.Errorf("time based seed not fixed: %d then %d", seed, s.EffectiveSeed())
	}
}

func TestAssembler(t *testing.T) {
	s := Defaults()
	s.Width, s.Height = 10, 5
	asm, err := s.Assembler()
	if err != nil {
		t.Fatal(err)
	}
	m, rep, err := asm.Generate(s.Width, s.Height)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Placed != 10 || len(rep.Skipped) != 0 {
		t.Errorf("report = %+v, want 10 placed", rep)
	}
	if w, h := m.Size(); w != 10 || h != 5 {
		t.Errorf("size = %dx%d", w, h)
	}

	s.LegacyClamp = true
	if s.Clamp() != maps.ClampLegacy {
		t.Errorf("Clamp() = %v, want ClampLegacy", s.Clamp())
	}
}

func TestAnimation(t *testing.T) {
	s := Defaults()
	s.Width, s.Height = 20, 8

	a, err := s.Animation()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.(*live.Scroller); !ok {
		t.Errorf("1D animation is %T, want *live.Scroller", a)
	}

	s.Dimension = 2
	a, err = s.Animation()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.(*live.Wave); !ok {
		t.Errorf("2D animation is %T, want *live.Wave", a)
	}

	s.Dimension = 3
	if _, err := s.Animation(); !errors.Is(err, noise.ErrNotImplemented) {
		t.Errorf("3D animation err = %v, want ErrNotImplemented", err)
	}
}
