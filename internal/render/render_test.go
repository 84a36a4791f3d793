package render

import (
	"strings"
	"testing"

	"map-creator/internal/noise"
)

func TestFrameLayout(t *testing.T) {
	info := NewInfo(noise.DefaultConfig(), 4, 2)
	out := Frame(info, []string{" X  ", "X XX"})

	if !strings.HasPrefix(out, MoveTo(1, 1)) {
		t.Fatalf("frame does not start at home: %q", out)
	}
	lines := strings.Split(strings.TrimPrefix(out, MoveTo(1, 1)), "\r\n")
	want := []string{
		"FREQ: 300 | FREQ SCALE: 1 |  AMPL: 1 | AMPL SCALE: 1 | WIDTH: 4 | HEIGHT: 2",
		"----",
		" X  ",
		"X XX",
		"====",
	}
	if len(lines) != len(want) {
		t.Fatalf("frame has %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if extra := len(lines) - 2; extra != InfoRows {
		t.Errorf("frame adds %d lines around the map, InfoRows = %d", extra, InfoRows)
	}
}

func TestCellFor(t *testing.T) {
	tests := []struct {
		name   string
		ch     byte
		fg, bg RGB
	}{
		{"terrain", 'X', RGB{85, 255, 85}, RGB{0, 0, 0}},
		{"empty", ' ', RGB{0, 0, 0}, RGB{0, 0, 0}},
		{"water", '-', RGB{0, 0, 170}, RGB{0, 0, 0}},
		{"zero", '0', RGB{255, 255, 255}, RGB{40, 40, 40}},
		{"nine", '9', RGB{255, 255, 255}, RGB{247, 247, 247}},
		{"unknown", '?', RGB{170, 170, 170}, RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CellFor(tt.ch)
			if c.Fg != tt.fg {
				t.Errorf("fg = %v, want %v", c.Fg, tt.fg)
			}
			if c.Bg != tt.bg {
				t.Errorf("bg = %v, want %v", c.Bg, tt.bg)
			}
		})
	}
}

func TestColorize(t *testing.T) {
	out := Colorize([]string{"X ", " X"})
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
	if n := strings.Count(out, "X"); n != 2 {
		t.Errorf("got %d terrain cells, want 2", n)
	}
	if !strings.Contains(out, "\x1b[0;38;2;85;255;85;48;2;0;0;0mX") {
		t.Errorf("terrain cell SGR missing from %q", out)
	}
}
