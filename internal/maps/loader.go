package maps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Text is a saved map read back without interpretation.
type Text struct {
	Name   string
	Width  int // longest row
	Height int
	Rows   []string
}

// LoadMap reads a saved map file from disk.
func LoadMap(path string) (*Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	defer f.Close()

	t, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	t.Name = path
	return t, nil
}

// ReadText splits r into rows.
func ReadText(r io.Reader) (*Text, error) {
	t := &Text{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		row := strings.TrimRight(sc.Text(), "\r")
		if len(row) > t.Width {
			t.Width = len(row)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	t.Height = len(t.Rows)
	return t, nil
}

// IsProfile reports whether every cell is Empty or Terrain.
func (t *Text) IsProfile() bool {
	for _, row := range t.Rows {
		for i := 0; i < len(row); i++ {
			if row[i] != Empty && row[i] != Terrain {
				return false
			}
		}
	}
	return true
}

// Profile converts the text into a Profile. Rows must share one width and
// hold only Empty and Terrain cells.
func (t *Text) Profile() (*Profile, error) {
	p := NewProfile(t.Width, t.Height)
	for y, row := range t.Rows {
		if len(row) != t.Width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), t.Width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case Empty:
			case Terrain:
				p.Cells[y][x] = Terrain
			default:
				return nil, fmt.Errorf("cell (%d,%d) is %q, expected %q or %q", x, y, row[x], Empty, Terrain)
			}
		}
	}
	return p, nil
}

// ParseProfile reads a saved profile.
func ParseProfile(r io.Reader) (*Profile, error) {
	t, err := ReadText(r)
	if err != nil {
		return nil, err
	}
	return t.Profile()
}

// Heights returns, per column, the row of its Terrain cell or -1.
func (p *Profile) Heights() []int {
	hs := make([]int, p.Width)
	for x := range hs {
		hs[x] = p.Column(x)
	}
	return hs
}
