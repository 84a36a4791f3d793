package maps

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cell values of a height profile.
const (
	Empty   = ' '
	Terrain = 'X'
)

// ErrOutOfGrid is reported for a point whose row or column falls outside
// the grid.
var ErrOutOfGrid = errors.New("point outside grid")

// Map is a rendered grid that can be written out as text.
type Map interface {
	Size() (width, height int)
	Rows() []string
	String() string
}

// Profile is a height-field silhouette: one Terrain cell per column, the
// rest Empty. Cells are indexed [y][x].
type Profile struct {
	Width, Height int
	Cells         [][]byte
}

// NewProfile returns an all-Empty profile.
func NewProfile(w, h int) *Profile {
	cells := make([][]byte, h)
	for y := range cells {
		row := make([]byte, w)
		for x := range row {
			row[x] = Empty
		}
		cells[y] = row
	}
	return &Profile{Width: w, Height: h, Cells: cells}
}

// Mark sets (x, y) to Terrain.
func (p *Profile) Mark(x, y int) error {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return fmt.Errorf("mark [%d, %d] in %dx%d: %w", x, y, p.Width, p.Height, ErrOutOfGrid)
	}
	p.Cells[y][x] = Terrain
	return nil
}

// ShiftLeft drops column 0 of every row and appends an Empty column.
func (p *Profile) ShiftLeft() {
	for _, row := range p.Cells {
		if len(row) == 0 {
			continue
		}
		copy(row, row[1:])
		row[len(row)-1] = Empty
	}
}

// Column returns the row of the first Terrain cell in column x, or -1.
func (p *Profile) Column(x int) int {
	for y, row := range p.Cells {
		if x >= 0 && x < len(row) && row[x] == Terrain {
			return y
		}
	}
	return -1
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	c := &Profile{Width: p.Width, Height: p.Height, Cells: make([][]byte, len(p.Cells))}
	for y, row := range p.Cells {
		c.Cells[y] = append([]byte(nil), row...)
	}
	return c
}

func (p *Profile) Size() (int, int) { return p.Width, p.Height }

func (p *Profile) Rows() []string {
	rows := make([]string, len(p.Cells))
	for y, row := range p.Cells {
		rows[y] = string(row)
	}
	return rows
}

// String joins the rows with newlines, without a trailing one.
func (p *Profile) String() string {
	return strings.Join(p.Rows(), "\n")
}

// Field holds one noise value per cell, indexed [y][x]. Scaled fields
// hold integers and print without a fraction.
type Field struct {
	Width, Height int
	Values        [][]float64
	Scaled        bool
}

// NewField returns a zeroed field.
func NewField(w, h int, scaled bool) *Field {
	vals := make([][]float64, h)
	for y := range vals {
		vals[y] = make([]float64, w)
	}
	return &Field{Width: w, Height: h, Values: vals, Scaled: scaled}
}

func (f *Field) Size() (int, int) { return f.Width, f.Height }

func (f *Field) Rows() []string {
	rows := make([]string, len(f.Values))
	var sb strings.Builder
	for y, line := range f.Values {
		sb.Reset()
		for _, v := range line {
			if f.Scaled {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					sb.WriteByte(Empty)
					continue
				}
				sb.WriteString(strconv.Itoa(int(v)))
			} else {
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String joins the rows with newlines, without a trailing one.
func (f *Field) String() string {
	return strings.Join(f.Rows(), "\n")
}
