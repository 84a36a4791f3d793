package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

func ClearScreen() string { return CSI + "2J" }

func HideCursor() string { return CSI + "?25l" }

func ShowCursor() string { return CSI + "?25h" }

func EnableAltScreen() string { return CSI + "?1049h" }

func DisableAltScreen() string { return CSI + "?1049l" }

// Enter prepares a terminal for live frames.
func Enter() string {
	return EnableAltScreen() + HideCursor() + ClearScreen()
}

// Leave restores the terminal after live frames.
func Leave() string {
	return Reset + ShowCursor() + DisableAltScreen()
}

// RGB is a 24-bit terminal color.
type RGB [3]uint8

// Cell is one map character with its colors.
type Cell struct {
	Ch     rune
	Fg, Bg RGB
}

// WriteCellSGR writes a cell as a full reset + truecolor SGR followed by
// the character, so no state leaks into the next cell.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	sb.WriteString(CSI + "0;38;2;")
	writeRGB(sb, c.Fg)
	sb.WriteString(";48;2;")
	writeRGB(sb, c.Bg)
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

func writeRGB(sb *strings.Builder, c RGB) {
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
}

// palette holds the VGA values of the named colors map legends use.
var palette = map[string]RGB{
	"black":        {0, 0, 0},
	"blue":         {0, 0, 170},
	"cyan":         {0, 170, 170},
	"white":        {170, 170, 170},
	"gray":         {85, 85, 85},
	"bright_green": {85, 255, 85},
	"bright_white": {255, 255, 255},
}

// ResolveColor returns the color for a name, white if unknown.
func ResolveColor(name string) RGB {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette["white"]
}
