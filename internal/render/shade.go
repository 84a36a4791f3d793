package render

import "strings"

// Blank is the empty map cell.
const Blank = ' '

// Legend assigns a color name to a map character.
var Legend = map[byte]string{
	' ': "black",
	'X': "bright_green",
	'-': "blue",
}

// CellFor returns the colored cell for one map character. Digits of a
// scaled field are drawn as grays, '0' darkest.
func CellFor(ch byte) Cell {
	if ch >= '0' && ch <= '9' {
		v := uint8(40 + int(ch-'0')*23)
		return Cell{Ch: rune(ch), Fg: ResolveColor("bright_white"), Bg: RGB{v, v, v}}
	}
	c := Cell{Ch: rune(ch), Bg: ResolveColor("black"), Fg: ResolveColor(Legend[ch])}
	if ch == Blank {
		c.Fg = c.Bg
	}
	return c
}

// Colorize renders rows as colored terminal text, one line per row.
func Colorize(rows []string) string {
	var sb strings.Builder
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			WriteCellSGR(&sb, CellFor(row[i]))
		}
		sb.WriteString(Reset)
		sb.WriteByte('\n')
	}
	return sb.String()
}
