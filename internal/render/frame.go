package render

import (
	"fmt"
	"strings"

	"map-creator/internal/noise"
)

// InfoRows is the number of lines Frame adds around the map: the info
// line, its separator and the floor.
const InfoRows = 3

// Info is the parameter summary printed above each live frame.
type Info struct {
	Frequency, FrequencyScale float64
	Amplitude, AmplitudeScale float64
	Width, Height             int
}

// NewInfo summarizes cfg for a width x height view.
func NewInfo(cfg noise.Config, width, height int) Info {
	return Info{
		Frequency:      cfg.Frequency,
		FrequencyScale: cfg.FrequencyScale,
		Amplitude:      cfg.Amplitude,
		AmplitudeScale: cfg.AmplitudeScale,
		Width:          width,
		Height:         height,
	}
}

// Table renders the info line and its dashed separator.
func (i Info) Table() string {
	const wall = " | "
	var sb strings.Builder
	fmt.Fprintf(&sb, "FREQ: %g%sFREQ SCALE: %g%s AMPL: %g%sAMPL SCALE: %g%sWIDTH: %d%sHEIGHT: %d",
		i.Frequency, wall, i.FrequencyScale, wall, i.Amplitude, wall, i.AmplitudeScale, wall, i.Width, wall, i.Height)
	sb.WriteString("\r\n")
	sb.WriteString(strings.Repeat("-", i.Width))
	sb.WriteString("\r\n")
	return sb.String()
}

// Floor is the line drawn under the map.
func Floor(width int) string {
	return strings.Repeat("=", width)
}

// Frame composes one full-screen frame: cursor home, info table, rows and
// floor. Rows are joined with CRLF so raw PTYs render them too.
func Frame(info Info, rows []string) string {
	var sb strings.Builder
	sb.WriteString(MoveTo(1, 1))
	sb.WriteString(info.Table())
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteString("\r\n")
	}
	sb.WriteString(Floor(info.Width))
	return sb.String()
}
