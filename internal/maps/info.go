package maps

import (
	"fmt"
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"

	"map-creator/internal/noise"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Info is the metadata sidecar written next to a saved map.
type Info struct {
	Name      string  `json:"name"`
	Dimension int     `json:"dimension"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Seed      int64   `json:"seed"`
	Backend   string  `json:"backend"`
	Corners   string  `json:"corners,omitempty"`
	Clamp     string  `json:"clamp"`
	Noise     JSONCfg `json:"noise"`
	Placed    int     `json:"placed"`
	Skipped   []Skip  `json:"skipped,omitempty"`
}

// JSONCfg mirrors noise.Config on disk.
type JSONCfg struct {
	Amplitude      float64 `json:"amplitude"`
	AmplitudeScale float64 `json:"amplitude_scale"`
	Frequency      float64 `json:"frequency"`
	FrequencyScale float64 `json:"frequency_scale"`
	Octaves        int     `json:"octaves"`
	Range          []int   `json:"range,omitempty"`
}

// Skip records one point that could not be placed.
type Skip struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Value float64 `json:"value"`
	Error string  `json:"error"`
}

// NewJSONCfg converts c for the sidecar.
func NewJSONCfg(c noise.Config) JSONCfg {
	jc := JSONCfg{
		Amplitude:      c.Amplitude,
		AmplitudeScale: c.AmplitudeScale,
		Frequency:      c.Frequency,
		FrequencyScale: c.FrequencyScale,
		Octaves:        c.Octaves,
	}
	if c.Range != nil {
		jc.Range = []int{c.Range.Low, c.Range.High}
	}
	return jc
}

// Config converts the sidecar form back.
func (jc JSONCfg) Config() (noise.Config, error) {
	c := noise.Config{
		Amplitude:      jc.Amplitude,
		AmplitudeScale: jc.AmplitudeScale,
		Frequency:      jc.Frequency,
		FrequencyScale: jc.FrequencyScale,
		Octaves:        jc.Octaves,
	}
	switch len(jc.Range) {
	case 0:
	case 2:
		c.Range = &noise.Range{Low: jc.Range[0], High: jc.Range[1]}
	default:
		return c, &noise.ConfigError{Field: "range", Reason: fmt.Sprintf("expected 2 values, got %d", len(jc.Range))}
	}
	return c, c.Validate()
}

// WithReport fills in the placement summary.
func (i *Info) WithReport(rep Report) {
	i.Placed = rep.Placed
	i.Skipped = i.Skipped[:0]
	for _, s := range rep.Skipped {
		sk := Skip{X: s.X, Y: s.Y, Value: s.Value, Error: s.Err.Error()}
		// JSON has no NaN or Inf; the error text already says what happened.
		if math.IsNaN(sk.Value) || math.IsInf(sk.Value, 0) {
			sk.Value = 0
		}
		i.Skipped = append(i.Skipped, sk)
	}
}

// Marshal encodes the sidecar.
func (i *Info) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal map info: %w", err)
	}
	return append(data, '\n'), nil
}

// LoadInfo reads a sidecar written by Marshal.
func LoadInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map info: %w", err)
	}
	var i Info
	if err := json.Unmarshal(data, &i); err != nil {
		return nil, fmt.Errorf("parse map info JSON: %w", err)
	}
	return &i, nil
}
