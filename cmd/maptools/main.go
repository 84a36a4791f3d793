package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"map-creator/internal/maps"
	"map-creator/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools validate <map-file>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools viz <map-file>")
			os.Exit(1)
		}
		runViz(args[0])
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools stats <map-file>")
			os.Exit(1)
		}
		runStats(args[0])
	case "all":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools all <maps-dir>")
			os.Exit(1)
		}
		os.Exit(runAll(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptools <command> <path>

Commands:
  validate <map-file>   Check a map against its .json sidecar
  viz      <map-file>   Render map as colored ASCII art
  stats    <map-file>   Show height distribution of a 1D map
  all      <maps-dir>   Run validate + viz + stats for every map with a sidecar`)
}

func load(path string) *maps.Text {
	m, err := maps.LoadMap(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return m
}

// loadInfo returns the sidecar of path, or nil when there is none.
func loadInfo(path string) (*maps.Info, error) {
	info, err := maps.LoadInfo(path + ".json")
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return info, err
}

// --- validate ---

func runValidate(path string) int {
	fmt.Printf("Validating %q...\n", path)
	m, err := maps.LoadMap(path)
	if err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return 1
	}
	info, err := loadInfo(path)
	if err != nil {
		fmt.Printf("  ERROR: sidecar: %v\n", err)
		return 1
	}

	problems := 0
	if info != nil {
		if info.Height != m.Height {
			fmt.Printf("  ERROR: %d rows, sidecar says height %d\n", m.Height, info.Height)
			problems++
		}
		if info.Dimension == 1 && info.Width != m.Width {
			fmt.Printf("  ERROR: %d columns, sidecar says width %d\n", m.Width, info.Width)
			problems++
		}
		if _, err := info.Noise.Config(); err != nil {
			fmt.Printf("  ERROR: sidecar noise settings: %v\n", err)
			problems++
		}
	}

	if m.IsProfile() {
		p, err := m.Profile()
		if err != nil {
			fmt.Printf("  ERROR: %v\n", err)
			return 1
		}
		empty := 0
		for _, y := range p.Heights() {
			if y < 0 {
				empty++
			}
		}
		// Skipped points leave their column empty.
		if info != nil && empty != len(info.Skipped) {
			fmt.Printf("  ERROR: %d empty columns, sidecar records %d skipped points\n", empty, len(info.Skipped))
			problems++
		}
	}

	if problems > 0 {
		fmt.Printf("  %d problem(s)\n", problems)
		return 1
	}
	fmt.Printf("  OK (%dx%d)\n", m.Width, m.Height)
	return 0
}

// --- viz ---

func runViz(path string) {
	m := load(path)
	fmt.Printf("%s (%dx%d)\n", m.Name, m.Width, m.Height)
	fmt.Print(render.Colorize(m.Rows))
}

// --- stats ---

func runStats(path string) {
	m := load(path)
	fmt.Printf("%s (%dx%d = %d cells)\n\n", m.Name, m.Width, m.Height, m.Width*m.Height)

	if info, err := loadInfo(path); err == nil && info != nil {
		n := info.Noise
		fmt.Printf("Seed %d, %s backend, %dD, %d octaves, freq %g x%g, ampl %g x%g\n\n",
			info.Seed, info.Backend, info.Dimension, n.Octaves, n.Frequency, n.FrequencyScale, n.Amplitude, n.AmplitudeScale)
	}

	if !m.IsProfile() {
		fmt.Println("Not a 1D profile; no height statistics")
		return
	}
	p, err := m.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	counts := make([]int, p.Height)
	empty := 0
	for _, y := range p.Heights() {
		if y < 0 {
			empty++
			continue
		}
		counts[y]++
	}

	for y, c := range counts {
		if c == 0 {
			continue
		}
		pct := float64(c) / float64(p.Width) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  row %-4d %4d (%5.1f%%) %s\n", y, c, pct, bar)
	}
	fmt.Printf("\nEmpty columns: %d/%d\n", empty, p.Width)
}

// --- all ---

func runAll(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading directory: %v\n", err)
		return 1
	}

	code := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, strings.TrimSuffix(entry.Name(), ".json"))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fmt.Printf("\n=== VALIDATE: %s ===\n", filepath.Base(path))
		if runValidate(path) != 0 {
			code = 1
			continue
		}
		fmt.Printf("\n=== VIZ: %s ===\n", filepath.Base(path))
		runViz(path)
		fmt.Printf("\n=== STATS: %s ===\n", filepath.Base(path))
		runStats(path)
	}
	return code
}
