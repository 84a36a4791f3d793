package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"map-creator/internal/config"
	"map-creator/internal/live"
	"map-creator/internal/render"
	"map-creator/internal/store"
	"map-creator/internal/term"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	s := config.Defaults()
	s.RegisterNoise(flag.CommandLine)
	s.RegisterOutput(flag.CommandLine)
	region := flag.String("region", os.Getenv("AWS_REGION"), "AWS region for s3:// paths")
	flag.Parse()

	if s.Interactive {
		if err := runInteractive(&s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runStatic(&s, *region); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStatic(s *config.Settings, region string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	sink, err := store.Open(s.Path, region)
	if err != nil {
		return err
	}

	asm, err := s.Assembler()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Generating %dx%d %dD map %q (seed %d, %s)...\n",
		s.Width, s.Height, s.Dimension, s.Name, s.Seed, s.Backend)

	m, rep, err := asm.Generate(s.Width, s.Height)
	if err != nil {
		return err
	}
	if n := len(rep.Skipped); n > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d of %d points\n", n, n+rep.Placed)
	}

	ctx := context.Background()
	data := []byte(m.String())
	if err := sink.Put(ctx, s.Name, data); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", sink.Location(s.Name), len(data))

	if !s.Info {
		return nil
	}
	info := s.MapInfo(asm.Gen.Config())
	info.WithReport(rep)
	meta, err := info.Marshal()
	if err != nil {
		return err
	}
	name := s.Name + ".json"
	if err := sink.Put(ctx, name, meta); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", sink.Location(name), len(meta))
	return nil
}

// runInteractive animates terrain sized to the terminal until interrupted.
func runInteractive(s *config.Settings) error {
	cols, rows, err := term.Size(os.Stdout)
	if err != nil {
		return err
	}
	s.FitTerminal(cols, rows)
	if err := s.Validate(); err != nil {
		return err
	}
	anim, err := s.Animation()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pacer := live.NewTickerPacer(s.Speed)
	defer pacer.Stop()

	io.WriteString(os.Stdout, render.Enter())
	err = live.Run(ctx, anim, pacer, os.Stdout)
	io.WriteString(os.Stdout, render.Leave())
	return err
}
