package live

import (
	"context"
	"time"
)

// Pacer blocks between frames. It returns an error once ctx is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// PacerFunc adapts a function to Pacer.
type PacerFunc func(ctx context.Context) error

func (f PacerFunc) Wait(ctx context.Context) error { return f(ctx) }

// TickerPacer paces frames with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer running at fps frames per second.
// Non-positive rates fall back to one frame per second.
func NewTickerPacer(fps float64) *TickerPacer {
	interval := time.Second
	if fps > 0 {
		interval = time.Duration(float64(time.Second) / fps)
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
