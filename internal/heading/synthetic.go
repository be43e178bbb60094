package heading

import (
	"context"
	"time"

	"dashboard/internal/clock"
)

const SyntheticInterval = 100 * time.Millisecond

// Synthetic 无传感器时每 100ms 递增 1 度
// Synthetic advances one degree every 100ms when no sensor is present
type Synthetic struct {
	Interval  time.Duration
	NewTicker clock.NewTickerFunc
	Start     int
}

func NewSynthetic(interval time.Duration) *Synthetic {
	if interval <= 0 {
		interval = SyntheticInterval
	}
	return &Synthetic{Interval: interval, NewTicker: clock.NewRealTicker}
}

func (s *Synthetic) Name() string { return "synthetic" }

func (s *Synthetic) Run(ctx context.Context, emit func(int)) {
	h := Normalize(float64(s.Start))
	clock.Run(ctx, s.Interval, s.NewTicker, func(time.Time) {
		h = Step(h)
		emit(h)
	})
}
