package clock

import (
	"context"
	"fmt"
	"time"
)

const TickInterval = time.Second

// Ticker 可替换的定时器，便于测试驱动
// Ticker is a replaceable ticker so tests can drive ticks by hand
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// NewTickerFunc constructs a Ticker for an interval.
type NewTickerFunc func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Run 每个 tick 调用 emit，直到 ctx 取消；返回前停止 ticker
// Run calls emit on every tick until ctx is cancelled; the ticker is stopped before returning
func Run(ctx context.Context, interval time.Duration, newTicker NewTickerFunc, emit func(time.Time)) {
	if newTicker == nil {
		newTicker = NewRealTicker
	}
	if interval <= 0 {
		interval = TickInterval
	}
	t := newTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C():
			emit(now)
		}
	}
}

// Widget 时钟与运行时长
// Widget holds the displayed time and uptime since mount
type Widget struct {
	Now     time.Time
	Started time.Time
	Uptime  time.Duration
}

func NewWidget(start time.Time) *Widget {
	return &Widget{Now: start, Started: start}
}

// Tick 更新当前时间；时钟回拨导致的负值饱和为 0
// Tick updates the current time; negative elapsed time from clock skew saturates to zero
func (w *Widget) Tick(now time.Time) {
	w.Now = now
	elapsed := now.Sub(w.Started)
	if elapsed < 0 {
		elapsed = 0
	}
	w.Uptime = elapsed.Truncate(time.Second)
}

// FormatUptime renders HH:MM:SS; hours are not capped and grow past two digits.
func FormatUptime(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// TimeString renders 24-hour wall time.
func TimeString(t time.Time) string {
	return t.Format("15:04:05")
}

// DateString renders the UTC calendar date as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// MissionTime renders the footer line.
func MissionTime(t time.Time) string {
	return fmt.Sprintf("MISSION TIME: %s %s ZULU", DateString(t), TimeString(t))
}
