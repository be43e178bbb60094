package heading

import (
	"context"
	"math"
)

// Provider 航向来源；挂载时由能力探测选定一次
// Provider is a heading source, chosen once at mount by Probe
type Provider interface {
	Name() string
	// Run emits headings until ctx is cancelled and releases its resources before returning.
	Run(ctx context.Context, emit func(degrees int))
}

// Normalize 四舍五入并折算到 0..359
// Normalize rounds and wraps an angle into 0..359
func Normalize(deg float64) int {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	h := int(math.Round(deg)) % 360
	if h < 0 {
		h += 360
	}
	return h
}

// Step advances a heading by one degree, wrapping at 360.
func Step(h int) int {
	return (h + 1) % 360
}

var points = []struct {
	label string
	arrow string
}{
	{"N", "↑"}, {"NE", "↗"}, {"E", "→"}, {"SE", "↘"},
	{"S", "↓"}, {"SW", "↙"}, {"W", "←"}, {"NW", "↖"},
}

// Cardinal returns the 8-point compass label and arrow for a heading.
func Cardinal(h int) (label, arrow string) {
	idx := ((Normalize(float64(h)) + 22) / 45) % len(points)
	p := points[idx]
	return p.label, p.arrow
}

// Widget holds the current heading and which provider feeds it.
type Widget struct {
	Degrees int
	Source  string
}

func (w *Widget) Apply(deg int) {
	w.Degrees = Normalize(float64(deg))
}
