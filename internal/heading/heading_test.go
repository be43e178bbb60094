package heading

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dashboard/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTicker struct{ ch chan time.Time }

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               {}

func manual() (*manualTicker, clock.NewTickerFunc) {
	mt := &manualTicker{ch: make(chan time.Time)}
	return mt, func(time.Duration) clock.Ticker { return mt }
}

func TestNormalize(t *testing.T) {
	tests := map[float64]int{
		0: 0, 359.4: 359, 359.6: 0, 360: 0, 721: 1, -1: 359, -360.2: 0, 45.5: 46,
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), "Normalize(%v)", in)
	}
}

func TestStepWrapsAt360(t *testing.T) {
	h := 0
	for i := 0; i < 360; i++ {
		h = Step(h)
	}
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, Step(359))
}

func TestCardinal(t *testing.T) {
	label, arrow := Cardinal(0)
	assert.Equal(t, "N", label)
	assert.Equal(t, "↑", arrow)
	label, _ = Cardinal(90)
	assert.Equal(t, "E", label)
	label, _ = Cardinal(338)
	assert.Equal(t, "N", label)
	label, _ = Cardinal(200)
	assert.Equal(t, "S", label)
}

func TestSyntheticAdvancesPerTick(t *testing.T) {
	mt, newTicker := manual()
	s := NewSynthetic(0)
	s.NewTicker = newTicker
	assert.Equal(t, SyntheticInterval, s.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan int, 400)
	done := make(chan struct{})
	go func() {
		s.Run(ctx, func(h int) { got <- h })
		close(done)
	}()

	for i := 0; i < 360; i++ {
		mt.ch <- time.Time{}
	}
	cancel()
	<-done

	require.Len(t, got, 360)
	for i := 1; i <= 360; i++ {
		h := <-got
		assert.Equal(t, i%360, h)
	}
}

func writeSensor(t *testing.T, dir, value string) string {
	t.Helper()
	dev := filepath.Join(dir, "iio:device0")
	require.NoError(t, os.MkdirAll(dev, 0o755))
	path := filepath.Join(dev, iioRawFile)
	require.NoError(t, os.WriteFile(path, []byte(value), 0o644))
	return path
}

func TestProbePicksSensorWhenPresent(t *testing.T) {
	root := t.TempDir()
	path := writeSensor(t, root, "181.6\n")

	p := Probe(ProbeOptions{IIORoot: root})
	s, ok := p.(*Sensor)
	require.True(t, ok, "expected sensor, got %T", p)
	assert.Equal(t, path, s.RawPath)
	assert.Equal(t, "sensor", p.Name())

	h, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, 182, h)
}

func TestProbeFallsBackToSynthetic(t *testing.T) {
	p := Probe(ProbeOptions{IIORoot: t.TempDir()})
	assert.Equal(t, "synthetic", p.Name())

	root := t.TempDir()
	writeSensor(t, root, "10")
	p = Probe(ProbeOptions{IIORoot: root, DisableSensor: true})
	assert.Equal(t, "synthetic", p.Name())

	p = Probe(ProbeOptions{SensorPath: filepath.Join(t.TempDir(), "missing")})
	assert.Equal(t, "synthetic", p.Name())
}

func TestSensorAppliesScale(t *testing.T) {
	root := t.TempDir()
	path := writeSensor(t, root, "9000")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), iioScaleFile), []byte("0.01"), 0o644))

	s := NewSensor(path, 0)
	h, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, 90, h)
}

func TestSensorEmitsOnlyOnChange(t *testing.T) {
	values := []string{"10", "10", "20.2", "20.4", "30"}
	idx := 0
	mt, newTicker := manual()
	s := &Sensor{
		RawPath:   "virtual",
		Scale:     1,
		NewTicker: newTicker,
		ReadFile: func(string) ([]byte, error) {
			v := values[idx]
			if idx < len(values)-1 {
				idx++
			}
			return []byte(v), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan int, 10)
	done := make(chan struct{})
	go func() {
		s.Run(ctx, func(h int) { got <- h })
		close(done)
	}()
	for i := 0; i < 4; i++ {
		mt.ch <- time.Time{}
	}
	cancel()
	<-done

	close(got)
	var seen []int
	for h := range got {
		seen = append(seen, h)
	}
	assert.Equal(t, []int{10, 20, 30}, seen)
}

func TestWidgetApply(t *testing.T) {
	var w Widget
	w.Apply(370)
	assert.Equal(t, 10, w.Degrees)
}
