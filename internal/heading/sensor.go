package heading

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dashboard/internal/clock"
)

// IIO 罗盘通道（倾斜补偿后的北向角）
// IIO compass channel: tilt-compensated angle from magnetic north
const (
	iioRawFile   = "in_rot_from_north_magnetic_tilt_comp_raw"
	iioScaleFile = "in_rot_from_north_magnetic_tilt_comp_scale"
	iioGlob      = "iio:device*"

	DefaultIIORoot     = "/sys/bus/iio/devices"
	SensorPollInterval = 100 * time.Millisecond
)

// Sensor 订阅主机罗盘读数，仅在读数变化时发出
// Sensor follows a host compass reading and emits only when it changes
type Sensor struct {
	RawPath   string
	Scale     float64
	Interval  time.Duration
	NewTicker clock.NewTickerFunc
	ReadFile  func(path string) ([]byte, error)
}

func NewSensor(rawPath string, interval time.Duration) *Sensor {
	if interval <= 0 {
		interval = SensorPollInterval
	}
	s := &Sensor{
		RawPath:   rawPath,
		Scale:     1,
		Interval:  interval,
		NewTicker: clock.NewRealTicker,
		ReadFile:  os.ReadFile,
	}
	scalePath := filepath.Join(filepath.Dir(rawPath), iioScaleFile)
	if v, err := readFloat(os.ReadFile, scalePath); err == nil && v != 0 {
		s.Scale = v
	}
	return s
}

func (s *Sensor) Name() string { return "sensor" }

// Read returns the current heading in whole degrees.
func (s *Sensor) Read() (int, error) {
	read := s.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	v, err := readFloat(read, s.RawPath)
	if err != nil {
		return 0, err
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return Normalize(v * scale), nil
}

func (s *Sensor) Run(ctx context.Context, emit func(int)) {
	last := -1
	poll := func() {
		h, err := s.Read()
		if err != nil || h == last {
			return
		}
		last = h
		emit(h)
	}
	poll()
	clock.Run(ctx, s.Interval, s.NewTicker, func(time.Time) { poll() })
}

func readFloat(read func(string) ([]byte, error), path string) (float64, error) {
	data, err := read(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}
