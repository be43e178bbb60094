package heading

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ProbeOptions 能力探测参数
// ProbeOptions configures the capability probe
type ProbeOptions struct {
	// SensorPath points directly at a raw heading file; it wins over discovery.
	SensorPath string
	// IIORoot is scanned for compass devices; empty uses DefaultIIORoot.
	IIORoot string
	// DisableSensor forces the synthetic variant.
	DisableSensor     bool
	SyntheticInterval time.Duration
	SensorInterval    time.Duration
}

// Probe 选择一个 Provider：可读的传感器优先，否则合成
// Probe picks exactly one Provider: a readable sensor if present, otherwise synthetic
func Probe(opts ProbeOptions) Provider {
	if !opts.DisableSensor {
		if path := findSensor(opts); path != "" {
			s := NewSensor(path, opts.SensorInterval)
			if _, err := s.Read(); err == nil {
				return s
			}
		}
	}
	return NewSynthetic(opts.SyntheticInterval)
}

func findSensor(opts ProbeOptions) string {
	if p := strings.TrimSpace(opts.SensorPath); p != "" {
		return p
	}
	root := strings.TrimSpace(opts.IIORoot)
	if root == "" {
		root = DefaultIIORoot
	}
	matches, err := filepath.Glob(filepath.Join(root, iioGlob, iioRawFile))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	return matches[0]
}
