package weather

import (
	"fmt"
	"math"
	"strings"
)

// Snapshot 最近一次成功获取的天气
// Snapshot is the most recent successful weather reading
type Snapshot struct {
	Temperature  float64 // °F
	Condition    string
	LocationName string
	CountryCode  string
}

// TemperatureLabel renders the rounded Fahrenheit value, e.g. "72°F".
func (s Snapshot) TemperatureLabel() string {
	return fmt.Sprintf("%d°F", int(math.Round(s.Temperature)))
}

// Location renders "{name}, {country}".
func (s Snapshot) Location() string {
	name := strings.TrimSpace(s.LocationName)
	country := strings.TrimSpace(s.CountryCode)
	if country == "" {
		return name
	}
	return name + ", " + country
}
