// Package units holds the pure display conversions used by the latency
// widgets. Keeping these separate from the rendering code keeps them
// trivially testable.
package units

import "fmt"

// SpeedOfLight in meters per second.
const SpeedOfLight = 299792458.0

// RateThreshold is the value above which a cache reading is assumed to be a
// throughput figure (operations/second) rather than a latency in ms.
const RateThreshold = 1000.0

// Nanoseconds renders a millisecond value as a whole-nanosecond string.
func Nanoseconds(ms float64) string {
	return fmt.Sprintf("%.0f ns", ms*1e6)
}

// Milliseconds renders a millisecond value with three decimals.
func Milliseconds(ms float64) string {
	return fmt.Sprintf("%.3f ms", ms)
}

// NormalizeCacheReading maps a server-reported cache figure to milliseconds.
// redis-benchmark reports requests/second, so anything above RateThreshold is
// inverted to a per-operation latency; smaller values are used as-is.
func NormalizeCacheReading(v float64) float64 {
	if v > RateThreshold {
		return 1000.0 / v
	}
	return v
}

// LightDistance returns how far light travels in ms milliseconds, in meters.
func LightDistance(ms float64) float64 {
	return SpeedOfLight * ms / 1000.0
}

// FormatDistance renders a distance in meters using the smallest unit that
// keeps the number readable, rounded to two decimals.
func FormatDistance(meters float64) string {
	switch {
	case meters < 0.001:
		return fmt.Sprintf("%.2f mm", meters*1000)
	case meters < 1:
		return fmt.Sprintf("%.2f cm", meters*100)
	case meters < 1000:
		return fmt.Sprintf("%.2f m", meters)
	default:
		return fmt.Sprintf("%.2f km", meters/1000)
	}
}
