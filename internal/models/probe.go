package models

import "time"

// Metric names shared by the samplers, storage and the HTTP API.
const (
	MetricCache = "cache"
	MetricStack = "stack"
)

// Probe methods reported by the cache prober.
const (
	MethodBenchmark = "redis-benchmark"
	MethodPing      = "redis-ping"
	MethodFailed    = "failed"
)

// ProbeResult represents a single latency measurement
type ProbeResult struct {
	Timestamp    time.Time `json:"timestamp"`
	Metric       string    `json:"metric"`
	Success      bool      `json:"success"`
	LatencyMS    float64   `json:"latency_ms"` // milliseconds
	Method       string    `json:"method"`
	ErrorMessage string    `json:"error_message"`
}
