package models

// Stats represents aggregated statistics for a metric
type Stats struct {
	Metric      string  `json:"metric"`
	TotalProbes int     `json:"total_probes"`
	Successful  int     `json:"successful_probes"`
	AvgLatency  float64 `json:"avg_latency_ms"`
	MaxLatency  float64 `json:"max_latency_ms"`
	MinLatency  float64 `json:"min_latency_ms"`
	FailureRate float64 `json:"failure_rate"`
}
