package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ProbesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "perfmon_probes_total",
		Help: "Total number of latency probes taken, by metric and method",
	}, []string{"metric", "method"})

	ProbeFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "perfmon_probe_failures_total",
		Help: "Total number of failed latency probes, by metric",
	}, []string{"metric"})

	ProbeLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "perfmon_probe_latency_seconds",
		Help:    "Measured probe latency in seconds, by metric",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
	}, []string{"metric"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "perfmon_http_requests_total",
		Help: "Total number of HTTP API requests, by path",
	}, []string{"path"})
)

// Register adds all collectors to the given registerer.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		ProbesTotal,
		ProbeFailuresTotal,
		ProbeLatencySeconds,
		HTTPRequestsTotal,
	)
}

// ObserveProbe records one probe outcome.
func ObserveProbe(metric, method string, latencyMS float64, success bool) {
	ProbesTotal.WithLabelValues(metric, method).Inc()
	if !success {
		ProbeFailuresTotal.WithLabelValues(metric).Inc()
		return
	}
	ProbeLatencySeconds.WithLabelValues(metric).Observe(latencyMS / 1000.0)
}
