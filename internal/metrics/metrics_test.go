package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveProbe(t *testing.T) {
	ProbesTotal.Reset()
	ProbeFailuresTotal.Reset()

	ObserveProbe("cache", "redis-ping", 2.0, true)
	ObserveProbe("cache", "redis-ping", 3.0, true)
	ObserveProbe("stack", "failed", 0, false)

	require.Equal(t, 2.0, testutil.ToFloat64(ProbesTotal.WithLabelValues("cache", "redis-ping")))
	require.Equal(t, 1.0, testutil.ToFloat64(ProbesTotal.WithLabelValues("stack", "failed")))
	require.Equal(t, 1.0, testutil.ToFloat64(ProbeFailuresTotal.WithLabelValues("stack")))
	require.Equal(t, 0.0, testutil.ToFloat64(ProbeFailuresTotal.WithLabelValues("cache")))
}
