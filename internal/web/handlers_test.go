package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/preceptress/neurocompute/internal/config"
	"github.com/preceptress/neurocompute/internal/models"
)

type stubProber struct {
	calls  int
	result models.ProbeResult
}

func (p *stubProber) Probe(context.Context) models.ProbeResult {
	p.calls++
	r := p.result
	r.Timestamp = time.Now()
	return r
}

type stubStorage struct {
	recent []models.ProbeResult
	stats  []models.Stats
}

func (s *stubStorage) SaveResult(models.ProbeResult) error { return nil }

func (s *stubStorage) GetRecent(int) ([]models.ProbeResult, error) { return s.recent, nil }

func (s *stubStorage) GetStats(int) ([]models.Stats, error) { return s.stats, nil }

func (s *stubStorage) AggregateHourly() error { return nil }

func (s *stubStorage) ArchiveOldData() error { return nil }

func (s *stubStorage) Close() error { return nil }

func newTestServer(t *testing.T, cache, stack *stubProber) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	srv := New(cfg, &stubStorage{}, cache, stack, nil, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRedisLatencyCachesSuccessfulProbes(t *testing.T) {
	cache := &stubProber{result: models.ProbeResult{
		Metric:    models.MetricCache,
		Success:   true,
		LatencyMS: 84033.61,
		Method:    models.MethodBenchmark,
	}}
	ts := newTestServer(t, cache, &stubProber{})

	var first latencyResponse
	getJSON(t, ts.URL+"/api/redis-latency", &first)
	require.False(t, first.Cached)
	require.InDelta(t, 84033.61, first.LatencyMS, 1e-9)
	require.Equal(t, models.MethodBenchmark, first.Method)

	var second latencyResponse
	getJSON(t, ts.URL+"/api/redis-latency", &second)
	require.True(t, second.Cached)
	require.InDelta(t, 84033.61, second.LatencyMS, 1e-9)

	require.Equal(t, 1, cache.calls)
}

func TestRedisLatencyFailureIsNotCached(t *testing.T) {
	cache := &stubProber{result: models.ProbeResult{
		Metric:       models.MetricCache,
		Success:      false,
		Method:       models.MethodFailed,
		ErrorMessage: "connection refused",
	}}
	ts := newTestServer(t, cache, &stubProber{})

	for i := 0; i < 2; i++ {
		var resp latencyResponse
		getJSON(t, ts.URL+"/api/redis-latency", &resp)
		require.False(t, resp.Cached)
		require.Equal(t, models.MethodFailed, resp.Method)
		require.Zero(t, resp.LatencyMS)
		require.Equal(t, "connection refused", resp.Error)
	}

	require.Equal(t, 2, cache.calls)
}

func TestStackSpeed(t *testing.T) {
	stack := &stubProber{result: models.ProbeResult{
		Metric:    models.MetricStack,
		Success:   true,
		LatencyMS: 3.25,
		Method:    models.MethodPing,
	}}
	ts := newTestServer(t, &stubProber{}, stack)

	var resp stackResponse
	getJSON(t, ts.URL+"/api/stack-speed", &resp)
	require.InDelta(t, 3.25, resp.StackMS, 1e-9)
	require.Greater(t, resp.Timestamp, 0.0)
}

func TestHealthDegradedWhenRedisUnreachable(t *testing.T) {
	healthy := &stubProber{result: models.ProbeResult{Metric: models.MetricStack, Success: true, LatencyMS: 1}}
	ts := newTestServer(t, &stubProber{}, healthy)

	var resp healthResponse
	getJSON(t, ts.URL+"/api/health", &resp)
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "ForgeOS", resp.Service)

	degraded := &stubProber{result: models.ProbeResult{
		Metric:       models.MetricStack,
		Success:      true,
		LatencyMS:    1,
		ErrorMessage: "dial tcp: connection refused",
	}}
	ts2 := newTestServer(t, &stubProber{}, degraded)

	getJSON(t, ts2.URL+"/api/health", &resp)
	require.Equal(t, "degraded", resp.Status)
}

func TestRecentAndStats(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	storage := &stubStorage{
		recent: []models.ProbeResult{{Metric: models.MetricCache, Success: true, LatencyMS: 0.4}},
		stats:  []models.Stats{{Metric: models.MetricCache, TotalProbes: 10, Successful: 10}},
	}
	srv := New(cfg, storage, &stubProber{}, &stubProber{}, nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	var recent []models.ProbeResult
	getJSON(t, ts.URL+"/api/recent?hours=1", &recent)
	require.Len(t, recent, 1)

	var stats []models.Stats
	getJSON(t, ts.URL+"/api/stats", &stats)
	require.Len(t, stats, 1)
	require.Equal(t, 10, stats[0].TotalProbes)
}
