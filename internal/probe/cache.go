package probe

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/models"
)

// CacheProber measures cache round-trip latency. The primary method shells
// out to redis-benchmark; when that is unavailable it falls back to timing a
// direct PING through the client.
type CacheProber struct {
	rdb      *redis.Client
	requests int
	clients  int
	timeout  time.Duration
}

// NewCacheProber creates a cache prober backed by the given Redis client.
func NewCacheProber(rdb *redis.Client, requests, clients int, timeout time.Duration) *CacheProber {
	return &CacheProber{
		rdb:      rdb,
		requests: requests,
		clients:  clients,
		timeout:  timeout,
	}
}

// Probe runs one cache latency measurement. The benchmark figure is reported
// exactly as redis-benchmark prints it (requests/second for the GET test);
// callers decide how to interpret it.
func (p *CacheProber) Probe(ctx context.Context) models.ProbeResult {
	result := models.ProbeResult{
		Timestamp: time.Now(),
		Metric:    models.MetricCache,
	}

	value, benchErr := p.runBenchmark(ctx)
	if benchErr == nil {
		result.Success = true
		result.LatencyMS = value
		result.Method = models.MethodBenchmark
		return result
	}

	log.Debug().Err(benchErr).Msg("redis-benchmark unavailable, timing direct ping")

	// Fallback: measure direct Redis ping latency
	start := time.Now()
	if pingErr := p.rdb.Ping(ctx).Err(); pingErr != nil {
		result.Success = false
		result.LatencyMS = 0.0
		result.Method = models.MethodFailed
		result.ErrorMessage = fmt.Sprintf("%v | %v", benchErr, pingErr)
		return result
	}

	result.Success = true
	result.LatencyMS = float64(time.Since(start)) / float64(time.Millisecond)
	result.Method = models.MethodPing
	result.ErrorMessage = benchErr.Error()
	return result
}

func (p *CacheProber) runBenchmark(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "redis-benchmark",
		"-q",
		"-n", strconv.Itoa(p.requests),
		"-c", strconv.Itoa(p.clients),
	)

	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("redis-benchmark failed: %w", err)
	}

	value, ok := parseBenchmarkOutput(string(output))
	if !ok {
		return 0, fmt.Errorf("no GET figure in redis-benchmark output")
	}
	return value, nil
}

// parseBenchmarkOutput extracts the GET figure from redis-benchmark -q output.
// Typical line: "GET: 84033.61 requests per second"
func parseBenchmarkOutput(output string) (float64, bool) {
	re := regexp.MustCompile(`GET:\s+([\d\.]+)`)
	matches := re.FindStringSubmatch(output)
	if len(matches) > 1 {
		if v, err := strconv.ParseFloat(matches[1], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
