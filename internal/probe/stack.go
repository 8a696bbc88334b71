package probe

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preceptress/neurocompute/internal/models"
)

// StackProber times the full request path: handler, Redis round trip and
// return. An unreachable Redis still yields a timing, matching the original
// endpoint behavior.
type StackProber struct {
	rdb *redis.Client
}

// NewStackProber creates a stack prober backed by the given Redis client.
func NewStackProber(rdb *redis.Client) *StackProber {
	return &StackProber{rdb: rdb}
}

// Probe runs one full-stack timing.
func (p *StackProber) Probe(ctx context.Context) models.ProbeResult {
	result := models.ProbeResult{
		Timestamp: time.Now(),
		Metric:    models.MetricStack,
		Method:    models.MethodPing,
	}

	start := time.Now()
	if err := p.rdb.Ping(ctx).Err(); err != nil {
		// Timed anyway; the measurement covers the attempt.
		result.ErrorMessage = err.Error()
	}
	result.LatencyMS = float64(time.Since(start)) / float64(time.Millisecond)
	result.Success = true
	return result
}
