package widget

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"
)

// Reading is one latency value as reported by the server, together with the
// measured round-trip time of the fetch itself.
type Reading struct {
	ValueMS float64
	RTT     time.Duration
}

// Client fetches latency readings from the measurement API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A nil http.Client falls
// back to http.DefaultClient.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// CacheLatency fetches the cache metric. A missing latency_ms field yields a
// NaN reading, which downstream formatting renders as-is.
func (c *Client) CacheLatency(ctx context.Context) (Reading, error) {
	var body struct {
		LatencyMS *float64 `json:"latency_ms"`
	}
	rtt, err := c.get(ctx, "/api/redis-latency", &body)
	if err != nil {
		return Reading{}, err
	}

	value := math.NaN()
	if body.LatencyMS != nil {
		value = *body.LatencyMS
	}
	return Reading{ValueMS: value, RTT: rtt}, nil
}

// StackLatency fetches the stack metric. A missing stack_ms field is treated
// as 0.0.
func (c *Client) StackLatency(ctx context.Context) (Reading, error) {
	var body struct {
		StackMS float64 `json:"stack_ms"`
	}
	rtt, err := c.get(ctx, "/api/stack-speed", &body)
	if err != nil {
		return Reading{}, err
	}
	return Reading{ValueMS: body.StackMS, RTT: rtt}, nil
}

// get issues one request and decodes the JSON body. The HTTP status is not
// checked: a body that parses counts as success.
func (c *Client) get(ctx context.Context, path string, out any) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
