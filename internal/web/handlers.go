package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

type latencyResponse struct {
	LatencyMS float64 `json:"latency_ms"`
	Cached    bool    `json:"cached"`
	Method    string  `json:"method,omitempty"`
	Error     string  `json:"error,omitempty"`
}

type stackResponse struct {
	StackMS   float64 `json:"stack_ms"`
	Timestamp float64 `json:"timestamp"`
}

type healthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	RedisHost string `json:"redis_host"`
	RedisPort int    `json:"redis_port"`
	Time      string `json:"time"`
}

// handleRedisLatency handles /api/redis-latency requests. Successful probe
// values are reused for the configured TTL.
func (s *Server) handleRedisLatency(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if !s.lastAt.IsZero() && time.Since(s.lastAt) < s.cfg.Probe.CacheTTL {
		resp := latencyResponse{
			LatencyMS: s.lastReading.LatencyMS,
			Cached:    true,
			Method:    s.lastReading.Method,
		}
		s.mu.Unlock()
		writeJSON(w, resp)
		return
	}
	s.mu.Unlock()

	result := s.cacheProber.Probe(r.Context())

	if result.Success {
		s.mu.Lock()
		s.lastReading = result
		s.lastAt = time.Now()
		s.mu.Unlock()
	}

	writeJSON(w, latencyResponse{
		LatencyMS: result.LatencyMS,
		Cached:    false,
		Method:    result.Method,
		Error:     result.ErrorMessage,
	})
}

// handleStackSpeed handles /api/stack-speed requests
func (s *Server) handleStackSpeed(w http.ResponseWriter, r *http.Request) {
	result := s.stackProber.Probe(r.Context())

	writeJSON(w, stackResponse{
		StackMS:   result.LatencyMS,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
	})
}

// handleHealth handles /api/health requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if probe := s.stackProber.Probe(r.Context()); probe.ErrorMessage != "" {
		status = "degraded"
	}

	writeJSON(w, healthResponse{
		Service:   s.cfg.Service,
		Status:    status,
		RedisHost: s.cfg.Redis.Host,
		RedisPort: s.cfg.Redis.Port,
		Time:      time.Now().Format("2006-01-02 15:04:05"),
	})
}

// handleRecent handles /api/recent requests
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if h := r.URL.Query().Get("hours"); h != "" {
		if parsed, err := strconv.Atoi(h); err == nil {
			hours = parsed
		}
	}

	results, err := s.storage.GetRecent(hours)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, results)
}

// handleStats handles /api/stats requests
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if h := r.URL.Query().Get("hours"); h != "" {
		if parsed, err := strconv.Atoi(h); err == nil {
			hours = parsed
		}
	}

	stats, err := s.storage.GetStats(hours)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
