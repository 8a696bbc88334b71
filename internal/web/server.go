package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/config"
	"github.com/preceptress/neurocompute/internal/metrics"
	"github.com/preceptress/neurocompute/internal/models"
)

// Server exposes the measurement and history API
type Server struct {
	cfg         *config.Config
	storage     models.Storage
	cacheProber models.Prober
	stackProber models.Prober
	registry    *prometheus.Registry
	staticFiles fs.FS

	// lastReading caches the cache-latency probe so repeated widget
	// refreshes do not hammer redis-benchmark.
	mu          sync.Mutex
	lastReading models.ProbeResult
	lastAt      time.Time
}

// New creates a new web server
func New(cfg *config.Config, storage models.Storage, cacheProber, stackProber models.Prober, registry *prometheus.Registry, staticFS fs.FS) *Server {
	return &Server{
		cfg:         cfg,
		storage:     storage,
		cacheProber: cacheProber,
		stackProber: stackProber,
		registry:    registry,
		staticFiles: staticFS,
	}
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/redis-latency", s.counted("/api/redis-latency", s.handleRedisLatency))
	mux.HandleFunc("/api/stack-speed", s.counted("/api/stack-speed", s.handleStackSpeed))
	mux.HandleFunc("/api/health", s.counted("/api/health", s.handleHealth))
	mux.HandleFunc("/api/recent", s.counted("/api/recent", s.handleRecent))
	mux.HandleFunc("/api/stats", s.counted("/api/stats", s.handleStats))

	if s.registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	// Static files - serve embedded static/ directory as webroot
	if s.staticFiles != nil {
		staticFS, _ := fs.Sub(s.staticFiles, "static")
		mux.Handle("/", http.FileServer(http.FS(staticFS)))
	}

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	log.Info().Int("port", s.cfg.Port).Msg("web server starting")
	return http.ListenAndServe(fmt.Sprintf(":%d", s.cfg.Port), s.Handler())
}

func (s *Server) counted(path string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsTotal.WithLabelValues(path).Inc()
		h(w, r)
	}
}
