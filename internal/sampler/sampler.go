package sampler

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/config"
	"github.com/preceptress/neurocompute/internal/models"
)

// Sampler periodically runs the configured probes and records their
// results so the history endpoints and reports have data to serve.
type Sampler struct {
	config  *config.Config
	storage models.Storage
	probers map[string]models.Prober
	results chan models.ProbeResult
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates a new Sampler
func New(cfg *config.Config, storage models.Storage, probers map[string]models.Prober) *Sampler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sampler{
		config:  cfg,
		storage: storage,
		probers: probers,
		results: make(chan models.ProbeResult, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins background sampling
func (s *Sampler) Start() error {
	log.Info().Int("probers", len(s.probers)).Msg("starting sampler")

	// Start result writer
	s.wg.Add(1)
	go s.processResults()

	// Start one worker per metric
	for metric, prober := range s.probers {
		s.wg.Add(1)
		go s.sampleWorker(metric, prober)
	}

	// Start maintenance routine
	s.wg.Add(1)
	go s.maintenanceWorker()

	return nil
}

// Stop gracefully stops the sampler
func (s *Sampler) Stop() {
	log.Info().Msg("stopping sampler")
	s.cancel()
}

// Wait blocks until all goroutines finish
func (s *Sampler) Wait() {
	s.wg.Wait()
	log.Info().Msg("sampler stopped")
}
