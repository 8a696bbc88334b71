package sampler

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/metrics"
	"github.com/preceptress/neurocompute/internal/models"
)

// sampleWorker probes one metric at the configured interval
func (s *Sampler) sampleWorker(metric string, prober models.Prober) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Probe.SampleInterval)
	defer ticker.Stop()

	// Immediate first sample
	s.performSample(metric, prober)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.performSample(metric, prober)
		}
	}
}

// performSample takes a single measurement and queues it for storage
func (s *Sampler) performSample(metric string, prober models.Prober) {
	result := prober.Probe(s.ctx)
	metrics.ObserveProbe(result.Metric, result.Method, result.LatencyMS, result.Success)

	select {
	case s.results <- result:
	default:
		log.Warn().Str("metric", metric).Msg("result channel full, dropping sample")
	}
}

// processResults writes queued samples to storage
func (s *Sampler) processResults() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case result := <-s.results:
			if err := s.storage.SaveResult(result); err != nil {
				log.Error().Err(err).Str("metric", result.Metric).Msg("failed to save sample")
			}
		}
	}
}
