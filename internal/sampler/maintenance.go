package sampler

import (
	"time"

	"github.com/rs/zerolog/log"
)

// maintenanceWorker runs periodic maintenance tasks
func (s *Sampler) maintenanceWorker() {
	defer s.wg.Done()

	// Run maintenance every hour
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	// Run immediately on start
	s.performMaintenance()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.performMaintenance()
		}
	}
}

// performMaintenance rolls up history and trims old rows
func (s *Sampler) performMaintenance() {
	log.Debug().Msg("running maintenance tasks")

	if err := s.storage.AggregateHourly(); err != nil {
		log.Error().Err(err).Msg("failed to aggregate hourly stats")
	}

	if err := s.storage.ArchiveOldData(); err != nil {
		log.Error().Err(err).Msg("failed to archive old data")
	}
}
