package models

import "context"

// Storage defines operations for probe history persistence
type Storage interface {
	SaveResult(result ProbeResult) error
	GetRecent(hours int) ([]ProbeResult, error)
	GetStats(hours int) ([]Stats, error)
	AggregateHourly() error
	ArchiveOldData() error
	Close() error
}

// Prober measures a single latency value
type Prober interface {
	Probe(ctx context.Context) ProbeResult
}
