package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/models"
)

// Generator creates static charts and summaries from probe history
type Generator struct {
	storage models.Storage
}

// NewGenerator creates a new report generator
func NewGenerator(storage models.Storage) *Generator {
	return &Generator{storage: storage}
}

// GenerateReport creates a report directory with charts and a text summary
func (g *Generator) GenerateReport(outputDir string, hours int) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, fmt.Sprintf("latency_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	results, err := g.storage.GetRecent(hours)
	if err != nil {
		return "", fmt.Errorf("failed to load probe history: %w", err)
	}

	if err := g.generateLatencyCharts(reportDir, results); err != nil {
		log.Error().Err(err).Msg("failed to generate latency charts")
	}

	if err := g.generateTextReport(reportDir, hours); err != nil {
		log.Error().Err(err).Msg("failed to generate text report")
	}

	log.Info().Str("dir", reportDir).Msg("report generated")
	return reportDir, nil
}
