package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func (g *Generator) generateTextReport(outputDir string, hours int) error {
	stats, err := g.storage.GetStats(hours)
	if err != nil {
		return err
	}

	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Latency Report - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Window: last %d hours\n\n", hours)

	if len(stats) == 0 {
		fmt.Fprintln(file, "No probe data recorded in this window.")
		return nil
	}

	for _, s := range stats {
		fmt.Fprintf(file, "Metric: %s\n", s.Metric)
		fmt.Fprintf(file, "  Probes:       %d (%d successful)\n", s.TotalProbes, s.Successful)
		fmt.Fprintf(file, "  Latency (ms): avg %.3f / min %.3f / max %.3f\n", s.AvgLatency, s.MinLatency, s.MaxLatency)
		fmt.Fprintf(file, "  Failure rate: %.2f%%\n\n", s.FailureRate)
	}

	return nil
}
