package database

import (
	"time"
)

// AggregateHourly rolls recent probe results up into hourly_stats
func (db *DB) AggregateHourly() error {
	query := `
        INSERT OR REPLACE INTO hourly_stats (hour, metric, total_probes, successful_probes, avg_latency_ms, max_latency_ms, min_latency_ms, failure_rate)
        SELECT
            strftime('%Y-%m-%d %H:00:00', timestamp) as hour,
            metric,
            COUNT(*) as total_probes,
            SUM(CASE WHEN success THEN 1 ELSE 0 END) as successful_probes,
            AVG(CASE WHEN success THEN latency_ms ELSE NULL END) as avg_latency_ms,
            MAX(CASE WHEN success THEN latency_ms ELSE NULL END) as max_latency_ms,
            MIN(CASE WHEN success THEN latency_ms ELSE NULL END) as min_latency_ms,
            ROUND((SUM(CASE WHEN NOT success THEN 1 ELSE 0 END) * 100.0 / COUNT(*)), 2) as failure_rate
        FROM probe_results
        WHERE timestamp > datetime('now', '-2 days')
        GROUP BY hour, metric
    `
	_, err := db.Exec(query)
	return err
}

// ArchiveOldData archives old data and cleans up
func (db *DB) ArchiveOldData() error {
	// Raw probe results are kept for 7 days; rollups cover the rest.
	deleteQuery := `DELETE FROM probe_results WHERE timestamp < datetime('now', '-7 days')`
	if _, err := db.Exec(deleteQuery); err != nil {
		return err
	}

	// Delete hourly rollups older than 90 days
	deleteStatsQuery := `DELETE FROM hourly_stats WHERE hour < datetime('now', '-90 days')`
	if _, err := db.Exec(deleteStatsQuery); err != nil {
		return err
	}

	// Vacuum to reclaim space (run occasionally)
	if time.Now().Day() == 1 { // Run on first day of month
		_, err := db.Exec("VACUUM")
		return err
	}

	return nil
}
