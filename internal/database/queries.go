package database

import (
	"database/sql"

	"github.com/preceptress/neurocompute/internal/models"
)

// SaveResult saves a probe result to the database
func (db *DB) SaveResult(result models.ProbeResult) error {
	query := `
        INSERT INTO probe_results (timestamp, metric, success, latency_ms, method, error_message)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := db.Exec(query,
		result.Timestamp,
		result.Metric,
		result.Success,
		result.LatencyMS,
		result.Method,
		result.ErrorMessage,
	)
	return err
}

// GetRecent retrieves recent probe results
func (db *DB) GetRecent(hours int) ([]models.ProbeResult, error) {
	query := `
        SELECT timestamp, metric, success, latency_ms, method, error_message
        FROM probe_results
        WHERE timestamp > datetime('now', '-' || ? || ' hours')
        ORDER BY timestamp DESC
        LIMIT 10000
    `

	rows, err := db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ProbeResult
	for rows.Next() {
		var r models.ProbeResult
		var method, errMsg sql.NullString
		err := rows.Scan(&r.Timestamp, &r.Metric, &r.Success, &r.LatencyMS, &method, &errMsg)
		if err != nil {
			continue
		}
		if method.Valid {
			r.Method = method.String
		}
		if errMsg.Valid {
			r.ErrorMessage = errMsg.String
		}
		results = append(results, r)
	}

	return results, nil
}

// GetStats retrieves aggregated statistics per metric
func (db *DB) GetStats(hours int) ([]models.Stats, error) {
	query := `
        SELECT
            metric,
            COUNT(*) as total_probes,
            SUM(CASE WHEN success THEN 1 ELSE 0 END) as successful_probes,
            AVG(CASE WHEN success THEN latency_ms ELSE NULL END) as avg_latency,
            MAX(CASE WHEN success THEN latency_ms ELSE NULL END) as max_latency,
            MIN(CASE WHEN success THEN latency_ms ELSE NULL END) as min_latency,
            ROUND((1.0 - (CAST(SUM(CASE WHEN success THEN 1 ELSE 0 END) AS REAL) / COUNT(*))) * 100, 2) as failure_rate
        FROM probe_results
        WHERE timestamp > datetime('now', '-' || ? || ' hours')
        GROUP BY metric
    `

	rows, err := db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.Stats
	for rows.Next() {
		var s models.Stats
		var avg, max, min sql.NullFloat64
		err := rows.Scan(&s.Metric, &s.TotalProbes, &s.Successful, &avg, &max, &min, &s.FailureRate)
		if err != nil {
			continue
		}
		if avg.Valid {
			s.AvgLatency = avg.Float64
		}
		if max.Valid {
			s.MaxLatency = max.Float64
		}
		if min.Valid {
			s.MinLatency = min.Float64
		}
		stats = append(stats, s)
	}

	return stats, nil
}
