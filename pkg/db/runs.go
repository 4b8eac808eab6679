package db

import (
	"fmt"
	"strings"
	"time"
)

// FetchRun is one recorded fetch invocation.
type FetchRun struct {
	RunID     int64
	CreatedAt time.Time

	Model            string
	Days             []string
	OutDir           string
	IncludeActiveMap bool

	TotalCopied      int
	TotalOverwritten int
	MissingDays      int
	ActiveIncluded   int
	ActiveMissing    int
	Cancelled        bool
}

// InsertFetchRun records one fetch run and returns its id.
func (db *DB) InsertFetchRun(run FetchRun) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO fetch_runs
			(model, days, out_dir, include_activemap,
			 total_copied, total_overwritten, missing_days,
			 active_included, active_missing, cancelled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.Model, strings.Join(run.Days, ","), run.OutDir, run.IncludeActiveMap,
		run.TotalCopied, run.TotalOverwritten, run.MissingDays,
		run.ActiveIncluded, run.ActiveMissing, run.Cancelled)
	if err != nil {
		return 0, fmt.Errorf("failed to insert fetch run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return id, nil
}

// ListFetchRuns returns the most recent runs, newest first.
func (db *DB) ListFetchRuns(limit int) ([]FetchRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, model, days, out_dir, include_activemap,
		       total_copied, total_overwritten, missing_days,
		       active_included, active_missing, cancelled
		FROM fetch_runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch runs: %w", err)
	}
	defer rows.Close()

	var runs []FetchRun
	for rows.Next() {
		var r FetchRun
		var days string
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Model, &days, &r.OutDir,
			&r.IncludeActiveMap, &r.TotalCopied, &r.TotalOverwritten,
			&r.MissingDays, &r.ActiveIncluded, &r.ActiveMissing, &r.Cancelled); err != nil {
			return nil, fmt.Errorf("failed to scan fetch run: %w", err)
		}
		if days != "" {
			r.Days = strings.Split(days, ",")
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
