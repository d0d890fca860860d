package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

// Run is one /cube/solve comparison call: the scramble every backend ran
// against, plus one RunResult per backend that ran.
type Run struct {
	RunID     string
	CreatedAt time.Time
	MaxDepth  int
	Scramble  string
}

// RunResult is one backend's outcome within a Run.
type RunResult struct {
	Backend   string
	Success   bool
	TimedOut  bool
	Nodes     int64
	ElapsedMs int64
	MoveCount int
	Moves     string
}

// RunRepository persists comparison runs and their per-backend results.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a repository backed by db.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a run and its per-backend results in a single
// transaction, returning the generated run id.
func (r *RunRepository) Create(maxDepth int, scramble string, results []solve.Result) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		// Fixed-width nanoseconds keep created_at distinct for runs within
		// the same second and make the text sort chronologically.
		_, err := tx.Exec(`
			INSERT INTO runs (run_id, created_at, max_depth, scramble)
			VALUES (?, ?, ?, ?)
		`, id, createdAt.Format("2006-01-02T15:04:05.000000000Z07:00"), maxDepth, scramble)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, res := range results {
			_, err := tx.Exec(`
				INSERT INTO run_results (run_id, backend, success, timed_out, nodes, elapsed_ms, move_count, moves)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, id, res.Backend, res.Success, res.TimedOut, res.Nodes,
				res.Elapsed.Milliseconds(), len(res.Moves), cube.FormatMoves(res.Moves))
			if err != nil {
				return fmt.Errorf("failed to insert result for %s: %w", res.Backend, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a run and its results by id.
func (r *RunRepository) Get(runID string) (*Run, []RunResult, error) {
	var run Run
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT run_id, created_at, max_depth, scramble FROM runs WHERE run_id = ?
	`, runID).Scan(&run.RunID, &createdAtStr, &run.MaxDepth, &run.Scramble)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get run: %w", err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

	rows, err := r.db.Query(`
		SELECT backend, success, timed_out, nodes, elapsed_ms, move_count, moves
		FROM run_results WHERE run_id = ?
	`, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var res RunResult
		if err := rows.Scan(&res.Backend, &res.Success, &res.TimedOut, &res.Nodes,
			&res.ElapsedMs, &res.MoveCount, &res.Moves); err != nil {
			return nil, nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}

	return &run, results, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, max_depth, scramble
		FROM runs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAtStr string
		if err := rows.Scan(&run.RunID, &createdAtStr, &run.MaxDepth, &run.Scramble); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		runs = append(runs, run)
	}
	return runs, nil
}
