// Package store persists sweep reports in SQLite so runs can be compared
// across machines and code changes.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ajroetker/go-opcount/internal/report"
	"github.com/ajroetker/go-opcount/opcount/contrib/bench"
	"github.com/ajroetker/go-opcount/opcount/contrib/scenario"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  INTEGER NOT NULL,
	repetitions INTEGER NOT NULL,
	host        TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id       TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq          INTEGER NOT NULL,
	algo         TEXT NOT NULL,
	n            INTEGER NOT NULL,
	mode         TEXT NOT NULL,
	repetitions  INTEGER NOT NULL,
	avg_time_ms  REAL NOT NULL,
	avg_comp     REAL NOT NULL,
	avg_assign   REAL NOT NULL,
	energy_proxy REAL NOT NULL,
	energy_joule REAL,
	emissions_kg REAL,
	PRIMARY KEY (run_id, seq)
);
CREATE INDEX IF NOT EXISTS results_cell ON results (algo, n, mode);
`

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// RunSummary describes a stored run without its results.
type RunSummary struct {
	ID          string
	StartedAt   time.Time
	Repetitions int
	Results     int
	Host        bench.Host
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores rep and returns its run ID. A new ID is generated when
// rep.RunID is empty.
func (s *Store) SaveRun(ctx context.Context, rep report.Report) (string, error) {
	id := rep.RunID
	if id == "" {
		id = uuid.NewString()
	}
	host, err := json.Marshal(rep.Host)
	if err != nil {
		return "", fmt.Errorf("failed to encode host: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, repetitions, host) VALUES (?, ?, ?, ?)`,
		id, rep.StartedAt.UnixNano(), rep.Repetitions, string(host),
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO results
		(run_id, seq, algo, n, mode, repetitions, avg_time_ms, avg_comp, avg_assign, energy_proxy, energy_joule, emissions_kg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, r := range rep.Results {
		if _, err := stmt.ExecContext(ctx,
			id, i, string(r.Algorithm), r.N, string(r.Scenario), r.Repetitions,
			r.AvgTimeMs, r.AvgComparisons, r.AvgAssignments, r.EnergyProxy,
			nullFloat(r.EnergyJoule), nullFloat(r.EmissionsKg),
		); err != nil {
			return "", fmt.Errorf("failed to insert result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Runs lists stored runs, newest first. limit <= 0 means no limit.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.started_at, r.repetitions, r.host, COUNT(res.seq)
		FROM runs r LEFT JOIN results res ON res.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			sum   RunSummary
			nanos int64
			host  string
		)
		if err := rows.Scan(&sum.ID, &nanos, &sum.Repetitions, &host, &sum.Results); err != nil {
			return nil, err
		}
		sum.StartedAt = time.Unix(0, nanos).UTC()
		if err := json.Unmarshal([]byte(host), &sum.Host); err != nil {
			return nil, fmt.Errorf("run %s: failed to decode host: %w", sum.ID, err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Run loads one stored run.
func (s *Store) Run(ctx context.Context, id string) (report.Report, error) {
	rep := report.Report{RunID: id}

	var (
		nanos int64
		host  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT started_at, repetitions, host FROM runs WHERE id = ?`, id,
	).Scan(&nanos, &rep.Repetitions, &host)
	if errors.Is(err, sql.ErrNoRows) {
		return rep, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return rep, err
	}
	rep.StartedAt = time.Unix(0, nanos).UTC()
	if err := json.Unmarshal([]byte(host), &rep.Host); err != nil {
		return rep, fmt.Errorf("failed to decode host: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT algo, n, mode, repetitions, avg_time_ms, avg_comp, avg_assign, energy_proxy, energy_joule, emissions_kg
		FROM results WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return rep, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r          bench.Result
			algo, mode string
			joule, kg  sql.NullFloat64
		)
		if err := rows.Scan(&algo, &r.N, &mode, &r.Repetitions, &r.AvgTimeMs,
			&r.AvgComparisons, &r.AvgAssignments, &r.EnergyProxy, &joule, &kg); err != nil {
			return rep, err
		}
		r.Algorithm = bench.Algorithm(algo)
		r.Scenario = scenario.Scenario(mode)
		r.EnergyJoule = floatPtr(joule)
		r.EmissionsKg = floatPtr(kg)
		rep.Results = append(rep.Results, r)
	}
	return rep, rows.Err()
}

// Delete removes a run and its results.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE run_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return tx.Commit()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
