// Package storage provides SQLite-based persistence for run reports.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run kinds.
const (
	KindFire  = "fire"
	KindTrial = "trial"
)

const timeLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run reports.
type Store struct {
	db *sql.DB
}

// Run is the report of one fire session or reliability trial.
type Run struct {
	ID          int64
	RunID       uuid.UUID
	Kind        string // KindFire or KindTrial
	Preset      string
	Seed        int64
	Shots       int     // Projectiles fired (fire runs)
	Hits        int     // Damage events applied (trial runs)
	BrokenRatio float64 // Share of weapons broken at the end
	FinalStatus float64 // Mean status at the end
	Duration    time.Duration
	CreatedAt   time.Time
}

// Stats aggregates the runs of one preset.
type Stats struct {
	Runs            int
	TotalShots      int
	TotalHits       int
	MeanBrokenRatio float64
	MeanFinalStatus float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			preset TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			broken_ratio REAL NOT NULL DEFAULT 0,
			final_status REAL NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_preset ON runs(preset);
		CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run report. A zero RunID is replaced by a new UUID and a
// zero CreatedAt by the current time. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Kind != KindFire && r.Kind != KindTrial {
		return 0, fmt.Errorf("storage: unknown run kind %q", r.Kind)
	}
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, kind, preset, seed, shots, hits, broken_ratio, final_status, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID.String(), r.Kind, r.Preset, r.Seed, r.Shots, r.Hits,
		r.BrokenRatio, r.FinalStatus, r.Duration.Milliseconds(),
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, kind, preset, seed, shots, hits, broken_ratio, final_status, duration_ms, created_at`

// Runs retrieves the latest runs, newest first. An empty preset matches all
// presets. A non-positive limit defaults to 20.
func (s *Store) Runs(preset string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR preset = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		preset, preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID returns the run with the given UUID or ErrNotFound.
func (s *Store) RunByID(id uuid.UUID) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, id.String())

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	return r, err
}

// Stats aggregates all runs recorded for preset.
func (s *Store) Stats(preset string) (Stats, error) {
	var st Stats
	var brokenRatio, finalStatus sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(shots), 0), COALESCE(SUM(hits), 0), AVG(broken_ratio), AVG(final_status)
		 FROM runs WHERE preset = ?`,
		preset,
	).Scan(&st.Runs, &st.TotalShots, &st.TotalHits, &brokenRatio, &finalStatus)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.MeanBrokenRatio = brokenRatio.Float64
	st.MeanFinalStatus = finalStatus.Float64
	return st, nil
}

// DeleteRuns removes every run of preset. Returns the number of rows removed.
func (s *Store) DeleteRuns(preset string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM runs WHERE preset = ?", preset)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete runs: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var runID string
	var durationMs int64
	var createdAt any
	err := sc.Scan(&r.ID, &runID, &r.Kind, &r.Preset, &r.Seed, &r.Shots, &r.Hits,
		&r.BrokenRatio, &r.FinalStatus, &durationMs, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if r.RunID, err = uuid.Parse(runID); err != nil {
		return Run{}, fmt.Errorf("storage: malformed run id %q: %w", runID, err)
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
