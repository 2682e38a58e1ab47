package planstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cueplan/internal/config"
	"cueplan/internal/plan"
)

// ErrNotFound is returned when a run ID has no stored plan.
var ErrNotFound = errors.New("plan run not found")

// ErrLocked is returned when another process holds the store lock.
var ErrLocked = errors.New("plan store is locked by another process")

// Record is the summary row for one stored plan run.
type Record struct {
	RunID        string
	Title        string
	CreatedAt    time.Time
	Source       plan.Source
	TotalSeconds float64
	BlockCount   int
	Cut1         *float64
	Cut2         *float64
}

// Store manages plan run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the plan database under the configured
// data directory and takes the store lock.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.DataDir, "plans.db"))
}

// OpenPath opens a store at an explicit database path.
func OpenPath(dbPath string) (*Store, error) {
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the database connection and the store lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save persists one plan run. The title is display-only metadata; the run ID
// comes from the plan itself.
func (s *Store) Save(ctx context.Context, title string, p *plan.Plan) error {
	if p == nil {
		return errors.New("plan is nil")
	}
	if p.RunID == "" {
		return errors.New("plan has no run id")
	}

	planJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	var cut1, cut2 any
	if p.Boundary != nil {
		cut1 = p.Boundary.Cut1
		cut2 = p.Boundary.Cut2
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO plan_runs (
            id, title, created_at, source, total_seconds, block_count, cut1, cut2, plan_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.RunID,
		title,
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(p.Source),
		p.TotalSeconds,
		len(p.Blocks),
		cut1,
		cut2,
		string(planJSON),
	)
	if err != nil {
		return fmt.Errorf("insert plan run: %w", err)
	}
	return nil
}

// Get loads a full plan by run ID.
func (s *Store) Get(ctx context.Context, runID string) (*plan.Plan, error) {
	var planJSON string
	row := s.db.QueryRowContext(ctx, `SELECT plan_json FROM plan_runs WHERE id = ?`, runID)
	if err := row.Scan(&planJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get plan run: %w", err)
	}

	var p plan.Plan
	if err := json.Unmarshal([]byte(planJSON), &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &p, nil
}

// List returns run summaries, newest first. A non-positive limit returns
// every run.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, title, created_at, source, total_seconds, block_count, cut1, cut2
        FROM plan_runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plan runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec        Record
			createdRaw string
			source     string
			cut1       sql.NullFloat64
			cut2       sql.NullFloat64
		)
		if err := rows.Scan(&rec.RunID, &rec.Title, &createdRaw, &source, &rec.TotalSeconds, &rec.BlockCount, &cut1, &cut2); err != nil {
			return nil, fmt.Errorf("scan plan run: %w", err)
		}
		rec.Source = plan.Source(source)
		if created, parseErr := time.Parse(time.RFC3339Nano, createdRaw); parseErr == nil {
			rec.CreatedAt = created
		}
		if cut1.Valid {
			v := cut1.Float64
			rec.Cut1 = &v
		}
		if cut2.Valid {
			v := cut2.Float64
			rec.Cut2 = &v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Remove deletes a run by ID, reporting whether a row was removed.
func (s *Store) Remove(ctx context.Context, runID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plan_runs WHERE id = ?`, runID)
	if err != nil {
		return false, fmt.Errorf("delete plan run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
