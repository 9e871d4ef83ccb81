package solstore

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS solutions (
	instance_key TEXT PRIMARY KEY,
	size         INTEGER NOT NULL,
	threads      INTEGER NOT NULL,
	initial_cost INTEGER NOT NULL,
	final_cost   INTEGER NOT NULL,
	total_gain   INTEGER NOT NULL,
	rounds       INTEGER NOT NULL,
	tour         TEXT    NOT NULL,
	matrix_ms    INTEGER NOT NULL,
	search_ms    INTEGER NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_solutions_created_at ON solutions(created_at);
`

// Record is one solved instance.
type Record struct {
	Key         string
	Size        int
	Threads     int
	InitialCost int64
	FinalCost   int64
	TotalGain   int64
	Rounds      int
	Tour        []int
	MatrixMs    int64
	SearchMs    int64
	CreatedAt   time.Time
}

// Store is a SQLite-backed solution store.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates (or reopens) the store at path and bootstraps the schema.
// The parent directory is created when missing. Use ":memory:" for an
// ephemeral store in tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// KeyFromInput derives the stable instance key: the hex SHA-256 of the raw
// coordinate input. Identical inputs map to identical rows.
func KeyFromInput(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Put upserts a record by its instance key.
func (s *Store) Put(ctx context.Context, rec Record) error {
	tourJSON, err := json.Marshal(rec.Tour)
	if err != nil {
		return fmt.Errorf("failed to encode tour: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `INSERT INTO solutions
	          (instance_key, size, threads, initial_cost, final_cost, total_gain, rounds, tour, matrix_ms, search_ms)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	          ON CONFLICT(instance_key) DO UPDATE SET
	          size=excluded.size, threads=excluded.threads,
	          initial_cost=excluded.initial_cost, final_cost=excluded.final_cost,
	          total_gain=excluded.total_gain, rounds=excluded.rounds,
	          tour=excluded.tour, matrix_ms=excluded.matrix_ms, search_ms=excluded.search_ms,
	          created_at=CURRENT_TIMESTAMP`

	_, err = s.db.ExecContext(ctx, query,
		rec.Key, rec.Size, rec.Threads,
		rec.InitialCost, rec.FinalCost, rec.TotalGain, rec.Rounds,
		string(tourJSON), rec.MatrixMs, rec.SearchMs,
	)
	if err != nil {
		return fmt.Errorf("failed to store solution: %w", err)
	}

	return nil
}

// Get returns the record for key, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, key string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT instance_key, size, threads, initial_cost, final_cost, total_gain, rounds, tour, matrix_ms, search_ms, created_at
	          FROM solutions WHERE instance_key = ?`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, key))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load solution: %w", err)
	}

	return rec, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT instance_key, size, threads, initial_cost, final_cost, total_gain, rounds, tour, matrix_ms, search_ms, created_at
	          FROM solutions ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, serr := scanRecord(rows)
		if serr != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", serr)
		}
		out = append(out, *rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate solutions: %w", err)
	}

	return out, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec      Record
		tourJSON string
	)
	err := row.Scan(
		&rec.Key, &rec.Size, &rec.Threads,
		&rec.InitialCost, &rec.FinalCost, &rec.TotalGain, &rec.Rounds,
		&tourJSON, &rec.MatrixMs, &rec.SearchMs, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal([]byte(tourJSON), &rec.Tour); err != nil {
		return nil, fmt.Errorf("failed to decode tour: %w", err)
	}

	return &rec, nil
}
