// Package history records layout searches in a SQLite database so runs
// with different parameters can be compared later.
package history

import (
	"database/sql"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Store is a run history backed by SQLite.
type Store struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating database directory")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	db.SetMaxOpenConns(1)

	s := &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrating database")
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// newID returns a ULID; ids of one Store sort in creation order.
func (s *Store) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		id                TEXT PRIMARY KEY,
		started_at        TEXT NOT NULL,
		finished_at       TEXT,
		config_hash       TEXT NOT NULL,
		parameters        TEXT NOT NULL,
		status            TEXT NOT NULL,
		best              REAL,
		lowest_infeasible REAL,
		lowest_unknown    REAL,
		confidence        TEXT,
		throughput        REAL,
		iterations        INTEGER NOT NULL DEFAULT 0,
		error             TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_config ON runs(config_hash);

	CREATE TABLE IF NOT EXISTS iterations (
		run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		number     INTEGER NOT NULL,
		guess      REAL NOT NULL,
		result     TEXT NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		depth      INTEGER NOT NULL,
		PRIMARY KEY (run_id, number)
	);

	CREATE TABLE IF NOT EXISTS assignments (
		run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		gram     TEXT NOT NULL,
		chord    INTEGER NOT NULL,
		cost     TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	`)
	return err
}

// Bounds that were never reached are stored as NULL.
func nullable(f float64) sql.NullFloat64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func orInf(n sql.NullFloat64) float64 {
	if !n.Valid {
		return math.Inf(1)
	}
	return n.Float64
}

var infinity = math.Inf(1)
