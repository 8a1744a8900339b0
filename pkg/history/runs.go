package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/layout"
	"github.com/chordsat/chordsat/pkg/search"
)

// Status is the state of a run.
type Status string

const (
	Running  Status = "running"
	Finished Status = "finished"
	Failed   Status = "failed"
)

// Run summarises one search.
type Run struct {
	ID         string
	Started    time.Time
	Finished   time.Time
	ConfigHash string
	// Parameters is the parameter set as JSON.
	Parameters string
	Status     Status

	Best             float64
	LowestInfeasible float64
	LowestUnknown    float64
	Confidence       string
	Throughput       float64
	Iterations       int
	Error            string
}

// Iteration is one recorded query.
type Iteration struct {
	Number  int
	Guess   float64
	Result  string
	Elapsed time.Duration
	Depth   int
}

// Assignment is the chord a run gave to a gram.
type Assignment struct {
	Position int
	Gram     string
	Chord    chord.Chord
	// Cost of typing the gram once, as an exact fraction.
	Cost string
}

// Detail is a run with everything recorded for it.
type Detail struct {
	Run
	Queries     []Iteration
	Assignments []Assignment
}

// ErrNotFound is returned for an unknown run id.
var ErrNotFound = errors.New("run not found")

// StartRun records the start of a search.
func (s *Store) StartRun(ctx context.Context, configHash string, parameters []byte) (*Run, error) {
	now := time.Now().UTC()
	r := &Run{
		ID:               s.newID(now),
		Started:          now,
		ConfigHash:       configHash,
		Parameters:       string(parameters),
		Status:           Running,
		LowestInfeasible: infinity,
		LowestUnknown:    infinity,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, config_hash, parameters, status) VALUES (?, ?, ?, ?, ?)`,
		r.ID, now.Format(time.RFC3339Nano), configHash, r.Parameters, string(Running))
	if err != nil {
		return nil, errors.Wrap(err, "inserting run")
	}
	return r, nil
}

// RecordIteration stores one query of a run.
func (s *Store) RecordIteration(ctx context.Context, runID string, it search.Iteration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO iterations (run_id, number, guess, result, elapsed_ns, depth) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, it.Number, it.Guess, it.Result.String(), int64(it.Elapsed), it.Depth)
	return errors.Wrapf(err, "recording iteration %d", it.Number)
}

// FinishRun stores the outcome of a search and, when one was found, its
// layout. runErr marks the run failed.
func (s *Store) FinishRun(ctx context.Context, runID string, out *search.Outcome, l *layout.Layout, runErr error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, message := Finished, sql.NullString{}
	if runErr != nil {
		status = Failed
		message = sql.NullString{String: runErr.Error(), Valid: true}
	}
	var (
		best, infeasible, unknown, throughput sql.NullFloat64
		confidence                            sql.NullString
		iterations                            int
	)
	if out != nil {
		best = nullable(out.Best)
		infeasible = nullable(out.LowestInfeasible)
		unknown = nullable(out.LowestUnknown)
		confidence = sql.NullString{String: out.Confidence.String(), Valid: true}
		iterations = out.Iterations
	}
	if l != nil {
		throughput = nullable(l.Throughput)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, status = ?, best = ?, lowest_infeasible = ?, lowest_unknown = ?,
		        confidence = ?, throughput = ?, iterations = ?, error = ?
		 WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), string(status), best, infeasible, unknown,
		confidence, throughput, iterations, message, runID)
	if err != nil {
		return errors.Wrap(err, "updating run")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.Wrap(ErrNotFound, runID)
	}

	if l != nil {
		for i, ch := range l.Chords {
			if ch == chord.Null {
				continue
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO assignments (run_id, position, gram, chord, cost) VALUES (?, ?, ?, ?, ?)`,
				runID, i, l.Corpus.Grams[i].Text, int(ch), l.Costs[i].RatString())
			if err != nil {
				return errors.Wrap(err, "inserting assignment")
			}
		}
	}
	return tx.Commit()
}

const runColumns = `id, started_at, finished_at, config_hash, parameters, status, best,
	lowest_infeasible, lowest_unknown, confidence, throughput, iterations, error`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (Run, error) {
	var (
		r                                     Run
		started                               string
		finished, confidence, message         sql.NullString
		status                                string
		best, infeasible, unknown, throughput sql.NullFloat64
	)
	err := row.Scan(&r.ID, &started, &finished, &r.ConfigHash, &r.Parameters, &status, &best,
		&infeasible, &unknown, &confidence, &throughput, &r.Iterations, &message)
	if err != nil {
		return r, err
	}
	r.Started, _ = time.Parse(time.RFC3339Nano, started)
	if finished.Valid {
		r.Finished, _ = time.Parse(time.RFC3339Nano, finished.String)
	}
	r.Status = Status(status)
	r.Best = best.Float64
	r.LowestInfeasible = orInf(infeasible)
	r.LowestUnknown = orInf(unknown)
	r.Confidence = confidence.String
	r.Throughput = throughput.Float64
	r.Error = message.String
	return r, nil
}

// List returns up to limit runs, newest first. A non-positive limit
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
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
	return runs, rows.Err()
}

// Show returns a run with its iterations and assignments.
func (s *Store) Show(ctx context.Context, id string) (*Detail, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, errors.Wrap(ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	d := &Detail{Run: r}

	rows, err := s.db.QueryContext(ctx,
		`SELECT number, guess, result, elapsed_ns, depth FROM iterations WHERE run_id = ? ORDER BY number`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			it      Iteration
			elapsed int64
		)
		if err := rows.Scan(&it.Number, &it.Guess, &it.Result, &elapsed, &it.Depth); err != nil {
			return nil, err
		}
		it.Elapsed = time.Duration(elapsed)
		d.Queries = append(d.Queries, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT position, gram, chord, cost FROM assignments WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			a  Assignment
			ch int
		)
		if err := rows.Scan(&a.Position, &a.Gram, &ch, &a.Cost); err != nil {
			return nil, err
		}
		a.Chord = chord.Chord(ch)
		d.Assignments = append(d.Assignments, a)
	}
	return d, rows.Err()
}
