// Package store persists solve results in a SQL database.
//
// Two drivers are supported through database/sql:
//   - "sqlite": modernc.org/sqlite, a pure-Go embedded database. Use a file
//     path or ":memory:" as the DSN.
//   - "mysql": github.com/go-sql-driver/mysql, e.g.
//     "user:pass@tcp(localhost:3306)/shortpath".
//
// Schema:
//   - solve_runs: one row per stored solve (label, source, graph size, time).
//   - solve_labels: one row per vertex of that solve, in handle order.
//     distance is NULL for unreachable vertices, predecessor is NULL for the
//     source and for unreachable vertices.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/shortpath/core"
)

// Supported driver names.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

var (
	// ErrUnsupportedDriver indicates a driver name other than DriverSQLite or DriverMySQL.
	ErrUnsupportedDriver = errors.New("store: unsupported driver")

	// ErrRunNotFound indicates that no run with the requested id exists.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrNilGraph indicates that SaveRun was given a nil graph.
	ErrNilGraph = errors.New("store: graph is nil")
)

// Label is the stored result for one vertex.
type Label struct {
	Vertex      string
	Distance    float64 // +Inf when unreachable
	Predecessor string  // empty for the source and unreachable vertices
}

// Run is one stored solve.
type Run struct {
	ID        int64
	Label     string
	Source    string
	Vertices  int
	Edges     int
	CreatedAt time.Time
	Labels    []Label
}

// Store is a handle to the result database. It is safe for concurrent use
// to the extent *sql.DB is.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to dsn with driver, verifies the connection and creates the
// schema if needed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverMySQL {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One connection: ":memory:" databases are per connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		if _, err = db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: enable foreign keys: %w", err)
		}
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err = s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the driver name the store was opened with.
func (s *Store) Driver() string { return s.driver }

// createTables creates the schema with the DDL of the store's dialect.
func (s *Store) createTables(ctx context.Context) error {
	ddl := sqliteSchema
	if s.driver == DriverMySQL {
		ddl = mysqlSchema
	}
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: create schema: %w", err)
		}
	}

	return nil
}

// SaveRun stores the labels currently held by g, as left by a solve from
// source, under label. All rows are written in one transaction.
// It returns the id of the new run.
func (s *Store) SaveRun(ctx context.Context, label string, g *core.Graph, source core.VertexID) (id int64, err error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.Has(source) {
		return 0, fmt.Errorf("store: %w: source=%d", core.ErrVertexNotFound, source)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO solve_runs (label, source, vertices, edges, created_unix) VALUES (?, ?, ?, ?, ?)",
		label, g.Name(source), g.VertexCount(), g.EdgeCount(), time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO solve_labels (run_id, vertex_index, vertex, distance, predecessor) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("store: prepare labels: %w", err)
	}
	defer stmt.Close()

	var (
		dist sql.NullFloat64
		pred sql.NullString
	)
	for _, v := range g.Vertices() {
		d := g.Dist(v)
		dist = sql.NullFloat64{Float64: d, Valid: !math.IsInf(d, 0) && !math.IsNaN(d)}
		pred = sql.NullString{}
		if p := g.Prev(v); p != core.NoVertex {
			pred = sql.NullString{String: g.Name(p), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx, id, int(v), g.Name(v), dist, pred); err != nil {
			return 0, fmt.Errorf("store: insert label %q: %w", g.Name(v), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}

	return id, nil
}

// LoadRun reads the run with the given id and its labels in handle order.
func (s *Store) LoadRun(ctx context.Context, id int64) (Run, error) {
	run := Run{ID: id}
	var created int64
	err := s.db.QueryRowContext(ctx,
		"SELECT label, source, vertices, edges, created_unix FROM solve_runs WHERE id = ?", id).
		Scan(&run.Label, &run.Source, &run.Vertices, &run.Edges, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: id=%d", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: load run %d: %w", id, err)
	}
	run.CreatedAt = time.Unix(created, 0).UTC()

	rows, err := s.db.QueryContext(ctx,
		"SELECT vertex, distance, predecessor FROM solve_labels WHERE run_id = ? ORDER BY vertex_index", id)
	if err != nil {
		return Run{}, fmt.Errorf("store: load labels of run %d: %w", id, err)
	}
	defer rows.Close()

	run.Labels = make([]Label, 0, run.Vertices)
	var (
		l    Label
		dist sql.NullFloat64
		pred sql.NullString
	)
	for rows.Next() {
		if err = rows.Scan(&l.Vertex, &dist, &pred); err != nil {
			return Run{}, fmt.Errorf("store: scan label: %w", err)
		}
		l.Distance = core.Unreached
		if dist.Valid {
			l.Distance = dist.Float64
		}
		l.Predecessor = pred.String
		run.Labels = append(run.Labels, l)
	}
	if err = rows.Err(); err != nil {
		return Run{}, fmt.Errorf("store: iterate labels: %w", err)
	}

	return run, nil
}
