package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sopgen/sopgen/internal/database"
	"github.com/sopgen/sopgen/internal/pipeline"
	"github.com/sopgen/sopgen/internal/util"
)

// Run identifies the generation run recorded alongside the tables.
type Run struct {
	ID          string
	Seed        int64
	StartDate   time.Time
	HorizonDays int
	Forecasts   int
}

// RunOf returns the run metadata of ds.
func RunOf(ds *pipeline.Dataset) Run {
	return Run{
		ID:          ds.RunID,
		Seed:        ds.Config.Seed,
		StartDate:   ds.Config.StartDate,
		HorizonDays: ds.Config.HorizonDays,
		Forecasts:   ds.Config.Forecasts,
	}
}

// SQLiteSink loads tables into the migrated schema of a SQLite database.
// Existing rows of every written table are replaced.
type SQLiteSink struct {
	db  *database.DB
	run Run
}

// NewSQLiteSink creates a sink writing into db and recording run.
func NewSQLiteSink(db *database.DB, run Run) *SQLiteSink {
	return &SQLiteSink{db: db, run: run}
}

// Write migrates the schema, then replaces the contents of every table in
// its own transaction and records the run.
func (s *SQLiteSink) Write(ctx context.Context, tables []Table) ([]Written, error) {
	migrator, err := database.NewMigrator(s.db)
	if err != nil {
		return nil, err
	}
	if _, err := migrator.MigrateUp(ctx); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	// Children first so foreign keys hold while clearing.
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %q", tables[i].Name)); err != nil {
			return nil, fmt.Errorf("clearing %s: %w", tables[i].Name, err)
		}
	}

	written := make([]Written, 0, len(tables))
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
			return insertTable(ctx, tx, t)
		}); err != nil {
			return written, fmt.Errorf("loading %s: %w", t.Name, err)
		}

		slog.Debug("table loaded", "table", t.Name, "rows", t.Len)
		written = append(written, Written{Table: t.Name, Path: s.db.Path(), Rows: t.Len})
	}

	if err := s.recordRun(ctx, written); err != nil {
		return written, err
	}
	return written, nil
}

// InsertStatement returns the parameterized INSERT of t.
func InsertStatement(t Table) string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c.Name
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", t.Name, strings.Join(cols, ", "), placeholders)
}

func insertTable(ctx context.Context, tx *sql.Tx, t Table) error {
	stmt, err := tx.PrepareContext(ctx, InsertStatement(t))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for i := 0; i < t.Len; i++ {
		values := t.Row(i)
		for j, col := range t.Columns {
			v, err := col.SQLValue(values[j])
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			args[j] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}
	return nil
}

func (s *SQLiteSink) recordRun(ctx context.Context, written []Written) error {
	counts := make(map[string]int, len(written))
	for _, w := range written {
		counts[w.Table] = w.Rows
	}
	rows, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encoding row counts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO generation_runs
			(run_id, seed, start_date, horizon_days, forecasts, table_rows)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.run.ID, s.run.Seed, util.FormatDate(s.run.StartDate), s.run.HorizonDays, s.run.Forecasts, string(rows),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}
