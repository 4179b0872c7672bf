package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// CSVSink writes one <Table>.csv file per table into a directory.
type CSVSink struct {
	dir string
}

// NewCSVSink creates a sink writing into dir. The directory is created on
// the first Write.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{dir: dir}
}

// Dir returns the output directory.
func (s *CSVSink) Dir() string {
	return s.dir
}

// Write writes every table, checking ctx between tables.
func (s *CSVSink) Write(ctx context.Context, tables []Table) ([]Written, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	written := make([]Written, 0, len(tables))
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(s.dir, t.Name+".csv")
		if err := writeCSVFile(path, t); err != nil {
			return written, fmt.Errorf("writing %s: %w", t.Name, err)
		}

		slog.Debug("table written", "table", t.Name, "rows", t.Len, "path", path)
		written = append(written, Written{Table: t.Name, Path: path, Rows: t.Len})
	}
	return written, nil
}

func writeCSVFile(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(f)
	if err := WriteCSV(buf, t); err != nil {
		return err
	}
	return buf.Flush()
}

// WriteCSV writes the header and every row of t to w.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for i := 0; i < t.Len; i++ {
		values := t.Row(i)
		if len(values) != len(t.Columns) {
			return fmt.Errorf("row %d has %d values for %d columns", i, len(values), len(t.Columns))
		}
		for j, col := range t.Columns {
			s, err := col.Format(values[j])
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			record[j] = s
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
