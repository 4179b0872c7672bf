package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sopgen/sopgen/internal/config"
	"github.com/sopgen/sopgen/internal/export"
	"github.com/sopgen/sopgen/internal/pipeline"
)

func TestRenderSummary_ThousandsSeparators(t *testing.T) {
	s := Summary{
		RunID:  "8f0c6f0e-0000-5000-8000-000000000000",
		Seed:   42,
		CSVDir: "sample_data",
		Tables: []TableCount{
			{Name: "Product", Rows: 100},
			{Name: "Inventory", Rows: 730000},
			{Name: "KPI_Dashboard", Rows: 2555},
		},
	}

	out := RenderSummary(s, NewTheme(config.ColorSchemeGreen))

	for _, want := range []string{"RUN SUMMARY", s.RunID, "730,000", "2,555", "732,655", "sample_data"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "SQLite:") {
		t.Error("summary should omit SQLite when no database was written")
	}
	if strings.Contains(out, "skipped") {
		t.Error("summary should omit skipped dates when there are none")
	}
}

func TestRenderSummary_Warnings(t *testing.T) {
	s := Summary{
		RunID:      "run",
		SQLitePath: "out/sop.db",
		Skipped:    3,
		Fallback:   true,
	}

	out := RenderSummary(s, NewTheme(config.ColorSchemeAmber))

	for _, want := range []string{"out/sop.db", "KPI dates skipped (misaligned): 3", "fallback plants"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestNewSummary(t *testing.T) {
	ds, err := pipeline.NewGenerator(smallConfig()).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	written := []export.Written{
		{Table: export.TableProduct, Rows: len(ds.Master.Products)},
		{Table: export.TableKPIDashboard, Rows: len(ds.KPI.Records)},
	}
	s := NewSummary(ds, written, "out", "", time.Second)

	if s.RunID != ds.RunID || s.Seed != 3 {
		t.Errorf("summary identity = %s/%d", s.RunID, s.Seed)
	}
	if len(s.Tables) != 2 {
		t.Fatalf("tables = %d, want 2", len(s.Tables))
	}
	if got, want := s.TotalRows(), len(ds.Master.Products)+len(ds.KPI.Records); got != want {
		t.Errorf("TotalRows() = %d, want %d", got, want)
	}
}
