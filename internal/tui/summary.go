package tui

import (
	"strings"
	"time"

	"github.com/sopgen/sopgen/internal/export"
	"github.com/sopgen/sopgen/internal/pipeline"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TableCount is the number of rows written for one table.
type TableCount struct {
	Name string
	Rows int
}

// Summary describes a finished run.
type Summary struct {
	RunID      string
	Seed       int64
	Tables     []TableCount
	CSVDir     string
	SQLitePath string
	Skipped    int
	Fallback   bool
	Elapsed    time.Duration
}

// NewSummary builds a summary from a dataset and the tables written for it.
func NewSummary(ds *pipeline.Dataset, written []export.Written, csvDir, sqlitePath string, elapsed time.Duration) Summary {
	s := Summary{
		RunID:      ds.RunID,
		Seed:       ds.Config.Seed,
		CSVDir:     csvDir,
		SQLitePath: sqlitePath,
		Skipped:    len(ds.KPI.Skipped),
		Fallback:   ds.Production.Assignment.Fallback,
		Elapsed:    elapsed,
	}
	for _, w := range written {
		s.Tables = append(s.Tables, TableCount{Name: w.Table, Rows: w.Rows})
	}
	return s
}

// TotalRows returns the sum of all table row counts.
func (s Summary) TotalRows() int {
	total := 0
	for _, t := range s.Tables {
		total += t.Rows
	}
	return total
}

// RenderSummary renders the per-table row counts and output locations.
func RenderSummary(s Summary, theme *Theme) string {
	p := message.NewPrinter(language.English)

	nameWidth := len("TOTAL")
	for _, t := range s.Tables {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}
	countWidth := len(p.Sprintf("%d", s.TotalRows()))
	if countWidth < len("ROWS") {
		countWidth = len("ROWS")
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("RUN SUMMARY"))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("Run ID:  ") + theme.Value.Render(s.RunID) + "\n")
	b.WriteString(theme.Label.Render("Seed:    ") + theme.Value.Render(p.Sprintf("%d", s.Seed)) + "\n")
	if s.Elapsed > 0 {
		b.WriteString(theme.Label.Render("Elapsed: ") + theme.Value.Render(s.Elapsed.Round(time.Millisecond).String()) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.TableHeader.Render(PadRight("TABLE", nameWidth) + "  " + PadLeft("ROWS", countWidth)))
	b.WriteString("\n")
	b.WriteString(theme.DrawHorizontalLine(nameWidth + 2 + countWidth))
	b.WriteString("\n")

	for i, t := range s.Tables {
		style := theme.TableRow
		if i%2 == 1 {
			style = theme.TableRowAlt
		}
		line := PadRight(t.Name, nameWidth) + "  " + PadLeft(p.Sprintf("%d", t.Rows), countWidth)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(theme.DrawHorizontalLine(nameWidth + 2 + countWidth))
	b.WriteString("\n")
	b.WriteString(theme.TableHeader.Render(PadRight("TOTAL", nameWidth) + "  " + PadLeft(p.Sprintf("%d", s.TotalRows()), countWidth)))
	b.WriteString("\n\n")

	if s.CSVDir != "" {
		b.WriteString(theme.Label.Render("CSV:     ") + theme.Value.Render(s.CSVDir) + "\n")
	}
	if s.SQLitePath != "" {
		b.WriteString(theme.Label.Render("SQLite:  ") + theme.Value.Render(s.SQLitePath) + "\n")
	}
	if s.Skipped > 0 {
		b.WriteString(theme.Warning.Render(p.Sprintf("KPI dates skipped (misaligned): %d", s.Skipped)) + "\n")
	}
	if s.Fallback {
		b.WriteString(theme.Warning.Render("No plant locations: production used fallback plants") + "\n")
	}

	return b.String()
}
