package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/sopgen/sopgen/internal/config"
	"github.com/sopgen/sopgen/internal/pipeline"
	"github.com/sopgen/sopgen/internal/testutil"
)

func smallConfig() pipeline.Config {
	return testutil.FixtureConfig(3, func(c *pipeline.Config) {
		c.HorizonDays = 14
		c.Forecasts = 5
	})
}

func newTestProgress(cancel context.CancelFunc) *Progress {
	return NewProgress(NewTheme(config.ColorSchemeGreen), cancel)
}

// waitFor is a convenience wrapper around teatest.WaitFor with a standard timeout.
func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(text))
	}, teatest.WithDuration(5*time.Second))
}

func TestProgress_InitialView(t *testing.T) {
	p := newTestProgress(nil)
	view := p.View()

	for _, st := range pipeline.Stages {
		if !strings.Contains(view, string(st)) {
			t.Errorf("view missing stage %q", st)
		}
	}
	if !strings.Contains(view, "[q]cancel") {
		t.Error("view should show cancel help")
	}
	if p.Completed() != 0 {
		t.Errorf("Completed() = %d, want 0", p.Completed())
	}
}

func TestProgress_StageEvents(t *testing.T) {
	p := newTestProgress(nil)

	p.Update(StageMsg{Stage: pipeline.StageMasterData, Status: pipeline.StatusStarted})
	if !strings.Contains(p.View(), "running") {
		t.Error("started stage should render as running")
	}

	p.Update(StageMsg{Stage: pipeline.StageMasterData, Status: pipeline.StatusFinished, Rows: 1240, Elapsed: 3 * time.Millisecond})
	if p.Completed() != 1 {
		t.Errorf("Completed() = %d, want 1", p.Completed())
	}
	if !strings.Contains(p.View(), "1240 rows") {
		t.Error("finished stage should show its row count")
	}

	// Unknown stages are ignored.
	p.Update(StageMsg{Stage: "unknown", Status: pipeline.StatusFinished})
	if p.Completed() != 1 {
		t.Errorf("Completed() = %d after unknown stage, want 1", p.Completed())
	}
}

func TestProgress_QuitCancelsRun(t *testing.T) {
	cancelled := false
	p := newTestProgress(func() { cancelled = true })

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !cancelled {
		t.Fatal("quit key should cancel the run")
	}
	if cmd != nil {
		t.Error("model should wait for the pipeline to return before quitting")
	}
	if !strings.Contains(p.View(), "CANCELLING") {
		t.Error("view should show cancelling state")
	}

	_, cmd = p.Update(DoneMsg{Err: context.Canceled})
	if cmd == nil {
		t.Fatal("DoneMsg should quit the program")
	}
	if _, err := p.Result(); !errors.Is(err, context.Canceled) {
		t.Errorf("Result() error = %v, want context.Canceled", err)
	}
	if !strings.Contains(p.View(), "FAILED") {
		t.Error("view should show the failure")
	}
}

func TestProgress_OtherKeysIgnored(t *testing.T) {
	cancelled := false
	p := newTestProgress(func() { cancelled = true })

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cancelled || cmd != nil {
		t.Error("non-quit keys should be ignored")
	}
}

func TestE2E_ProgressCompletes(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestProgress(nil),
		teatest.WithInitialTermSize(80, 24))

	waitFor(t, tm, "kpi dashboard")

	for _, st := range pipeline.Stages {
		tm.Send(StageMsg{Stage: st, Status: pipeline.StatusFinished, Rows: 7})
	}
	waitFor(t, tm, "11/11")

	tm.Send(DoneMsg{Dataset: &pipeline.Dataset{RunID: "run"}})

	m := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	p, ok := m.(*Progress)
	if !ok {
		t.Fatalf("final model is %T, want *Progress", m)
	}
	ds, err := p.Result()
	if err != nil || ds == nil || ds.RunID != "run" {
		t.Errorf("Result() = %v, %v", ds, err)
	}
}

func TestRun_GeneratesDataset(t *testing.T) {
	cfg := smallConfig()

	ds, err := Run(context.Background(), cfg, NewTheme(config.ColorSchemeGreen),
		tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want, err := pipeline.NewGenerator(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if ds.RunID != want.RunID {
		t.Errorf("RunID = %s, want %s", ds.RunID, want.RunID)
	}
	if len(ds.KPI.Records) != len(want.KPI.Records) {
		t.Errorf("KPI rows = %d, want %d", len(ds.KPI.Records), len(want.KPI.Records))
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallConfig(), NewTheme(config.ColorSchemeGreen),
		tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestProgress_LongStageNameTruncated(t *testing.T) {
	p := newTestProgress(nil)
	line := p.renderRow(stageRow{stage: pipeline.Stage("supply disruption reconciliation")})

	if !strings.Contains(line, "supply disruption r…") {
		t.Errorf("renderRow() = %q, want truncated stage name", line)
	}
	if strings.Contains(line, "reconciliation") {
		t.Errorf("renderRow() = %q, stage name not truncated", line)
	}
}
