package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sopgen/sopgen/internal/pipeline"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 80

// stageWidth is the column width of stage names in the progress list.
const stageWidth = 20

// StageMsg carries a pipeline event into the program.
type StageMsg pipeline.Event

// DoneMsg is sent once the pipeline returns.
type DoneMsg struct {
	Dataset *pipeline.Dataset
	Err     error
}

type stageRow struct {
	stage   pipeline.Stage
	status  pipeline.Status
	rows    int
	elapsed time.Duration
}

// Progress is the Bubble Tea model that tracks a generation run.
type Progress struct {
	theme  *Theme
	keys   KeyMap
	cancel context.CancelFunc

	rows  []stageRow
	index map[pipeline.Stage]int
	width int

	cancelling bool
	done       bool
	dataset    *pipeline.Dataset
	err        error
}

// NewProgress creates a progress model listing every stage as pending.
// cancel is called when the user asks to stop the run; it may be nil.
func NewProgress(theme *Theme, cancel context.CancelFunc) *Progress {
	p := &Progress{
		theme:  theme,
		keys:   DefaultKeyMap(),
		cancel: cancel,
		index:  make(map[pipeline.Stage]int, len(pipeline.Stages)),
		width:  MaxContentWidth,
	}
	for i, st := range pipeline.Stages {
		p.rows = append(p.rows, stageRow{stage: st})
		p.index[st] = i
	}
	return p
}

// Init implements tea.Model.
func (p *Progress) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.keys.Quit.Matches(msg) {
			return p, nil
		}
		if p.done {
			return p, tea.Quit
		}
		p.cancelling = true
		if p.cancel != nil {
			p.cancel()
		}
		return p, nil

	case tea.WindowSizeMsg:
		p.width = ContentWidth(msg.Width, 40, MaxContentWidth)
		return p, nil

	case StageMsg:
		i, ok := p.index[msg.Stage]
		if !ok {
			return p, nil
		}
		p.rows[i].status = msg.Status
		if msg.Status == pipeline.StatusFinished {
			p.rows[i].rows = msg.Rows
			p.rows[i].elapsed = msg.Elapsed
		}
		return p, nil

	case DoneMsg:
		p.done = true
		p.dataset = msg.Dataset
		p.err = msg.Err
		return p, tea.Quit
	}

	return p, nil
}

// Completed returns the number of finished stages.
func (p *Progress) Completed() int {
	n := 0
	for _, r := range p.rows {
		if r.status == pipeline.StatusFinished {
			n++
		}
	}
	return n
}

// Result returns the dataset and error reported by DoneMsg.
func (p *Progress) Result() (*pipeline.Dataset, error) {
	return p.dataset, p.err
}

// View implements tea.Model.
func (p *Progress) View() string {
	var b strings.Builder

	b.WriteString(p.theme.Title.Render("SOPGEN DATASET GENERATION"))
	b.WriteString("\n")
	b.WriteString(p.theme.DrawHorizontalLine(p.width))
	b.WriteString("\n")

	for _, r := range p.rows {
		b.WriteString(p.renderRow(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	total := len(p.rows)
	b.WriteString(p.theme.ProgressBar(float64(p.Completed()), float64(total), p.width-12))
	b.WriteString(fmt.Sprintf(" %2d/%d", p.Completed(), total))
	b.WriteString("\n\n")

	switch {
	case p.done && p.err != nil:
		b.WriteString(p.theme.Error.Render("FAILED: " + p.err.Error()))
	case p.done:
		b.WriteString(p.theme.Success.Render("COMPLETE"))
	case p.cancelling:
		b.WriteString(p.theme.Warning.Render("CANCELLING..."))
	default:
		b.WriteString(p.theme.Footer.Render(p.keys.StatusBarHelp()))
	}
	b.WriteString("\n")

	return b.String()
}

func (p *Progress) renderRow(r stageRow) string {
	var marker string
	switch r.status {
	case pipeline.StatusStarted:
		marker = p.theme.Accent.Render("[>]")
	case pipeline.StatusFinished:
		marker = p.theme.Success.Render("[x]")
	case pipeline.StatusFailed:
		marker = p.theme.Error.Render("[!]")
	default:
		marker = p.theme.Muted.Render("[ ]")
	}

	name := p.theme.Label.Render(PadRight(Truncate(string(r.stage), stageWidth), stageWidth))
	status := PadRight(r.status.String(), 8)

	line := marker + " " + name + " " + status
	if r.status == pipeline.StatusFinished {
		line += p.theme.Value.Render(PadLeft(fmt.Sprintf("%d rows", r.rows), 14))
		line += p.theme.Muted.Render(PadLeft(r.elapsed.Round(time.Millisecond).String(), 10))
	}
	return line
}

// Run generates a dataset for cfg while the progress model renders stage
// events. The pipeline runs on its own goroutine and is cancelled when ctx
// ends or the user quits.
func Run(ctx context.Context, cfg pipeline.Config, theme *Theme, opts ...tea.ProgramOption) (*pipeline.Dataset, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewProgress(theme, cancel)
	prog := tea.NewProgram(model, opts...)

	type result struct {
		ds  *pipeline.Dataset
		err error
	}
	results := make(chan result, 1)

	gen := pipeline.NewGenerator(cfg, pipeline.WithObserver(pipeline.ObserverFunc(func(e pipeline.Event) {
		prog.Send(StageMsg(e))
	})))

	go func() {
		ds, err := gen.Generate(ctx)
		results <- result{ds: ds, err: err}
		prog.Send(DoneMsg{Dataset: ds, Err: err})
	}()

	if _, err := prog.Run(); err != nil {
		cancel()
		<-results
		return nil, fmt.Errorf("running progress UI: %w", err)
	}

	res := <-results
	return res.ds, res.err
}
