package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/sync-names/internal/namesync"
)

const maxActivityEntries = 8

// Phase tracks which part of the run the display is in.
type Phase int

// Run phases, in order.
const (
	PhaseWalking Phase = iota
	PhaseResolving
	PhaseDone
	PhaseError
)

// RunStats aggregates the counters shown in the view.
type RunStats struct {
	Processed       int
	Renamed         int
	Copied          int
	Collisions      int
	ResolvedRenames int
	ResolvedCopies  int
}

// RunFunc executes both engine phases, emitting events to the given emitter.
// The TUI runs it once in the background and renders until it returns.
type RunFunc func(emitter namesync.EventEmitter) error

// runFinishedMsg is sent when the RunFunc returns.
type runFinishedMsg struct {
	err error
}

// Model is the bubbletea model for a sync run.
type Model struct {
	run    RunFunc
	bridge *EventBridge

	spin spinner.Model
	bar  progress.Model

	phase      Phase
	stats      RunStats
	resolved   int // collisions resolved so far
	currentDir string
	activity   []string
	err        error
	width      int
}

// NewModel creates a model that will execute run and render its progress.
func NewModel(run RunFunc) *Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		run:    run,
		bridge: NewEventBridge(),
		spin:   spin,
		bar:    progress.New(progress.WithDefaultGradient()),
		phase:  PhaseWalking,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startRun(), m.bridge.ListenCmd())
}

// startRun executes the engine in the background and reports its outcome.
func (m *Model) startRun() tea.Cmd {
	return func() tea.Msg {
		err := m.run(m.bridge)
		m.bridge.Close()

		return runFinishedMsg{err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// The engine has no mid-operation cancellation; quitting the
			// display abandons the run output, not the run itself.
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-4, progressBarWidth)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case EngineEventMsg:
		m.applyEvent(msg.Event)

		return m, m.bridge.ListenCmd()

	case runFinishedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = PhaseError
		} else {
			m.phase = PhaseDone
		}

		return m, tea.Quit
	}

	return m, nil
}

// Err returns the run error, if any, for the caller to report after the
// program exits.
func (m *Model) Err() error {
	return m.err
}

// Stats returns the aggregated counters (for testing).
func (m *Model) Stats() RunStats {
	return m.stats
}

// CurrentPhase returns the display phase (for testing).
func (m *Model) CurrentPhase() Phase {
	return m.phase
}

//nolint:cyclop // One case per event type
func (m *Model) applyEvent(event namesync.Event) {
	switch ev := event.(type) {
	case namesync.DirStarted:
		m.currentDir = ev.Source

	case namesync.FileProcessed:
		m.stats.Processed++

	case namesync.FileRenamed:
		m.addActivity("renamed  " + ev.OldPath + " → " + ev.NewBase)
		m.stats.Renamed++

	case namesync.FileCopied:
		m.addActivity("copied   " + ev.Source)
		m.stats.Copied++

	case namesync.CollisionFound:
		m.addActivity("deferred " + ev.Source)
		m.stats.Collisions++

	case namesync.WalkComplete:
		m.stats.Processed = ev.Processed
		m.stats.Renamed = ev.Renamed
		m.stats.Copied = ev.Copied
		m.stats.Collisions = ev.Collisions
		m.phase = PhaseResolving

	case namesync.CollisionResolved:
		m.resolved++
		if ev.Copied {
			m.stats.ResolvedCopies++
			m.addActivity("fallback " + ev.Source + " → " + ev.NewBase)
		} else {
			m.stats.ResolvedRenames++
			m.addActivity("resolved " + ev.Target + " → " + ev.NewBase)
		}

	case namesync.ResolveComplete:
		m.stats.ResolvedRenames = ev.Renamed
		m.stats.ResolvedCopies = ev.Copied
	}
}

func (m *Model) addActivity(line string) {
	m.activity = append(m.activity, line)
	if len(m.activity) > maxActivityEntries {
		m.activity = m.activity[len(m.activity)-maxActivityEntries:]
	}
}
