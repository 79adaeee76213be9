// Package tui drives an interval walking session in the terminal. It
// owns the tick source: once a second it reads the wall clock and hands
// the instant to the scheduler, which does the actual phase accounting.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stridewalk/stride/config"
	"github.com/stridewalk/stride/mirror"
	"github.com/stridewalk/stride/phase"
)

const (
	padding  = 2
	maxWidth = 80
)

// Params wires a session view to its collaborators.
type Params struct {
	Sched *phase.Scheduler
	Cfg   *config.AppConfig

	// Commands carries remote commands from companion clients. May be
	// nil when no mirror server is running.
	Commands <-chan mirror.Command

	// Metrics supplies activity measurements for manually ended
	// sessions. May be nil.
	Metrics phase.MetricsSource

	// OnEnd receives the summary of a manually ended session. Naturally
	// completed sessions are reported through the scheduler's notifier
	// instead.
	OnEnd func(phase.Summary)
}

type styles struct {
	base      lipgloss.Style
	countdown lipgloss.Style
	phase     map[phase.Kind]lipgloss.Style
	hint      lipgloss.Style
}

func newStyles() styles {
	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		countdown: lipgloss.NewStyle().Bold(true),
		phase: map[phase.Kind]lipgloss.Style{
			phase.Warmup:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
			phase.Brisk:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
			phase.Easy:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
			phase.Cooldown: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
			phase.Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		},
		hint: lipgloss.NewStyle().Faint(true),
	}
}

// Model is the bubbletea model for a running session.
type Model struct {
	sched    *phase.Scheduler
	cfg      *config.AppConfig
	commands <-chan mirror.Command
	metrics  phase.MetricsSource
	onEnd    func(phase.Summary)

	progress progress.Model
	help     help.Model
	styles   styles

	// frozenRemaining and frozenPercent hold the countdown and progress
	// captured at the moment of a local or remote pause so the paused
	// view can keep displaying them.
	frozenRemaining time.Duration
	frozenPercent   float64

	now func() time.Time
}

func NewModel(p Params) *Model {
	return &Model{
		sched:    p.Sched,
		cfg:      p.Cfg,
		commands: p.Commands,
		metrics:  p.Metrics,
		onEnd:    p.OnEnd,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		styles:   newStyles(),
		now:      time.Now,
	}
}

// Run starts the session and blocks until it completes or is ended.
func Run(p Params) error {
	m := NewModel(p)

	if err := m.sched.Start(p.Cfg.Session, m.now()); err != nil {
		return err
	}

	_, err := tea.NewProgram(m).Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.listenRemote())
}

type tickMsg time.Time

type remoteMsg mirror.Command

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenRemote blocks on the companion command channel and surfaces the
// next command as a message, so remote and local input mutate the
// scheduler from the same update loop.
func (m *Model) listenRemote() tea.Cmd {
	if m.commands == nil {
		return nil
	}

	return func() tea.Msg {
		cmd, ok := <-m.commands
		if !ok {
			return nil
		}

		return remoteMsg(cmd)
	}
}

// endSession finishes the session early and reports its summary.
func (m *Model) endSession() {
	var metrics phase.Metrics
	if m.metrics != nil {
		metrics = m.metrics.SessionMetrics()
	}

	sum := m.sched.End(m.now(), metrics)
	if sum != nil && m.onEnd != nil {
		m.onEnd(*sum)
	}
}
