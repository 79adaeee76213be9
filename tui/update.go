package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stridewalk/stride/mirror"
)

// handleTick hands the current instant to the scheduler, which walks
// past every boundary that has expired since the previous tick.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	m.sched.Tick(time.Time(msg))

	if !m.sched.Active() {
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, m.tick()
}

// freeze captures the countdown and progress of the running phase just
// before a pause takes effect.
func (m *Model) freeze(now time.Time) {
	snap := m.sched.CurrentState()

	m.frozenRemaining = snap.Remaining(now)
	m.frozenPercent = 0

	if total := m.cfg.Session.PhaseDuration(snap.Phase); total > 0 {
		m.frozenPercent = 1 - m.frozenRemaining.Seconds()/total.Seconds()
	}
}

// handleRemote applies a single companion command. Remote commands go
// through the same scheduler methods as local keypresses.
func (m *Model) handleRemote(msg remoteMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch mirror.Command(msg) {
	case mirror.CmdPause:
		m.freeze(now)
		m.sched.ApplyRemotePause(now)

	case mirror.CmdResume:
		m.sched.ApplyRemoteResume(now)

	case mirror.CmdSkip:
		m.sched.Skip(now)

	case mirror.CmdEnd:
		m.endSession()

		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	if !m.sched.Active() {
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, m.listenRemote()
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if m.sched.CurrentState().Paused {
			m.sched.Resume(now)
		} else {
			m.freeze(now)
			m.sched.Pause(now)
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.skip):
		m.sched.Skip(now)

		if !m.sched.Active() {
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.quit):
		m.endSession()

		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case remoteMsg:
		return m.handleRemote(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
