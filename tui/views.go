package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/stridewalk/stride/internal/timeutil"
	"github.com/stridewalk/stride/phase"
)

// formatRemaining returns the countdown formatted as "MM:SS". While
// paused it renders the value captured when the pause took effect.
func (m *Model) formatRemaining(snap phase.Snapshot, now time.Time) string {
	remaining := snap.Remaining(now)
	if snap.Paused {
		remaining = m.frozenRemaining
	}

	return timeutil.FormatDuration(remaining)
}

func (m *Model) phaseHeader(snap phase.Snapshot) string {
	var s strings.Builder

	style, ok := m.styles.phase[snap.Phase]
	if !ok {
		style = m.styles.countdown
	}

	s.WriteString(style.Render("[" + snap.Phase.Title() + "]"))

	if snap.Paused {
		return s.String()
	}

	timeFormat := "03:04:05 PM"
	if m.cfg.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	s.WriteString(" ")
	s.WriteString(
		m.styles.hint.Render("until " + snap.PhaseEndTime.Format(timeFormat)),
	)

	if snap.Phase == phase.Brisk || snap.Phase == phase.Easy {
		s.WriteString(m.styles.hint.Render(
			fmt.Sprintf(" (%d/%d)", snap.IntervalIndex, snap.TotalIntervals),
		))
	}

	return s.String()
}

func (m *Model) sessionView(snap phase.Snapshot, now time.Time) string {
	var s strings.Builder

	s.WriteString(m.phaseHeader(snap))

	// The paused snapshot reports no timed phase, so the bar holds the
	// percentage captured when the pause took effect.
	percent := m.frozenPercent

	if !snap.Paused {
		remaining := snap.Remaining(now)

		if total := m.cfg.Session.PhaseDuration(snap.Phase); total > 0 {
			percent = 1 - remaining.Seconds()/total.Seconds()
		}
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.countdown.Render(m.formatRemaining(snap, now)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) View() string {
	if !m.sched.Active() {
		return ""
	}

	now := m.now()

	return m.styles.base.Render(m.sessionView(m.sched.CurrentState(), now))
}
