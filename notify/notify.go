// Package notify delivers phase-change alerts: a desktop notification,
// an optional alert sound, and an optional user command. It observes the
// engine through the phase.Notifier contract and does its slow work off
// the engine's call path.
package notify

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/stridewalk/stride/internal/timeutil"
	"github.com/stridewalk/stride/phase"
)

// messages maps each phase to the notification body shown on entry.
var messages = map[phase.Kind]string{
	phase.Warmup:    "Ease into it with a gentle warm-up",
	phase.Brisk:     "Pick up the pace!",
	phase.Easy:      "Slow down and recover",
	phase.Cooldown:  "Wind down with a gentle cool-down",
	phase.Completed: "Great work, your walk is complete!",
}

// Notifier announces phase transitions to the person walking.
type Notifier struct {
	sound     string
	phaseCmd  string
	lastPhase phase.Kind
	enabled   bool
}

func New(enabled bool, sound, phaseCmd string) *Notifier {
	return &Notifier{
		enabled:   enabled,
		sound:     sound,
		phaseCmd:  phaseCmd,
		lastPhase: phase.Idle,
	}
}

// PhaseChanged implements phase.Notifier. Pauses and resumes are
// silent: only entry into a new timed phase or completion alerts.
func (n *Notifier) PhaseChanged(snap phase.Snapshot) {
	if snap.Phase == phase.Paused {
		return
	}

	// A resume re-reports the phase that was paused.
	if snap.Phase == n.lastPhase {
		return
	}

	n.lastPhase = snap.Phase

	if !n.enabled {
		return
	}

	msg, ok := messages[snap.Phase]
	if !ok {
		return
	}

	// The engine requires non-blocking observers.
	go n.announce(snap.Phase.Title(), msg)
}

// SessionCompleted implements phase.Notifier.
func (n *Notifier) SessionCompleted(sum phase.Summary) {
	slog.Info(
		"session completed",
		slog.Int("brisk_intervals", sum.BriskIntervals),
		slog.Int("easy_intervals", sum.EasyIntervals),
		slog.String("duration", timeutil.FormatDuration(sum.TotalDuration)),
	)
}

func (n *Notifier) announce(title, msg string) {
	if err := beeep.Notify(title, msg, ""); err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}

	if n.sound != "" {
		if err := playSound(n.sound); err != nil {
			slog.Error("unable to play sound", slog.Any("error", err))
		}
	}

	if err := n.runPhaseCmd(); err != nil {
		slog.Error("phase command failed", slog.Any("error", err))
	}
}

// runPhaseCmd executes the configured command, if any.
func (n *Notifier) runPhaseCmd() error {
	if n.phaseCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.phaseCmd)
	if err != nil {
		return errInvalidPhaseCmd.Fmt(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}
