// Package phase implements the interval-walk session engine: a wall-clock
// anchored state machine that advances a walking session through its
// ordered phases (optional warm-up, alternating brisk/easy intervals, and
// an optional cool-down) and reports every transition exactly once.
//
// The engine performs no I/O and owns no timer of its own. A host-owned
// tick source calls Scheduler.Tick with the current time, and remaining
// time is always derived from an absolute end instant so that correctness
// survives process suspension.
package phase

import "time"

// Kind identifies a session phase. Paused, Completed, and Idle are
// control states rather than timed phases.
type Kind string

const (
	Idle      Kind = "idle"
	Warmup    Kind = "warmup"
	Brisk     Kind = "brisk"
	Easy      Kind = "easy"
	Cooldown  Kind = "cooldown"
	Paused    Kind = "paused"
	Completed Kind = "completed"
)

// Timed reports whether the phase counts down against the wall clock.
func (k Kind) Timed() bool {
	switch k {
	case Warmup, Brisk, Easy, Cooldown:
		return true
	}

	return false
}

// Title returns the phase name for display.
func (k Kind) Title() string {
	switch k {
	case Warmup:
		return "Warm-up"
	case Brisk:
		return "Brisk walk"
	case Easy:
		return "Easy walk"
	case Cooldown:
		return "Cool-down"
	case Paused:
		return "Paused"
	case Completed:
		return "Completed"
	}

	return "Idle"
}

// Snapshot is an immutable copy of the session state handed to observers
// and pushed to companion devices. PhaseEndTime is an absolute instant
// rather than a remaining duration so that a companion with a skewed
// clock still renders the correct countdown.
type Snapshot struct {
	Phase          Kind      `json:"phase"`
	PhaseEndTime   time.Time `json:"phase_end_time"`
	StartTime      time.Time `json:"start_time"`
	IntervalIndex  int       `json:"interval_index"`
	TotalIntervals int       `json:"total_intervals"`
	CompletedBrisk int       `json:"completed_brisk"`
	CompletedEasy  int       `json:"completed_easy"`
	Paused         bool      `json:"paused"`
}

// Remaining reports the time left in the snapshot's phase at the given
// instant. It is zero for control states.
func (s Snapshot) Remaining(now time.Time) time.Duration {
	if s.PhaseEndTime.IsZero() {
		return 0
	}

	return Remaining(s.PhaseEndTime, now)
}
