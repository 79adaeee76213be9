package phase

import "time"

// Scheduler owns the session state machine and is its single point of
// mutation. It holds no timer and never blocks: a host-owned tick source
// calls Tick once a second (or less often) with the current time, and the
// scheduler catches up on every boundary that has passed since.
//
// The scheduler is not internally synchronized. All methods must be
// invoked from a single logical execution context, such as one bubbletea
// update loop.
type Scheduler struct {
	cfg      Config
	notifier Notifier
	mirror   Mirror
	metrics  MetricsSource

	kind             Kind
	startTime        time.Time
	phaseEnd         time.Time
	remainingAtPause time.Duration
	elapsed          time.Duration
	interval         int
	completedBrisk   int
	completedEasy    int
	active           bool
	paused           bool
}

// NewScheduler returns an idle scheduler reporting transitions to
// notifier and mirroring state to mirror. Either may be nil.
func NewScheduler(notifier Notifier, mirror Mirror) *Scheduler {
	if notifier == nil {
		notifier = Notifiers(nil)
	}

	if mirror == nil {
		mirror = NopMirror{}
	}

	return &Scheduler{
		notifier: notifier,
		mirror:   mirror,
		kind:     Idle,
	}
}

// SetMetricsSource registers the collaborator consulted for activity
// metrics when a session completes naturally.
func (s *Scheduler) SetMetricsSource(src MetricsSource) {
	s.metrics = src
}

// Start validates cfg and begins a new session at now, entering the
// warm-up phase if enabled and the first brisk interval otherwise. It
// fails with ErrSessionActive if a session is already in progress and
// leaves the existing state untouched.
func (s *Scheduler) Start(cfg Config, now time.Time) error {
	if s.active {
		return ErrSessionActive
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	s.cfg = cfg
	s.active = true
	s.paused = false
	s.startTime = now
	s.elapsed = 0
	s.remainingAtPause = 0
	s.completedBrisk = 0
	s.completedEasy = 0

	if cfg.EnableWarmup {
		s.kind = Warmup
		s.interval = 0
	} else {
		s.kind = Brisk
		s.interval = 1
	}

	s.phaseEnd = EndTime(now, s.cfg.PhaseDuration(s.kind))

	s.emit()

	return nil
}

// Tick advances the session past every phase boundary that has expired
// by now. Each intermediate phase is entered in order and reported
// individually, so a host that missed several ticks still produces one
// notification per boundary. Calling Tick before the boundary, while
// paused, or while idle has no effect.
func (s *Scheduler) Tick(now time.Time) {
	if !s.active || s.paused {
		return
	}

	// Successive end instants are anchored to the previous end instant
	// rather than to now, so a late tick cannot stretch the session.
	for s.active && !s.phaseEnd.After(now) {
		s.advance(s.phaseEnd)
	}
}

// Skip forces an immediate transition as if the current phase expired at
// now. It is a no-op while idle or paused.
func (s *Scheduler) Skip(now time.Time) {
	if !s.active || s.paused {
		return
	}

	s.advance(now)
}

// Pause freezes the countdown, capturing the remaining time of the
// current phase. The externally observed phase becomes Paused while the
// timed phase is retained for Resume. Redundant calls are no-ops.
func (s *Scheduler) Pause(now time.Time) {
	if !s.active || s.paused {
		return
	}

	s.remainingAtPause = Remaining(s.phaseEnd, now)
	s.phaseEnd = time.Time{}
	s.paused = true

	s.emit()
}

// Resume restores the pre-pause phase with a fresh end instant computed
// from the remaining time captured by Pause. Redundant calls are no-ops.
func (s *Scheduler) Resume(now time.Time) {
	if !s.active || !s.paused {
		return
	}

	s.phaseEnd = EndTime(now, s.remainingAtPause)
	s.remainingAtPause = 0
	s.paused = false

	s.emit()
}

// ApplyRemotePause routes a pause command received from a companion
// device through the same mutation path as a local pause.
func (s *Scheduler) ApplyRemotePause(now time.Time) {
	s.Pause(now)
}

// ApplyRemoteResume routes a resume command received from a companion
// device through the same mutation path as a local resume.
func (s *Scheduler) ApplyRemoteResume(now time.Time) {
	s.Resume(now)
}

// End finishes the session immediately and returns its summary built
// with the supplied metrics. It returns nil if no session is active.
// This is the only way to obtain a summary other than the completion
// notification.
func (s *Scheduler) End(now time.Time, m Metrics) *Summary {
	if !s.active {
		return nil
	}

	if s.paused {
		s.elapsed += s.cfg.PhaseDuration(s.kind) - s.remainingAtPause
	} else {
		s.elapsed += s.cfg.PhaseDuration(s.kind) - Remaining(s.phaseEnd, now)
	}

	s.active = false
	s.paused = false
	s.kind = Idle
	s.phaseEnd = time.Time{}
	s.remainingAtPause = 0

	sum := buildSummary(s, now, m)

	s.mirror.Push(s.CurrentState())

	return &sum
}

// Active reports whether a session is in progress.
func (s *Scheduler) Active() bool {
	return s.active
}

// CurrentState returns an immutable snapshot of the session state for
// pull-based rendering. Observers never receive references into live
// mutable state.
func (s *Scheduler) CurrentState() Snapshot {
	kind := s.kind
	if s.paused {
		kind = Paused
	}

	return Snapshot{
		Phase:          kind,
		PhaseEndTime:   s.phaseEnd,
		StartTime:      s.startTime,
		IntervalIndex:  s.interval,
		TotalIntervals: s.cfg.TotalIntervals,
		CompletedBrisk: s.completedBrisk,
		CompletedEasy:  s.completedEasy,
		Paused:         s.paused,
	}
}

// advance applies exactly one row of the transition table, treating the
// current phase as expired at anchor. The next phase's end instant is
// anchored there as well, which keeps catch-up transitions aligned with
// the original schedule.
func (s *Scheduler) advance(anchor time.Time) {
	s.elapsed += s.cfg.PhaseDuration(s.kind) - Remaining(s.phaseEnd, anchor)

	// Counters record completed occurrences of the phase being left.
	switch s.kind {
	case Brisk:
		s.completedBrisk++
	case Easy:
		s.completedEasy++
	}

	next := s.nextKind()

	s.kind = next

	if next == Brisk {
		s.interval++
	}

	if next == Completed {
		s.phaseEnd = time.Time{}
		s.complete(anchor)

		return
	}

	s.phaseEnd = EndTime(anchor, s.cfg.PhaseDuration(next))

	s.emit()
}

// nextKind resolves the transition table for the current phase.
func (s *Scheduler) nextKind() Kind {
	switch s.kind {
	case Warmup:
		return Brisk
	case Brisk:
		return Easy
	case Easy:
		if s.interval < s.cfg.TotalIntervals {
			return Brisk
		}

		if s.cfg.EnableCooldown {
			return Cooldown
		}

		return Completed
	case Cooldown:
		return Completed
	}

	return Completed
}

// complete settles a session that reached its natural end at the given
// instant: the Completed phase change fires first, then the completion
// notification carrying the summary, so polling callers and callback
// callers observe the same final state.
func (s *Scheduler) complete(at time.Time) {
	s.active = false

	s.emit()

	var m Metrics
	if s.metrics != nil {
		m = s.metrics.SessionMetrics()
	}

	s.notifier.SessionCompleted(buildSummary(s, at, m))
}

// emit reports the current state to the notifier and the mirror, in that
// order, synchronously.
func (s *Scheduler) emit() {
	snap := s.CurrentState()

	s.notifier.PhaseChanged(snap)
	s.mirror.Push(snap)
}
