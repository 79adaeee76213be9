package phase

// Notifier receives engine transitions. The scheduler invokes it
// synchronously from whichever call crossed the boundary, exactly once
// per boundary and in the order the boundaries occurred. Implementations
// must not block.
type Notifier interface {
	// PhaseChanged fires every time the externally observed phase
	// changes, including entry into Paused and Completed.
	PhaseChanged(snap Snapshot)

	// SessionCompleted fires once when a session reaches its natural
	// end, after the Completed phase change.
	SessionCompleted(sum Summary)
}

// Notifiers fans out to each notifier in order.
type Notifiers []Notifier

func (n Notifiers) PhaseChanged(snap Snapshot) {
	for _, v := range n {
		v.PhaseChanged(snap)
	}
}

func (n Notifiers) SessionCompleted(sum Summary) {
	for _, v := range n {
		v.SessionCompleted(sum)
	}
}

// Mirror keeps a companion device's copy of the session state consistent
// with the engine's. Push delivery is best effort: Resync exists to
// repair missed pushes after a reconnect and may be called at any time
// with the current snapshot.
type Mirror interface {
	Push(snap Snapshot)
	Resync(snap Snapshot)
}

// Mirrors fans out to each mirror in order.
type Mirrors []Mirror

func (m Mirrors) Push(snap Snapshot) {
	for _, v := range m {
		v.Push(snap)
	}
}

func (m Mirrors) Resync(snap Snapshot) {
	for _, v := range m {
		v.Resync(snap)
	}
}

// NopMirror is used when no companion transport is configured.
type NopMirror struct{}

func (NopMirror) Push(Snapshot)   {}
func (NopMirror) Resync(Snapshot) {}
