package model

// TimerState is the mutable part of the countdown.
type TimerState struct {
	Phase            Phase
	RemainingSeconds int
	Running          bool
}

// InitialState returns the canonical paused state at the start of work.
func InitialState(settings Settings) TimerState {
	return TimerState{
		Phase:            PhaseWork,
		RemainingSeconds: settings.WorkSeconds,
		Running:          false,
	}
}

// Snapshot is a copy of the timer taken under its lock.
type Snapshot struct {
	State    TimerState
	Settings Settings
}

// Duration returns the configured length of the current phase.
func (snapshot Snapshot) Duration() int {
	return snapshot.Settings.DurationOf(snapshot.State.Phase)
}
