package model

// Phase names one of the two alternating intervals.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Next returns the phase that follows.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// DisplayName returns the label shown to the user.
func (phase Phase) DisplayName() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// IsBreak reports whether the phase is a break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseBreak
}
