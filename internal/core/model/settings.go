package model

const (
	MinMinutes = 1
	MaxMinutes = 180

	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

// Settings holds the configured duration of each phase in seconds.
type Settings struct {
	WorkSeconds  int
	BreakSeconds int
}

// DefaultSettings returns the 25/5 cycle.
func DefaultSettings() Settings {
	return NewSettings(DefaultWorkMinutes, DefaultBreakMinutes)
}

// NewSettings builds settings from whole minutes, clamping each to [1,180].
func NewSettings(workMinutes, breakMinutes int) Settings {
	return Settings{
		WorkSeconds:  clampInt(workMinutes, MinMinutes, MaxMinutes) * 60,
		BreakSeconds: clampInt(breakMinutes, MinMinutes, MaxMinutes) * 60,
	}
}

// DurationOf returns the configured length of phase in seconds.
func (settings Settings) DurationOf(phase Phase) int {
	if phase == PhaseBreak {
		return settings.BreakSeconds
	}
	return settings.WorkSeconds
}

// WorkMinutes returns the work duration in whole minutes.
func (settings Settings) WorkMinutes() int {
	return settings.WorkSeconds / 60
}

// BreakMinutes returns the break duration in whole minutes.
func (settings Settings) BreakMinutes() int {
	return settings.BreakSeconds / 60
}

// WithMinutes validates raw minute values against the current settings.
// Each value that fails validation keeps its current duration.
func (settings Settings) WithMinutes(workMinutes, breakMinutes float64) Settings {
	return Settings{
		WorkSeconds:  ClampMinutes(workMinutes, settings.WorkMinutes()) * 60,
		BreakSeconds: ClampMinutes(breakMinutes, settings.BreakMinutes()) * 60,
	}
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
