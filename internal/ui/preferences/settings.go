package preferences

import (
	"phasetimer/internal/core/model"
	"phasetimer/internal/present"
)

// Settings defines the startup options of the application.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int
	View         string
	ChimeEnabled bool
	ChimeVolume  float64
	LogLevel     string
}

// DefaultSettings returns default settings for PhaseTimer.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:  model.DefaultWorkMinutes,
		BreakMinutes: model.DefaultBreakMinutes,
		View:         present.DefaultViewID,
		ChimeEnabled: true,
		ChimeVolume:  0,
		LogLevel:     "info",
	}
}

// TimerSettings converts settings to the timer's phase durations.
func (settings Settings) TimerSettings() model.Settings {
	return model.NewSettings(settings.WorkMinutes, settings.BreakMinutes)
}

// WithTimer copies phase durations accepted by the timer back into settings.
func (settings Settings) WithTimer(timer model.Settings) Settings {
	settings.WorkMinutes = timer.WorkMinutes()
	settings.BreakMinutes = timer.BreakMinutes()
	return settings
}
