// Package present turns timer snapshots into the values presentation layers
// draw: clock text, phase labels, progress fractions and ring geometry.
package present

import (
	"fmt"

	"phasetimer/internal/core/model"
)

// RingSpanSeconds is the span represented by a full progress ring.
// The ring does not rescale to the phase length.
const RingSpanSeconds = 60 * 60

// FormatClock renders seconds as MM:SS. Minutes grow past two digits.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// Label is the phase name plus its styling flag.
type Label struct {
	Text    string
	IsBreak bool
}

// PhaseLabel returns the label for phase.
func PhaseLabel(phase model.Phase) Label {
	return Label{Text: phase.DisplayName(), IsBreak: phase.IsBreak()}
}

// PhaseProgress is the remaining share of the current phase.
func PhaseProgress(snapshot model.Snapshot) float64 {
	return fraction(snapshot.State.RemainingSeconds, snapshot.Duration())
}

// SpanProgress is the remaining time measured against a fixed span.
func SpanProgress(snapshot model.Snapshot, spanSeconds int) float64 {
	return fraction(snapshot.State.RemainingSeconds, spanSeconds)
}

// Subtitle summarises the configured cycle.
func Subtitle(settings model.Settings) string {
	return fmt.Sprintf("Work %d min / Break %d min", settings.WorkMinutes(), settings.BreakMinutes())
}

// StatusLine is a one-line summary used by the tray and the terminal title.
func StatusLine(snapshot model.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.State.Phase.DisplayName(), FormatClock(snapshot.State.RemainingSeconds))
	if !snapshot.State.Running {
		status += " (paused)"
	}
	return status
}

func fraction(remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	value := float64(remaining) / float64(total)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
