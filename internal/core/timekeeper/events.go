package timekeeper

import (
	"time"

	"phasetimer/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventPhaseChange EventType = "phase_change"
	EventChimeError  EventType = "chime_error"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot model.Snapshot
	Message  string
	At       time.Time
}
