package timekeeper

import (
	"fmt"
	"sync"
	"time"

	"phasetimer/internal/core/model"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Chime plays the audio cue for a phase switch. Play is best-effort.
type Chime interface {
	Play() error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
	Scheduler    Scheduler
	Chime        Chime
	Logger       *zerolog.Logger
}

// TimeKeeper is the work/break countdown state machine.
type TimeKeeper struct {
	mu         sync.Mutex
	options    Config
	settings   model.Settings
	state      model.TimerState
	handle     Handle
	generation uint64
	events     []chan Event
	logger     zerolog.Logger
}

// New creates a paused TimeKeeper at the start of the work phase.
func New(settings model.Settings, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	if options.Scheduler == nil {
		options.Scheduler = NewClockScheduler(options.Clock)
	}
	logger := log.Logger
	if options.Logger != nil {
		logger = *options.Logger
	}

	return &TimeKeeper{
		options:  options,
		settings: settings,
		state:    model.InitialState(settings),
		logger:   logger.With().Str("component", "timekeeper").Logger(),
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Snapshot returns a copy of the current state and settings.
func (keeper *TimeKeeper) Snapshot() model.Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Start begins ticking. Calling Start while running does nothing.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state.Running {
		return
	}
	keeper.state.Running = true
	keeper.generation++
	generation := keeper.generation
	keeper.handle = keeper.options.Scheduler.ScheduleRepeating(keeper.options.TickInterval, func() {
		keeper.tick(generation)
	})
	keeper.logger.Debug().Str("phase", string(keeper.state.Phase)).Int("remaining", keeper.state.RemainingSeconds).Msg("started")
	keeper.emitLocked(EventStateChange, "")
}

// Pause stops ticking. No state changes happen after Pause returns.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	wasRunning := keeper.state.Running
	keeper.cancelLocked()
	if wasRunning {
		keeper.emitLocked(EventStateChange, "")
	}
}

// Reset stops ticking and returns to the full work phase.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.cancelLocked()
	keeper.state = model.InitialState(keeper.settings)
	keeper.emitLocked(EventStateChange, "")
}

// ApplySettings validates raw minute values, stores them, pauses and
// restarts the current phase with its new duration. Invalid values keep the
// previous duration. It returns the settings in effect afterwards.
func (keeper *TimeKeeper) ApplySettings(workMinutes, breakMinutes float64) model.Settings {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.settings = keeper.settings.WithMinutes(workMinutes, breakMinutes)
	keeper.cancelLocked()
	keeper.state.RemainingSeconds = keeper.settings.DurationOf(keeper.state.Phase)
	keeper.logger.Info().
		Int("work_minutes", keeper.settings.WorkMinutes()).
		Int("break_minutes", keeper.settings.BreakMinutes()).
		Msg("settings applied")
	keeper.emitLocked(EventStateChange, "")
	return keeper.settings
}

// SkipPhase ends the current phase early, as if its countdown reached zero.
func (keeper *TimeKeeper) SkipPhase() {
	keeper.mu.Lock()
	keeper.switchPhaseLocked()
	keeper.mu.Unlock()

	keeper.playChime()
}

// Stop cancels ticking and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	keeper.cancelLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	if generation != keeper.generation || !keeper.state.Running {
		keeper.mu.Unlock()
		return
	}

	keeper.state.RemainingSeconds--
	if keeper.state.RemainingSeconds > 0 {
		keeper.emitLocked(EventStateChange, "")
		keeper.mu.Unlock()
		return
	}

	keeper.switchPhaseLocked()
	keeper.mu.Unlock()

	keeper.playChime()
}

func (keeper *TimeKeeper) switchPhaseLocked() {
	keeper.state.Phase = keeper.state.Phase.Next()
	keeper.state.RemainingSeconds = keeper.settings.DurationOf(keeper.state.Phase)
	keeper.logger.Info().Str("phase", string(keeper.state.Phase)).Msg("phase switched")
	keeper.emitLocked(EventPhaseChange, "")
	keeper.emitLocked(EventStateChange, "")
}

// cancelLocked drops the tick schedule. Bumping the generation turns any
// callback already in flight into a no-op.
func (keeper *TimeKeeper) cancelLocked() {
	if keeper.handle != nil {
		keeper.handle.Cancel()
		keeper.handle = nil
	}
	keeper.generation++
	keeper.state.Running = false
}

func (keeper *TimeKeeper) playChime() {
	if keeper.options.Chime == nil {
		return
	}
	if err := playSafely(keeper.options.Chime); err != nil {
		keeper.logger.Warn().Err(err).Msg("chime unavailable")
		keeper.mu.Lock()
		keeper.emitLocked(EventChimeError, err.Error())
		keeper.mu.Unlock()
	}
}

func playSafely(chime Chime) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("chime panicked: %v", recovered)
		}
	}()
	return chime.Play()
}

func (keeper *TimeKeeper) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		State:    keeper.state,
		Settings: keeper.settings,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, message string) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		Message:  message,
		At:       keeper.options.Clock.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
