package timekeeper

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Handle cancels a recurring schedule.
type Handle interface {
	// Cancel stops future callbacks. It does not wait for a callback that is
	// already running.
	Cancel()
}

// Scheduler runs a callback repeatedly.
type Scheduler interface {
	ScheduleRepeating(interval time.Duration, callback func()) Handle
}

// ClockScheduler drives callbacks from a clockwork clock.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type ClockScheduler struct {
	clock clockwork.Clock
}

// NewClockScheduler creates a scheduler on top of clock.
func NewClockScheduler(clock clockwork.Clock) *ClockScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockScheduler{clock: clock}
}

// ScheduleRepeating starts a ticker immediately and calls callback on every tick
// until the returned handle is cancelled.
func (scheduler *ClockScheduler) ScheduleRepeating(interval time.Duration, callback func()) Handle {
	ticker := scheduler.clock.NewTicker(interval)
	handle := &tickerHandle{
		ticker: ticker,
		stopCh: make(chan struct{}),
	}
	go handle.run(callback)
	return handle
}

type tickerHandle struct {
	ticker   clockwork.Ticker
	stopCh   chan struct{}
	stopOnce sync.Once
}

func (handle *tickerHandle) run(callback func()) {
	defer handle.ticker.Stop()
	for {
		select {
		case <-handle.stopCh:
			return
		case <-handle.ticker.Chan():
			select {
			case <-handle.stopCh:
				return
			default:
			}
			callback()
		}
	}
}

func (handle *tickerHandle) Cancel() {
	handle.stopOnce.Do(func() {
		close(handle.stopCh)
	})
}
