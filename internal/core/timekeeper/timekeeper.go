package timekeeper

import (
	"sync"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/quiet"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Now          func() time.Time
}

// TimeKeeper owns the reminder countdown.
type TimeKeeper struct {
	mu        sync.Mutex
	config    model.TimeKeeperConfig
	options   Config
	remaining int
	startedAt time.Time
	stoppedAt time.Time
	running   bool
	paused    bool
	events    []chan Event
	stopCh    chan struct{}
	closed    bool
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.TimeKeeperConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if config.IntervalSeconds <= 0 {
		config.IntervalSeconds = model.MinIntervalMinutes * 60
	}

	return &TimeKeeper{
		config:    config,
		options:   options,
		remaining: config.IntervalSeconds,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// Start resets the countdown and launches the ticking loop.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running || keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.paused = false
	keeper.remaining = keeper.config.IntervalSeconds
	keeper.startedAt = keeper.options.Now()
	keeper.stoppedAt = time.Time{}
	keeper.stopCh = make(chan struct{})
	stopCh := keeper.stopCh
	keeper.emitLocked(keeper.eventLocked(EventStarted, keeper.startedAt))
	keeper.mu.Unlock()

	go keeper.run(stopCh)
}

// Stop halts ticking and rewinds the countdown to the full interval.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.stopLocked()
}

// Close stops the loop and closes all observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.stopLocked()
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Pause freezes the countdown.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || keeper.paused {
		return
	}
	keeper.paused = true
	keeper.emitLocked(keeper.eventLocked(EventPaused, keeper.options.Now()))
}

// Resume unfreezes the countdown.
func (keeper *TimeKeeper) Resume() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || !keeper.paused {
		return
	}
	keeper.paused = false
	keeper.emitLocked(keeper.eventLocked(EventResumed, keeper.options.Now()))
}

// TogglePause pauses a running countdown or resumes a paused one.
func (keeper *TimeKeeper) TogglePause() {
	keeper.mu.Lock()
	paused := keeper.paused
	keeper.mu.Unlock()
	if paused {
		keeper.Resume()
		return
	}
	keeper.Pause()
}

// ResetCountdown rewinds the countdown to the full interval, used after a
// reminder was requested manually.
func (keeper *TimeKeeper) ResetCountdown() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.remaining = keeper.config.IntervalSeconds
	keeper.emitLocked(keeper.eventLocked(EventTick, keeper.options.Now()))
}

// UpdateConfig applies new interval and quiet hours. A running countdown
// keeps its progress but never exceeds the new interval.
func (keeper *TimeKeeper) UpdateConfig(config model.TimeKeeperConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if config.IntervalSeconds <= 0 {
		config.IntervalSeconds = model.MinIntervalMinutes * 60
	}
	keeper.config = config
	if !keeper.running || keeper.remaining > config.IntervalSeconds {
		keeper.remaining = config.IntervalSeconds
	}
	keeper.emitLocked(keeper.eventLocked(EventTick, keeper.options.Now()))
}

// Snapshot returns the current session state.
func (keeper *TimeKeeper) Snapshot() Session {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Session{
		Running:   keeper.running,
		Paused:    keeper.paused,
		StartedAt: keeper.startedAt,
		Remaining: seconds(keeper.remaining),
		Elapsed:   keeper.elapsedLocked(keeper.options.Now()),
		Interval:  seconds(keeper.config.IntervalSeconds),
	}
}

func (keeper *TimeKeeper) run(stopCh chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			keeper.tick()
		}
	}
}

func (keeper *TimeKeeper) tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	now := keeper.options.Now()
	if !keeper.paused {
		keeper.advanceLocked(now)
	}
	keeper.emitLocked(keeper.eventLocked(EventTick, now))
}

func (keeper *TimeKeeper) advanceLocked(now time.Time) {
	if keeper.remaining > 0 {
		keeper.remaining--
	}
	if keeper.remaining > 0 {
		return
	}

	quietHours := keeper.config.Quiet
	if quiet.Suppress(now, quietHours.Enabled, quietHours.Start, quietHours.End) {
		keeper.emitLocked(keeper.eventLocked(EventQuiet, now))
	} else {
		keeper.emitLocked(keeper.eventLocked(EventTrigger, now))
	}
	keeper.remaining = keeper.config.IntervalSeconds
}

func (keeper *TimeKeeper) stopLocked() {
	if keeper.running {
		close(keeper.stopCh)
		keeper.stopCh = nil
	}
	wasRunning := keeper.running
	if wasRunning {
		keeper.stoppedAt = keeper.options.Now()
	}
	keeper.running = false
	keeper.paused = false
	keeper.remaining = keeper.config.IntervalSeconds
	if wasRunning {
		keeper.emitLocked(keeper.eventLocked(EventStopped, keeper.options.Now()))
	}
}

func (keeper *TimeKeeper) eventLocked(eventType EventType, now time.Time) Event {
	return Event{
		Type:      eventType,
		Remaining: seconds(keeper.remaining),
		Elapsed:   keeper.elapsedLocked(now),
		Running:   keeper.running,
		Paused:    keeper.paused,
		At:        now,
	}
}

func (keeper *TimeKeeper) elapsedLocked(now time.Time) time.Duration {
	if keeper.startedAt.IsZero() {
		return 0
	}
	// A stopped session keeps the duration it reached.
	if !keeper.running && !keeper.stoppedAt.IsZero() {
		now = keeper.stoppedAt
	}
	elapsed := now.Sub(keeper.startedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func seconds(value int) time.Duration {
	return time.Duration(value) * time.Second
}
