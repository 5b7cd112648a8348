package timekeeper

import "time"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStarted EventType = "started"
	EventStopped EventType = "stopped"
	EventPaused  EventType = "paused"
	EventResumed EventType = "resumed"
	EventTick    EventType = "tick"
	EventTrigger EventType = "trigger"
	EventQuiet   EventType = "quiet"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	Remaining time.Duration
	Elapsed   time.Duration
	Running   bool
	Paused    bool
	At        time.Time
}

// Session is a read-only snapshot of the countdown state.
type Session struct {
	Running   bool
	Paused    bool
	StartedAt time.Time
	Remaining time.Duration
	Elapsed   time.Duration
	Interval  time.Duration
}
