package reminder

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
)

const (
	// AppName is reported to the desktop notification service.
	AppName = "Stretch Timer"
	// NotificationTimeout is how long the desktop notification stays up.
	NotificationTimeout = 10 * time.Second
)

// Reminder is the outcome of a single trigger.
type Reminder struct {
	Number    int
	Stretch   catalog.Exercise
	Secondary catalog.Exercise
}

// SecondaryKind returns the kind of the secondary exercise.
func (reminder Reminder) SecondaryKind() catalog.Kind {
	return reminder.Secondary.Kind
}

// Notification describes a desktop notification request.
type Notification struct {
	Title   string
	Message string
	AppName string
	Timeout time.Duration
}

// Sounder plays the reminder sound and reports whether anything played.
type Sounder interface {
	Play() bool
}

// Notifier delivers desktop notifications.
type Notifier interface {
	Notify(notification Notification) error
}

// Presenter shows a reminder to the user. It is called on the caller's goroutine.
type Presenter interface {
	Present(reminder Reminder, settings model.Settings)
}

// Effects groups the side effects of a trigger. Nil members are skipped.
type Effects struct {
	Sound     Sounder
	Notify    Notifier
	Presenter Presenter
}

// Options contains runtime options for Dispatcher.
type Options struct {
	Rand *rand.Rand
	// Go runs fire-and-forget work; defaults to a new goroutine.
	Go func(func())
}

// Dispatcher picks exercises and fans a trigger out to its effects.
type Dispatcher struct {
	mu            sync.Mutex
	catalog       *catalog.Catalog
	effects       Effects
	options       Options
	count         int
	lastSecondary catalog.Kind
	current       Reminder
	hasCurrent    bool
}

// New creates a Dispatcher over the given catalog.
func New(exercises *catalog.Catalog, effects Effects, options Options) *Dispatcher {
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if options.Go == nil {
		options.Go = func(run func()) { go run() }
	}
	return &Dispatcher{
		catalog:       exercises,
		effects:       effects,
		options:       options,
		lastSecondary: catalog.KindBreathing,
	}
}

// NextSecondaryKind returns the secondary kind that follows last.
func NextSecondaryKind(last catalog.Kind) catalog.Kind {
	if last == catalog.KindBreathing {
		return catalog.KindEye
	}
	return catalog.KindBreathing
}

// Dispatch records a new reminder and fires its side effects.
func (dispatcher *Dispatcher) Dispatch(settings model.Settings) Reminder {
	reminder := dispatcher.next()

	if settings.SoundEnabled && dispatcher.effects.Sound != nil {
		sounder := dispatcher.effects.Sound
		dispatcher.options.Go(func() {
			defer recoverEffect("sound")
			if !sounder.Play() {
				log.Printf("sound: no player available")
			}
		})
	}

	if dispatcher.effects.Notify != nil {
		notifier := dispatcher.effects.Notify
		notification := NotificationFor(reminder, settings)
		dispatcher.options.Go(func() {
			defer recoverEffect("notification")
			if err := notifier.Notify(notification); err != nil {
				log.Printf("notification: %v", err)
			}
		})
	}

	if dispatcher.effects.Presenter != nil {
		func() {
			defer recoverEffect("presenter")
			dispatcher.effects.Presenter.Present(reminder, settings)
		}()
	}

	return reminder
}

// Reset clears the reminder count for a new session.
func (dispatcher *Dispatcher) Reset() {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.count = 0
}

// Count returns the number of reminders in the current session.
func (dispatcher *Dispatcher) Count() int {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	return dispatcher.count
}

// Current returns the most recent reminder, if any.
func (dispatcher *Dispatcher) Current() (Reminder, bool) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	return dispatcher.current, dispatcher.hasCurrent
}

func (dispatcher *Dispatcher) next() Reminder {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()

	dispatcher.count++
	secondaryKind := NextSecondaryKind(dispatcher.lastSecondary)
	reminder := Reminder{
		Number:    dispatcher.count,
		Stretch:   dispatcher.drawLocked(catalog.KindStretch),
		Secondary: dispatcher.drawLocked(secondaryKind),
	}

	dispatcher.lastSecondary = secondaryKind
	dispatcher.current = reminder
	dispatcher.hasCurrent = true
	return reminder
}

func (dispatcher *Dispatcher) drawLocked(kind catalog.Kind) catalog.Exercise {
	size := dispatcher.catalog.Len(kind)
	if size == 0 {
		return catalog.Exercise{Kind: kind}
	}
	entry, _ := dispatcher.catalog.At(kind, dispatcher.options.Rand.Intn(size))
	return entry
}

// NotificationFor builds the desktop notification for a reminder.
func NotificationFor(reminder Reminder, settings model.Settings) Notification {
	return Notification{
		Title:   fmt.Sprintf("%s - %s", settings.CustomMessage, reminder.Stretch.Name),
		Message: fmt.Sprintf("+ %s: %s", reminder.SecondaryKind().Label(), reminder.Secondary.Name),
		AppName: AppName,
		Timeout: NotificationTimeout,
	}
}

func recoverEffect(name string) {
	if recovered := recover(); recovered != nil {
		log.Printf("%s: recovered from panic: %v", name, recovered)
	}
}
