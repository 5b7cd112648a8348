// Package app owns the running application state and wires the countdown,
// dispatcher, windows, tray and settings store together.
package app

import (
	"log"
	"time"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/core/timekeeper"
	"stretchtimer/internal/ui/mainwindow"
	"stretchtimer/internal/ui/popup"
	"stretchtimer/internal/ui/theme"
	"stretchtimer/internal/ui/tray"

	"fyne.io/fyne/v2"
)

// SettingsStore persists settings between runs.
type SettingsStore interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
}

// Options contains the collaborators of App. Nil members are skipped.
type Options struct {
	Store    SettingsStore
	Catalog  *catalog.Catalog
	Sounder  reminder.Sounder
	Notifier reminder.Notifier
	Tray     tray.Host
	Icons    tray.Icons
	Keeper   timekeeper.Config
	Reminder reminder.Options
	Popup    popup.Options
	// Do runs fn on the UI thread; defaults to fyne.Do.
	Do func(fn func())
}

// App is the application context.
type App struct {
	fyneApp    fyne.App
	options    Options
	settings   model.Settings
	keeper     *timekeeper.TimeKeeper
	dispatcher *reminder.Dispatcher
	main       *mainwindow.Window
	popup      *popup.Window
	tray       *tray.Manager
	events     <-chan timekeeper.Event
}

// New loads settings and builds every component. Call Start to begin
// receiving countdown events.
func New(fyneApp fyne.App, options Options) *App {
	if options.Do == nil {
		options.Do = fyne.Do
	}
	if options.Catalog == nil {
		options.Catalog = catalog.MustDefault()
	}

	application := &App{
		fyneApp:  fyneApp,
		options:  options,
		settings: model.DefaultSettings(),
	}
	if options.Store != nil {
		settings, err := options.Store.Load()
		if err != nil {
			log.Printf("settings: %v", err)
		}
		application.settings = settings
	}

	fyneApp.Settings().SetTheme(theme.New(application.settings.Theme))

	application.keeper = timekeeper.New(application.settings.TimeKeeperConfig(), options.Keeper)
	application.events = application.keeper.Subscribe(32)
	application.dispatcher = reminder.New(options.Catalog, reminder.Effects{
		Sound:     options.Sounder,
		Notify:    options.Notifier,
		Presenter: application,
	}, options.Reminder)

	application.popup = popup.New(fyneApp, options.Popup)
	application.main = mainwindow.New(fyneApp, application.settings, mainwindow.Callbacks{
		OnStartStop:       application.StartStop,
		OnTogglePause:     application.TogglePause,
		OnStretchNow:      application.StretchNow,
		OnSettingsChanged: application.UpdateSettings,
	})
	application.main.Window().SetMaster()
	application.main.Window().SetOnClosed(application.Shutdown)

	if options.Tray != nil {
		application.tray = tray.New(options.Tray, options.Icons, tray.Callbacks{
			OnShow:        application.ShowWindow,
			OnStartStop:   application.StartStop,
			OnTogglePause: application.TogglePause,
			OnStretchNow:  application.StretchNow,
			OnQuit:        application.Quit,
		})
	}

	return application
}

// Start begins draining countdown events onto the UI thread.
func (application *App) Start() {
	go func() {
		for event := range application.events {
			application.options.Do(func() {
				application.handleEvent(event)
			})
		}
	}()
}

// ShowWindow brings the main window to front.
func (application *App) ShowWindow() {
	application.main.Show()
}

// StartStop toggles the countdown. Starting begins a new session.
func (application *App) StartStop() {
	if application.keeper.Snapshot().Running {
		application.keeper.Stop()
		return
	}
	application.dispatcher.Reset()
	application.keeper.Start()
}

// TogglePause pauses or resumes a running countdown.
func (application *App) TogglePause() {
	application.keeper.TogglePause()
}

// StretchNow shows a reminder immediately and restarts a running countdown.
func (application *App) StretchNow() {
	application.dispatcher.Dispatch(application.settings)
	if application.keeper.Snapshot().Running {
		application.keeper.ResetCountdown()
	}
	application.refreshStats(application.keeper.Snapshot().Elapsed)
}

// UpdateSettings applies and persists edited settings.
func (application *App) UpdateSettings(settings model.Settings) {
	settings = settings.Normalized()
	previous := application.settings
	application.settings = settings

	application.keeper.UpdateConfig(settings.TimeKeeperConfig())
	if settings.Theme != previous.Theme {
		application.applyTheme()
	}
	application.save()
}

// Settings returns the settings in effect.
func (application *App) Settings() model.Settings {
	return application.settings
}

// Present implements reminder.Presenter.
func (application *App) Present(current reminder.Reminder, settings model.Settings) {
	application.main.ShowReminder(current)
	application.popup.Show(current, settings, theme.PaletteFor(settings.Theme))
}

// Quit saves settings and exits the fyne event loop.
func (application *App) Quit() {
	application.Shutdown()
	application.fyneApp.Quit()
}

// Shutdown stops the countdown and persists settings. Safe to call twice.
func (application *App) Shutdown() {
	application.save()
	application.keeper.Close()
}

func (application *App) handleEvent(event timekeeper.Event) {
	remaining := int(event.Remaining / time.Second)
	switch event.Type {
	case timekeeper.EventTrigger:
		application.dispatcher.Dispatch(application.settings)
	case timekeeper.EventQuiet:
		log.Printf("reminder: suppressed by quiet hours")
	}

	application.main.SetSession(event.Running, event.Paused)
	if event.Running {
		application.main.SetRemaining(remaining)
	}
	application.refreshStats(event.Elapsed)
	if application.tray != nil {
		application.tray.SetSession(event.Running, event.Paused, remaining)
	}
}

func (application *App) refreshStats(elapsed time.Duration) {
	application.main.SetStats(application.dispatcher.Count(), elapsed)
}

func (application *App) applyTheme() {
	palette := theme.PaletteFor(application.settings.Theme)
	application.fyneApp.Settings().SetTheme(theme.New(application.settings.Theme))
	application.main.ApplyPalette(palette)
	if current, ok := application.dispatcher.Current(); ok {
		application.main.ShowReminder(current)
	}
}

func (application *App) save() {
	if application.options.Store == nil {
		return
	}
	if err := application.options.Store.Save(application.settings); err != nil {
		log.Printf("settings: %v", err)
	}
}
