package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Icons are the tray icons per timer state.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStartStop   func()
	OnTogglePause func()
	OnStretchNow  func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host        Host
	icons       Icons
	callbacks   Callbacks
	menu        *fyne.Menu
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	running     bool
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(host Host, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem("Show window", func() { call(manager.callbacks.OnShow) })
	manager.startItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnStartStop) })
	manager.pauseItem = fyne.NewMenuItem("Pause", func() { call(manager.callbacks.OnTogglePause) })
	manager.pauseItem.Disabled = true
	now := fyne.NewMenuItem("Stretch now", func() { call(manager.callbacks.OnStretchNow) })
	quit := fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) })
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("Stretch Timer",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		show,
		manager.startItem,
		manager.pauseItem,
		now,
		fyne.NewMenuItemSeparator(),
		quit,
	)
	manager.statusLabel = StatusLabel(false, false, 0)
	manager.statusItem.Label = manager.statusLabel
	manager.refreshMenu()
	manager.refreshIcon()

	return manager
}

// SetSession updates labels and icon for the timer state.
func (manager *Manager) SetSession(running, paused bool, remainingSeconds int) {
	stateChanged := running != manager.running || paused != manager.paused
	manager.running = running
	manager.paused = paused && running

	if stateChanged {
		manager.startItem.Label = "Start"
		if running {
			manager.startItem.Label = "Stop"
		}
		manager.pauseItem.Label = "Pause"
		if manager.paused {
			manager.pauseItem.Label = "Resume"
		}
		manager.pauseItem.Disabled = !running
		manager.refreshIcon()
	}

	status := StatusLabel(manager.running, manager.paused, remainingSeconds)
	if !stateChanged && status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

// StatusLabel formats the tray status line at minute resolution.
func StatusLabel(running, paused bool, remainingSeconds int) string {
	switch {
	case !running:
		return "Stopped"
	case paused:
		return "Paused"
	}
	minutes := (remainingSeconds + 59) / 60
	if minutes <= 1 {
		return "Next stretch in under a minute"
	}
	return fmt.Sprintf("Next stretch in %d min", minutes)
}

func (manager *Manager) refreshIcon() {
	if manager.host == nil {
		return
	}
	icon := manager.icons.Active
	if manager.paused || !manager.running {
		icon = manager.icons.Paused
	}
	if icon != nil {
		manager.host.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
