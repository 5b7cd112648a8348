// Package mainwindow implements the main control window.
package mainwindow

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/quiet"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/ui/steps"
	"stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Status texts shown under the countdown.
const (
	StatusReady   = "Ready to start"
	StatusRunning = "Timer running..."
	StatusPaused  = "Paused"
	StatusStopped = "Timer stopped"
)

// Callbacks defines the user actions the window reports.
type Callbacks struct {
	OnStartStop       func()
	OnTogglePause     func()
	OnStretchNow      func()
	OnSettingsChanged func(model.Settings)
}

// Window is the main application window. All methods must run on the UI thread.
type Window struct {
	window    fyne.Window
	callbacks Callbacks
	settings  model.Settings
	palette   theme.Palette
	running   bool
	paused    bool
	started   bool
	updating  bool

	themeButton *widget.Button
	countdown   *canvas.Text
	status      *widget.Label
	startButton *widget.Button
	pauseButton *widget.Button
	nowButton   *widget.Button

	interval       *commitEntry
	quietCheck     *widget.Check
	quietStart     *commitEntry
	quietEnd       *commitEntry
	timeout        *commitEntry
	persistent     *widget.Check
	sound          *widget.Check
	message        *commitEntry
	countValue     *canvas.Text
	durationValue  *canvas.Text
	stretchName    *widget.Label
	stretchLength  *widget.Label
	stretchContent *fyne.Container
}

// New creates the main window without showing it.
func New(app fyne.App, settings model.Settings, callbacks Callbacks) *Window {
	window := app.NewWindow("Stretch Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window:    window,
		callbacks: callbacks,
		settings:  settings,
		palette:   theme.PaletteFor(settings.Theme),
	}

	view.themeButton = widget.NewButton(themeButtonLabel(settings.Theme), view.handleToggleTheme)
	header := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle("Stretch Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.themeButton,
	)

	view.countdown = canvas.NewText(FormatCountdown(settings.IntervalMinutes*60), view.palette.Foreground)
	view.countdown.Alignment = fyne.TextAlignCenter
	view.countdown.TextStyle = fyne.TextStyle{Bold: true}
	view.countdown.TextSize = 48

	view.status = widget.NewLabel(StatusReady)
	view.status.Alignment = fyne.TextAlignCenter

	view.startButton = widget.NewButton("Start", view.handleStartStop)
	view.startButton.Importance = widget.HighImportance
	view.pauseButton = widget.NewButton("Pause", view.handleTogglePause)
	view.pauseButton.Disable()
	view.nowButton = widget.NewButton("Now", view.handleStretchNow)
	buttons := container.NewHBox(layout.NewSpacer(), view.startButton, view.pauseButton, view.nowButton, layout.NewSpacer())

	timerCard := widget.NewCard("", "", container.NewVBox(view.countdown, view.status, buttons))

	content := container.NewVBox(
		header,
		timerCard,
		view.buildSettings(),
		view.buildStats(),
		view.buildCurrentStretch(),
	)
	window.SetContent(container.NewVScroll(content))
	window.Resize(fyne.NewSize(420, 760))

	view.ApplySettings(settings)
	return view
}

func (view *Window) buildSettings() fyne.CanvasObject {
	view.interval = newCommitEntry(view.commitInterval)

	view.quietCheck = widget.NewCheck("Quiet hours:", func(checked bool) {
		view.change(func(settings *model.Settings) { settings.QuietEnabled = checked })
	})
	view.quietStart = newClockEntry(func(value string) {
		view.commitClock(view.quietStart, value, func(settings *model.Settings) *string { return &settings.QuietStart })
	})
	view.quietEnd = newClockEntry(func(value string) {
		view.commitClock(view.quietEnd, value, func(settings *model.Settings) *string { return &settings.QuietEnd })
	})

	view.timeout = newCommitEntry(view.commitTimeout)

	view.persistent = widget.NewCheck("Persistent popup (no auto-close)", func(checked bool) {
		view.setTimeoutEnabled(!checked)
		view.change(func(settings *model.Settings) { settings.PopupPersistent = checked })
	})
	view.sound = widget.NewCheck("Play sound on reminder", func(checked bool) {
		view.change(func(settings *model.Settings) { settings.SoundEnabled = checked })
	})

	view.message = newCommitEntry(view.commitMessage)
	view.message.SetPlaceHolder(model.DefaultSettings().CustomMessage)

	form := widget.NewForm(
		widget.NewFormItem("Interval (minutes)", view.interval),
		widget.NewFormItem("Popup timeout (seconds)", view.timeout),
		widget.NewFormItem("Message", view.message),
	)

	quietRow := container.NewHBox(view.quietCheck, layout.NewSpacer(), view.quietStart, widget.NewLabel("to"), view.quietEnd)
	return widget.NewCard("Settings", "", container.NewVBox(form, quietRow, view.persistent, view.sound))
}

func (view *Window) buildStats() fyne.CanvasObject {
	view.countValue = statValue("0", view.palette.Foreground)
	view.durationValue = statValue("0:00", view.palette.Foreground)
	return widget.NewCard("Stats", "", container.NewGridWithColumns(2,
		container.NewVBox(view.countValue, centeredLabel("Stretches")),
		container.NewVBox(view.durationValue, centeredLabel("Duration")),
	))
}

func (view *Window) buildCurrentStretch() fyne.CanvasObject {
	view.stretchName = widget.NewLabelWithStyle("Ready!", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	view.stretchLength = widget.NewLabel("")
	view.stretchContent = container.NewStack(steps.Placeholder())
	header := container.NewBorder(nil, nil, view.stretchName, view.stretchLength)
	return widget.NewCard("Current Stretch", "", container.NewBorder(header, nil, nil, nil, view.stretchContent))
}

// Show displays the window and brings it to front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Settings returns the settings as currently edited.
func (view *Window) Settings() model.Settings {
	return view.settings
}

// ApplySettings loads settings into the form without reporting changes.
func (view *Window) ApplySettings(settings model.Settings) {
	view.updating = true
	defer func() { view.updating = false }()

	view.settings = settings
	view.interval.SetText(strconv.Itoa(settings.IntervalMinutes))
	view.quietCheck.SetChecked(settings.QuietEnabled)
	view.quietStart.SetText(settings.QuietStart)
	view.quietEnd.SetText(settings.QuietEnd)
	view.timeout.SetText(strconv.Itoa(settings.PopupTimeoutSeconds))
	view.persistent.SetChecked(settings.PopupPersistent)
	view.setTimeoutEnabled(!settings.PopupPersistent)
	view.sound.SetChecked(settings.SoundEnabled)
	view.message.SetText(settings.CustomMessage)
	view.themeButton.SetText(themeButtonLabel(settings.Theme))
	if !view.running {
		view.SetRemaining(settings.IntervalMinutes * 60)
	}
}

// ApplyPalette recolors the canvas texts that do not follow the fyne theme.
func (view *Window) ApplyPalette(palette theme.Palette) {
	view.palette = palette
	for _, text := range []*canvas.Text{view.countdown, view.countValue, view.durationValue} {
		text.Color = palette.Foreground
		text.Refresh()
	}
}

// SetSession updates controls for the timer state.
func (view *Window) SetSession(running, paused bool) {
	if running {
		view.started = true
	}
	view.running = running
	view.paused = paused && running

	if running {
		view.startButton.SetText("Stop")
		view.pauseButton.Enable()
	} else {
		view.startButton.SetText("Start")
		view.pauseButton.Disable()
		view.SetRemaining(view.settings.IntervalMinutes * 60)
	}
	if view.paused {
		view.pauseButton.SetText("Resume")
	} else {
		view.pauseButton.SetText("Pause")
	}
	view.status.SetText(StatusText(view.running, view.paused, view.started))
}

// SetRemaining updates the countdown display.
func (view *Window) SetRemaining(seconds int) {
	view.countdown.Text = FormatCountdown(seconds)
	view.countdown.Refresh()
}

// SetStats updates the session statistics.
func (view *Window) SetStats(count int, elapsed time.Duration) {
	view.countValue.Text = strconv.Itoa(count)
	view.countValue.Refresh()
	view.durationValue.Text = FormatSessionDuration(elapsed)
	view.durationValue.Refresh()
}

// ShowReminder fills the current stretch card.
func (view *Window) ShowReminder(current reminder.Reminder) {
	view.stretchName.SetText(current.Stretch.Name)
	view.stretchLength.SetText(current.Stretch.Duration)
	view.stretchContent.Objects = []fyne.CanvasObject{steps.Render(current, view.palette)}
	view.stretchContent.Refresh()
}

func (view *Window) commitInterval(value string) {
	minutes, ok := parseInRange(value, model.MinIntervalMinutes, model.MaxIntervalMinutes)
	if !ok {
		view.interval.reset(strconv.Itoa(view.settings.IntervalMinutes))
		return
	}
	view.change(func(settings *model.Settings) { settings.IntervalMinutes = minutes })
}

func (view *Window) commitTimeout(value string) {
	seconds, ok := parseInRange(value, model.MinPopupTimeoutSeconds, model.MaxPopupTimeoutSeconds)
	if !ok {
		view.timeout.reset(strconv.Itoa(view.settings.PopupTimeoutSeconds))
		return
	}
	view.change(func(settings *model.Settings) { settings.PopupTimeoutSeconds = seconds })
}

func (view *Window) commitClock(entry *commitEntry, value string, field func(*model.Settings) *string) {
	if _, err := quiet.ParseClock(value); err != nil {
		entry.reset(*field(&view.settings))
		return
	}
	view.change(func(settings *model.Settings) { *field(settings) = value })
}

// commitMessage restores the default message when the field is cleared.
func (view *Window) commitMessage(value string) {
	if value == "" {
		value = model.DefaultSettings().CustomMessage
		view.message.reset(value)
	}
	view.change(func(settings *model.Settings) { settings.CustomMessage = value })
}

func (view *Window) change(apply func(*model.Settings)) {
	if view.updating {
		return
	}
	previous := view.settings
	apply(&view.settings)
	if view.settings == previous {
		return
	}
	if !view.running && view.settings.IntervalMinutes != previous.IntervalMinutes {
		view.SetRemaining(view.settings.IntervalMinutes * 60)
	}
	if view.callbacks.OnSettingsChanged != nil {
		view.callbacks.OnSettingsChanged(view.settings)
	}
}

func (view *Window) setTimeoutEnabled(enabled bool) {
	if enabled {
		view.timeout.Enable()
		return
	}
	view.timeout.Disable()
}

func (view *Window) handleToggleTheme() {
	view.settings.Theme = view.settings.Theme.Toggle()
	view.themeButton.SetText(themeButtonLabel(view.settings.Theme))
	if view.callbacks.OnSettingsChanged != nil {
		view.callbacks.OnSettingsChanged(view.settings)
	}
}

func (view *Window) handleStartStop() {
	if view.callbacks.OnStartStop != nil {
		view.callbacks.OnStartStop()
	}
}

func (view *Window) handleTogglePause() {
	if view.callbacks.OnTogglePause != nil {
		view.callbacks.OnTogglePause()
	}
}

func (view *Window) handleStretchNow() {
	if view.callbacks.OnStretchNow != nil {
		view.callbacks.OnStretchNow()
	}
}

// StatusText returns the status line for a timer state.
func StatusText(running, paused, started bool) string {
	switch {
	case running && paused:
		return StatusPaused
	case running:
		return StatusRunning
	case started:
		return StatusStopped
	default:
		return StatusReady
	}
}

// FormatCountdown renders seconds as MM:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatSessionDuration renders m:ss under an hour and h:mm above.
func FormatSessionDuration(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int(elapsed.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d", hours, minutes)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func themeButtonLabel(current model.Theme) string {
	if current == model.ThemeDark {
		return "Light"
	}
	return "Dark"
}

func parseInRange(value string, min, max int) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < min || parsed > max {
		return 0, false
	}
	return parsed, true
}

// commitEntry is an Entry that reports its text when the user presses
// Enter or focus leaves the field, never on individual keystrokes.
type commitEntry struct {
	widget.Entry
	onCommit func(string)
}

func newCommitEntry(onCommit func(string)) *commitEntry {
	entry := &commitEntry{onCommit: onCommit}
	entry.ExtendBaseWidget(entry)
	entry.OnSubmitted = entry.commit
	return entry
}

func newClockEntry(onCommit func(string)) *commitEntry {
	entry := newCommitEntry(onCommit)
	entry.Validator = func(value string) error {
		_, err := quiet.ParseClock(value)
		return err
	}
	return entry
}

// FocusLost commits the edited text.
func (entry *commitEntry) FocusLost() {
	entry.Entry.FocusLost()
	entry.commit(entry.Text)
}

func (entry *commitEntry) commit(value string) {
	if entry.onCommit != nil {
		entry.onCommit(value)
	}
}

// reset shows value without committing it.
func (entry *commitEntry) reset(value string) {
	if entry.Text != value {
		entry.SetText(value)
	}
}
