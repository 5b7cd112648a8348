// Package popup shows the reminder window that pops up on every trigger.
package popup

import (
	"fmt"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/ui/steps"
	"stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// State is the popup lifecycle state.
type State int

const (
	StateHidden State = iota
	StateShown
	StateDismissed
	StateTimedOut
)

func (state State) String() string {
	switch state {
	case StateShown:
		return "shown"
	case StateDismissed:
		return "dismissed"
	case StateTimedOut:
		return "timed out"
	default:
		return "hidden"
	}
}

// Scheduler runs fn after delay and returns a function that cancels it.
type Scheduler func(delay time.Duration, fn func()) (stop func() bool)

// Options contains runtime options for Window.
type Options struct {
	Schedule Scheduler
}

const (
	windowWidth  = float32(460)
	windowHeight = float32(560)
)

// Window manages the reminder popup. All methods must run on the UI thread.
type Window struct {
	window     fyne.Window
	options    Options
	state      State
	generation int
	stopTimer  func() bool

	background *canvas.Rectangle
	title      *canvas.Text
	subtitle   *widget.Label
	body       *fyne.Container
	footer     *widget.Label
	doneButton *widget.Button
}

// New creates the popup window without showing it.
func New(app fyne.App, options Options) *Window {
	if options.Schedule == nil {
		options.Schedule = afterFunc
	}

	window := app.NewWindow("Stretch Reminder")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	title := canvas.NewText("", theme.PaletteFor(model.ThemeLight).Accent)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 22

	subtitle := widget.NewLabel("")
	subtitle.Alignment = fyne.TextAlignCenter
	subtitle.TextStyle = fyne.TextStyle{Bold: true}
	subtitle.Wrapping = fyne.TextWrapWord

	footer := widget.NewLabel("")
	footer.Alignment = fyne.TextAlignCenter

	popup := &Window{
		window:     window,
		options:    options,
		background: canvas.NewRectangle(theme.PaletteFor(model.ThemeLight).Card),
		title:      title,
		subtitle:   subtitle,
		body:       container.NewStack(),
		footer:     footer,
	}
	popup.doneButton = widget.NewButton("Done!", popup.Dismiss)
	popup.doneButton.Importance = widget.HighImportance

	header := container.NewVBox(title, subtitle)
	bottom := container.NewVBox(footer, popup.doneButton)
	content := container.NewBorder(header, bottom, nil, nil, container.NewVScroll(popup.body))
	window.SetContent(container.NewStack(popup.background, container.NewPadded(content)))
	window.SetCloseIntercept(popup.Dismiss)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))

	return popup
}

// Show replaces the popup content and (re)starts its timeout.
func (popup *Window) Show(current reminder.Reminder, settings model.Settings, palette theme.Palette) {
	popup.cancelTimer()
	popup.generation++

	popup.background.FillColor = palette.Card
	popup.background.Refresh()
	popup.title.Text = settings.CustomMessage
	popup.title.Color = palette.Accent
	popup.title.Refresh()
	popup.subtitle.SetText(fmt.Sprintf("%s (%s)", current.Stretch.Name, current.Stretch.Duration))
	popup.body.Objects = []fyne.CanvasObject{steps.Render(current, palette)}
	popup.body.Refresh()
	popup.footer.SetText(fmt.Sprintf("Stretch #%d", current.Number))

	popup.state = StateShown
	popup.window.CenterOnScreen()
	popup.window.Show()
	popup.window.RequestFocus()

	if settings.PopupPersistent {
		return
	}
	generation := popup.generation
	popup.stopTimer = popup.options.Schedule(settings.PopupTimeout(), func() {
		popup.expire(generation)
	})
}

// Dismiss closes the popup at the user's request.
func (popup *Window) Dismiss() {
	if popup.state != StateShown {
		return
	}
	popup.close(StateDismissed)
}

// State returns the current lifecycle state.
func (popup *Window) State() State {
	return popup.state
}

// Window returns the underlying fyne window.
func (popup *Window) Window() fyne.Window {
	return popup.window
}

func (popup *Window) expire(generation int) {
	if generation != popup.generation || popup.state != StateShown {
		return
	}
	popup.close(StateTimedOut)
}

func (popup *Window) close(state State) {
	popup.cancelTimer()
	popup.generation++
	popup.state = state
	popup.window.Hide()
}

func (popup *Window) cancelTimer() {
	if popup.stopTimer != nil {
		popup.stopTimer()
		popup.stopTimer = nil
	}
}

func afterFunc(delay time.Duration, fn func()) func() bool {
	timer := time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
	return timer.Stop
}
