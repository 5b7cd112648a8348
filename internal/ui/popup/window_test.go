package popup

import (
	"testing"
	"time"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (scheduler *fakeScheduler) schedule(delay time.Duration, fn func()) func() bool {
	timer := &fakeTimer{delay: delay, fn: fn}
	scheduler.timers = append(scheduler.timers, timer)
	return func() bool {
		wasActive := !timer.stopped
		timer.stopped = true
		return wasActive
	}
}

func newTestPopup(t *testing.T) (*Window, *fakeScheduler) {
	t.Helper()
	app := test.NewTempApp(t)
	scheduler := &fakeScheduler{}
	return New(app, Options{Schedule: scheduler.schedule}), scheduler
}

func sampleReminder(number int) reminder.Reminder {
	return reminder.Reminder{
		Number: number,
		Stretch: catalog.Exercise{
			Name:     "Neck Rolls",
			Duration: "30 seconds",
			Steps:    []string{"Drop chin to chest", "Roll head slowly"},
			Kind:     catalog.KindStretch,
		},
		Secondary: catalog.Exercise{
			Name:     "Box Breathing",
			Duration: "1 min",
			Steps:    []string{"Inhale for 4"},
			Kind:     catalog.KindBreathing,
		},
	}
}

func TestShowPopulatesContent(t *testing.T) {
	popup, scheduler := newTestPopup(t)
	settings := model.DefaultSettings()
	settings.CustomMessage = "Move it!"

	popup.Show(sampleReminder(3), settings, theme.PaletteFor(model.ThemeDark))

	assert.Equal(t, StateShown, popup.State())
	assert.Equal(t, "Move it!", popup.title.Text)
	assert.Equal(t, "Neck Rolls (30 seconds)", popup.subtitle.Text)
	assert.Equal(t, "Stretch #3", popup.footer.Text)
	assert.Len(t, popup.body.Objects, 1)
	require.Len(t, scheduler.timers, 1)
	assert.Equal(t, 180*time.Second, scheduler.timers[0].delay)
}

func TestDismissClosesImmediately(t *testing.T) {
	popup, scheduler := newTestPopup(t)
	popup.Show(sampleReminder(1), model.DefaultSettings(), theme.PaletteFor(model.ThemeLight))

	test.Tap(popup.doneButton)

	assert.Equal(t, StateDismissed, popup.State())
	require.Len(t, scheduler.timers, 1)
	assert.True(t, scheduler.timers[0].stopped)

	scheduler.timers[0].fn()
	assert.Equal(t, StateDismissed, popup.State())
}

func TestTimeoutExpiresPopup(t *testing.T) {
	popup, scheduler := newTestPopup(t)
	popup.Show(sampleReminder(1), model.DefaultSettings(), theme.PaletteFor(model.ThemeLight))

	scheduler.timers[0].fn()

	assert.Equal(t, StateTimedOut, popup.State())
}

func TestPersistentPopupNeverTimesOut(t *testing.T) {
	popup, scheduler := newTestPopup(t)
	settings := model.DefaultSettings()
	settings.PopupPersistent = true
	settings.PopupTimeoutSeconds = 10

	popup.Show(sampleReminder(1), settings, theme.PaletteFor(model.ThemeLight))

	assert.Empty(t, scheduler.timers)
	assert.Equal(t, StateShown, popup.State())

	popup.Dismiss()
	assert.Equal(t, StateDismissed, popup.State())
}

func TestStaleTimerIgnoredAfterReshow(t *testing.T) {
	popup, scheduler := newTestPopup(t)
	palette := theme.PaletteFor(model.ThemeLight)

	popup.Show(sampleReminder(1), model.DefaultSettings(), palette)
	popup.Show(sampleReminder(2), model.DefaultSettings(), palette)
	require.Len(t, scheduler.timers, 2)
	assert.True(t, scheduler.timers[0].stopped)

	scheduler.timers[0].fn()
	assert.Equal(t, StateShown, popup.State())
	assert.Equal(t, "Stretch #2", popup.footer.Text)

	scheduler.timers[1].fn()
	assert.Equal(t, StateTimedOut, popup.State())
}

func TestDismissWhenHiddenIsNoop(t *testing.T) {
	popup, _ := newTestPopup(t)
	popup.Dismiss()
	assert.Equal(t, StateHidden, popup.State())
	assert.Equal(t, "hidden", popup.State().String())
}
