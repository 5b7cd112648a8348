package mainwindow

import (
	"testing"
	"time"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	startStop int
	pause     int
	now       int
	changes   []model.Settings
}

func (recorder *recorder) callbacks() Callbacks {
	return Callbacks{
		OnStartStop:   func() { recorder.startStop++ },
		OnTogglePause: func() { recorder.pause++ },
		OnStretchNow:  func() { recorder.now++ },
		OnSettingsChanged: func(settings model.Settings) {
			recorder.changes = append(recorder.changes, settings)
		},
	}
}

func newTestWindow(t *testing.T, settings model.Settings) (*Window, *recorder) {
	t.Helper()
	app := test.NewTempApp(t)
	calls := &recorder{}
	return New(app, settings, calls.callbacks()), calls
}

func TestInitialState(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	assert.Equal(t, "45:00", view.countdown.Text)
	assert.Equal(t, StatusReady, view.status.Text)
	assert.True(t, view.pauseButton.Disabled())
	assert.Equal(t, "Start", view.startButton.Text)
	assert.Equal(t, "Dark", view.themeButton.Text)
	assert.Empty(t, calls.changes)
}

func TestStatusTransitions(t *testing.T) {
	view, _ := newTestWindow(t, model.DefaultSettings())

	view.SetSession(true, false)
	assert.Equal(t, StatusRunning, view.status.Text)
	assert.Equal(t, "Stop", view.startButton.Text)
	assert.False(t, view.pauseButton.Disabled())

	view.SetSession(true, true)
	assert.Equal(t, StatusPaused, view.status.Text)
	assert.Equal(t, "Resume", view.pauseButton.Text)

	view.SetRemaining(61)
	assert.Equal(t, "01:01", view.countdown.Text)

	view.SetSession(false, false)
	assert.Equal(t, StatusStopped, view.status.Text)
	assert.Equal(t, "Pause", view.pauseButton.Text)
	assert.True(t, view.pauseButton.Disabled())
	assert.Equal(t, "45:00", view.countdown.Text)
}

func TestButtonsReportActions(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	test.Tap(view.startButton)
	test.Tap(view.nowButton)
	view.SetSession(true, false)
	test.Tap(view.pauseButton)

	assert.Equal(t, 1, calls.startStop)
	assert.Equal(t, 1, calls.now)
	assert.Equal(t, 1, calls.pause)
}

func TestIntervalChangeUpdatesIdleCountdown(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	view.interval.SetText("30")
	assert.Empty(t, calls.changes)

	view.interval.FocusLost()
	require.Len(t, calls.changes, 1)
	assert.Equal(t, 30, calls.changes[0].IntervalMinutes)
	assert.Equal(t, "30:00", view.countdown.Text)
}

func TestTypingIntervalCommitsOnceWhileRunning(t *testing.T) {
	settings := model.DefaultSettings()
	now := time.Date(2024, time.March, 14, 10, 0, 0, 0, time.Local)
	keeper := timekeeper.New(settings.TimeKeeperConfig(), timekeeper.Config{
		TickInterval: time.Hour,
		Now:          func() time.Time { return now },
	})
	t.Cleanup(keeper.Close)
	keeper.Start()

	var changes []model.Settings
	view := New(test.NewTempApp(t), settings, Callbacks{
		OnSettingsChanged: func(settings model.Settings) {
			changes = append(changes, settings)
			keeper.UpdateConfig(settings.TimeKeeperConfig())
		},
	})
	view.SetSession(true, false)

	view.interval.SetText("")
	test.Type(view.interval, "30")
	assert.Empty(t, changes)
	assert.Equal(t, 45*time.Minute, keeper.Snapshot().Remaining)

	view.interval.FocusLost()
	require.Len(t, changes, 1)
	assert.Equal(t, 30, changes[0].IntervalMinutes)
	assert.Equal(t, 30*time.Minute, keeper.Snapshot().Remaining)
}

func TestEnterCommitsEntry(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	view.timeout.SetText("60")
	view.timeout.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	require.Len(t, calls.changes, 1)
	assert.Equal(t, 60, calls.changes[0].PopupTimeoutSeconds)
}

func TestUnchangedEntryDoesNotReport(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	view.interval.FocusLost()
	view.message.FocusLost()

	assert.Empty(t, calls.changes)
}

func TestOutOfRangeIntervalReverts(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	view.interval.SetText("500")
	view.interval.FocusLost()
	assert.Equal(t, "45", view.interval.Text)

	view.interval.SetText("abc")
	view.interval.FocusLost()

	assert.Empty(t, calls.changes)
	assert.Equal(t, "45", view.interval.Text)
	assert.Equal(t, 45, view.Settings().IntervalMinutes)
}

func TestClearedMessageRestoresDefault(t *testing.T) {
	settings := model.DefaultSettings()
	settings.CustomMessage = "Move!"
	view, calls := newTestWindow(t, settings)

	view.message.SetText("")
	view.message.FocusLost()

	require.Len(t, calls.changes, 1)
	assert.Equal(t, "Time to Stretch!", calls.changes[0].CustomMessage)
	assert.Equal(t, "Time to Stretch!", view.message.Text)
}

func TestPersistentDisablesTimeout(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	view.persistent.SetChecked(true)

	assert.True(t, view.timeout.Disabled())
	require.Len(t, calls.changes, 1)
	assert.True(t, calls.changes[0].PopupPersistent)

	view.persistent.SetChecked(false)
	assert.False(t, view.timeout.Disabled())
}

func TestQuietEntriesRequireValidClock(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	view.quietStart.SetText("25:99")
	view.quietStart.FocusLost()
	assert.Empty(t, calls.changes)
	assert.Equal(t, "18:00", view.quietStart.Text)

	view.quietStart.SetText("22:00")
	view.quietStart.FocusLost()
	require.Len(t, calls.changes, 1)
	assert.Equal(t, "22:00", calls.changes[0].QuietStart)
}

func TestThemeToggleReportsSettings(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	test.Tap(view.themeButton)

	require.Len(t, calls.changes, 1)
	assert.Equal(t, model.ThemeDark, calls.changes[0].Theme)
	assert.Equal(t, "Light", view.themeButton.Text)
}

func TestApplySettingsDoesNotReport(t *testing.T) {
	view, calls := newTestWindow(t, model.DefaultSettings())

	settings := model.DefaultSettings()
	settings.IntervalMinutes = 10
	settings.SoundEnabled = false
	view.ApplySettings(settings)

	assert.Empty(t, calls.changes)
	assert.Equal(t, "10", view.interval.Text)
	assert.False(t, view.sound.Checked)
	assert.Equal(t, "10:00", view.countdown.Text)
}

func TestShowReminderAndStats(t *testing.T) {
	view, _ := newTestWindow(t, model.DefaultSettings())

	view.ShowReminder(reminder.Reminder{
		Number:    1,
		Stretch:   catalog.Exercise{Name: "Wrist Circles", Duration: "20 seconds", Steps: []string{"Rotate wrists"}, Kind: catalog.KindStretch},
		Secondary: catalog.Exercise{Name: "Palming", Duration: "30 sec", Steps: []string{"Cup your palms"}, Kind: catalog.KindEye},
	})
	view.SetStats(4, 65*time.Second)

	assert.Equal(t, "Wrist Circles", view.stretchName.Text)
	assert.Equal(t, "20 seconds", view.stretchLength.Text)
	assert.Len(t, view.stretchContent.Objects, 1)
	assert.Equal(t, "4", view.countValue.Text)
	assert.Equal(t, "1:05", view.durationValue.Text)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "00:00", FormatCountdown(-5))
	assert.Equal(t, "120:00", FormatCountdown(7200))
	assert.Equal(t, "0:00", FormatSessionDuration(0))
	assert.Equal(t, "59:59", FormatSessionDuration(59*time.Minute+59*time.Second))
	assert.Equal(t, "1:00", FormatSessionDuration(time.Hour+30*time.Second))
	assert.Equal(t, "2:05", FormatSessionDuration(2*time.Hour+5*time.Minute))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, StatusReady, StatusText(false, false, false))
	assert.Equal(t, StatusStopped, StatusText(false, true, true))
	assert.Equal(t, StatusRunning, StatusText(true, false, true))
	assert.Equal(t, StatusPaused, StatusText(true, true, true))
}
