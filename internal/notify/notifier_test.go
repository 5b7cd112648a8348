package notify

import (
	"errors"
	"testing"

	"stretchtimer/internal/core/reminder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	err   error
	calls int
}

func (sender *fakeSender) Send(reminder.Notification) error {
	sender.calls++
	return sender.err
}

func TestNotifierFallsBackToNextSender(t *testing.T) {
	failing := &fakeSender{err: errors.New("no session bus")}
	working := &fakeSender{}
	notifier := NewWithSenders(failing, working)

	require.NoError(t, notifier.Notify(reminder.Notification{Title: "Stretch"}))
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
}

func TestNotifierStopsAtFirstSuccess(t *testing.T) {
	first := &fakeSender{}
	second := &fakeSender{}
	notifier := NewWithSenders(first, second)

	require.NoError(t, notifier.Notify(reminder.Notification{Title: "Stretch"}))
	assert.Zero(t, second.calls)
}

func TestNotifierReportsLastError(t *testing.T) {
	cause := errors.New("toast failed")
	notifier := NewWithSenders(&fakeSender{err: errors.New("first")}, &fakeSender{err: cause})

	err := notifier.Notify(reminder.Notification{Title: "Stretch"})
	assert.ErrorIs(t, err, cause)
}

func TestNotifierWithoutSenders(t *testing.T) {
	assert.Error(t, NewWithSenders().Notify(reminder.Notification{}))
}
