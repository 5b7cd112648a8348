// Package notify delivers desktop notifications for reminders.
package notify

import (
	"fmt"

	"stretchtimer/internal/core/reminder"

	"github.com/gen2brain/beeep"
)

// Sender delivers a single notification.
type Sender interface {
	Send(notification reminder.Notification) error
}

// Notifier tries each sender in order until one succeeds.
type Notifier struct {
	senders []Sender
}

// New creates a notifier using the platform senders.
func New() *Notifier {
	return &Notifier{senders: platformSenders(reminder.AppName)}
}

// NewWithSenders creates a notifier over explicit senders.
func NewWithSenders(senders ...Sender) *Notifier {
	return &Notifier{senders: senders}
}

// Notify implements reminder.Notifier.
func (notifier *Notifier) Notify(notification reminder.Notification) error {
	var lastErr error
	for _, sender := range notifier.senders {
		err := sender.Send(notification)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return fmt.Errorf("notify: no sender available")
	}
	return fmt.Errorf("notify: %w", lastErr)
}

// BeeepSender sends notifications through beeep.
type BeeepSender struct{}

// NewBeeepSender registers appName with beeep and returns a sender.
func NewBeeepSender(appName string) BeeepSender {
	beeep.AppName = appName
	return BeeepSender{}
}

// Send implements Sender.
func (BeeepSender) Send(notification reminder.Notification) error {
	return beeep.Notify(notification.Title, notification.Message, "")
}
