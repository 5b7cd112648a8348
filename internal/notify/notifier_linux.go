//go:build linux

package notify

import (
	"fmt"
	"time"

	"stretchtimer/internal/core/reminder"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsDestination = "org.freedesktop.Notifications"
	notificationsPath        = "/org/freedesktop/Notifications"
	notificationsMethod      = notificationsDestination + ".Notify"
)

// DBusSender talks to the freedesktop notification service directly so the
// expiry timeout is honoured.
type DBusSender struct{}

// Send implements Sender.
func (DBusSender) Send(notification reminder.Notification) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	object := conn.Object(notificationsDestination, dbus.ObjectPath(notificationsPath))
	call := object.Call(notificationsMethod, 0,
		notification.AppName,
		uint32(0),
		"",
		notification.Title,
		notification.Message,
		[]string{},
		map[string]dbus.Variant{},
		expireTimeout(notification.Timeout),
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

// expireTimeout converts a timeout to the milliseconds expected by the
// service; -1 leaves the choice to the server.
func expireTimeout(timeout time.Duration) int32 {
	if timeout <= 0 {
		return -1
	}
	return int32(timeout / time.Millisecond)
}

func platformSenders(appName string) []Sender {
	return []Sender{DBusSender{}, NewBeeepSender(appName)}
}
