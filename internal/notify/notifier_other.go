//go:build !linux

package notify

func platformSenders(appName string) []Sender {
	return []Sender{NewBeeepSender(appName)}
}
