//go:build windows

package platform

import "syscall"

const mbIconExclamation = 0x30

var (
	user32DLL       = syscall.NewLazyDLL("user32.dll")
	procMessageBeep = user32DLL.NewProc("MessageBeep")
)

// playNative plays the "SystemExclamation" alias asynchronously.
func playNative() bool {
	if err := procMessageBeep.Find(); err != nil {
		return false
	}
	result, _, _ := procMessageBeep.Call(uintptr(mbIconExclamation))
	return result != 0
}
