//go:build darwin

package platform

var soundCommands = [][]string{
	{"afplay", "/System/Library/Sounds/Glass.aiff"},
	{"afplay", "/System/Library/Sounds/Ping.aiff"},
}

func playNative() bool {
	return startFirst(soundCommands)
}
