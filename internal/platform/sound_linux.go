//go:build linux

package platform

var soundCommands = [][]string{
	{"paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"},
	{"paplay", "/usr/share/sounds/freedesktop/stereo/bell.oga"},
	{"aplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"},
	{"canberra-gtk-play", "-i", "complete"},
	{"canberra-gtk-play", "-i", "bell"},
}

func playNative() bool {
	return startFirst(soundCommands)
}
