package platform

import (
	"log"
	"os/exec"

	"github.com/gen2brain/beeep"
)

// Sounder plays the reminder sound, falling back through progressively
// simpler outputs until one succeeds.
type Sounder struct {
	outputs []func() bool
}

// NewSounder returns the platform sound chain: native player, synthesised
// chime, then the terminal bell.
func NewSounder() *Sounder {
	return &Sounder{outputs: []func() bool{playNative, playChime, playBell}}
}

// Play tries each output in order and reports whether one succeeded.
func (sounder *Sounder) Play() bool {
	for _, output := range sounder.outputs {
		if output() {
			return true
		}
	}
	return false
}

// startFirst launches the first command that can be started and reaps it in
// the background. Later candidates are only tried when a binary is missing.
func startFirst(candidates [][]string) bool {
	for _, candidate := range candidates {
		if len(candidate) == 0 {
			continue
		}
		path, err := exec.LookPath(candidate[0])
		if err != nil {
			continue
		}
		command := exec.Command(path, candidate[1:]...)
		if err := command.Start(); err != nil {
			continue
		}
		go func() {
			if err := command.Wait(); err != nil {
				log.Printf("sound: %s: %v", candidate[0], err)
			}
		}()
		return true
	}
	return false
}

func playBell() bool {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration) == nil
}
