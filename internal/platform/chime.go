package platform

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFrequency  = 880.0
	chimeLength     = 400 * time.Millisecond
	chimeVolume     = 0.3
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func playChime() bool {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
		if speakerErr != nil {
			log.Printf("sound: speaker init: %v", speakerErr)
		}
	})
	if speakerErr != nil {
		return false
	}
	speaker.Play(chimeStreamer(chimeSampleRate, chimeFrequency, chimeLength))
	return true
}

// chimeStreamer produces a sine tone with a linear fade-out.
func chimeStreamer(rate beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := rate.N(length)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		written := 0
		for index := range samples {
			if position >= total {
				break
			}
			envelope := 1 - float64(position)/float64(total)
			seconds := float64(position) / float64(rate)
			value := chimeVolume * envelope * math.Sin(2*math.Pi*frequency*seconds)
			samples[index][0] = value
			samples[index][1] = value
			position++
			written++
		}
		return written, true
	})
}
