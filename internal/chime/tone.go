package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	Frequency = 880.0
	Length    = 300 * time.Millisecond

	attackEnd  = 0.01
	releaseEnd = 0.25
	floorGain  = 0.0001
	peakGain   = 0.2
)

// Envelope returns the gain at t seconds: an exponential rise to the peak
// over 10ms, an exponential fall back to the floor by 250ms, then silence.
func Envelope(t float64) float64 {
	switch {
	case t <= 0:
		return floorGain
	case t < attackEnd:
		return floorGain * math.Pow(peakGain/floorGain, t/attackEnd)
	case t < releaseEnd:
		return peakGain * math.Pow(floorGain/peakGain, (t-attackEnd)/(releaseEnd-attackEnd))
	default:
		return floorGain
	}
}

// Tone streams a sine wave shaped by Envelope for duration.
func Tone(sampleRate beep.SampleRate, frequency float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if position >= total {
			return 0, false
		}
		for i := range samples {
			if position >= total {
				break
			}
			t := float64(position) / float64(sampleRate)
			value := math.Sin(2*math.Pi*frequency*t) * Envelope(t)
			samples[i][0] = value
			samples[i][1] = value
			position++
			n++
		}
		return n, true
	})
}
