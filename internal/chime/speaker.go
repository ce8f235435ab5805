// Package chime plays the short beep that marks a phase switch.
package chime

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const defaultSampleRate = beep.SampleRate(44100)

// Options configures a Speaker.
type Options struct {
	SampleRate beep.SampleRate
	// Volume is added to the base-2 logarithm of the amplitude; 0 leaves it unchanged.
	Volume float64
}

// Speaker plays the phase-switch tone through the system audio device.
// The device is opened on first use; if that fails, every later Play
// tries again.
type Speaker struct {
	mu         sync.Mutex
	options    Options
	ready      bool
	initialize func(beep.SampleRate, int) error
	play       func(...beep.Streamer)
}

// NewSpeaker creates a speaker-backed chime.
func NewSpeaker(options Options) *Speaker {
	if options.SampleRate <= 0 {
		options.SampleRate = defaultSampleRate
	}
	return &Speaker{
		options:    options,
		initialize: speaker.Init,
		play:       speaker.Play,
	}
}

// Play starts the tone and returns without waiting for it to finish.
func (chime *Speaker) Play() error {
	chime.mu.Lock()
	defer chime.mu.Unlock()

	if !chime.ready {
		bufferSize := chime.options.SampleRate.N(time.Second / 10)
		if err := chime.initialize(chime.options.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("open audio device: %w", err)
		}
		chime.ready = true
	}

	chime.play(&effects.Volume{
		Streamer: Tone(chime.options.SampleRate, Frequency, Length),
		Base:     2,
		Volume:   chime.options.Volume,
		Silent:   false,
	})
	return nil
}

// Nop is a chime that never makes a sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play() error {
	return nil
}
