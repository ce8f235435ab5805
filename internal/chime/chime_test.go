package chime

import (
	"errors"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShape(t *testing.T) {
	assert.InDelta(t, floorGain, Envelope(0), 1e-12)
	assert.InDelta(t, peakGain, Envelope(attackEnd), 1e-9)
	assert.InDelta(t, floorGain, Envelope(releaseEnd), 1e-12)
	assert.InDelta(t, floorGain, Envelope(0.29), 1e-12)
	assert.Greater(t, Envelope(0.005), Envelope(0.001))
	assert.Less(t, Envelope(0.2), Envelope(0.05))
}

func TestToneLength(t *testing.T) {
	sampleRate := beep.SampleRate(8000)
	streamer := Tone(sampleRate, Frequency, Length)

	total := 0
	buffer := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buffer)
		total += n
		for _, sample := range buffer[:n] {
			assert.LessOrEqual(t, sample[0], peakGain+1e-9)
			assert.Equal(t, sample[0], sample[1])
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(Length), total)
}

func TestSpeakerInitFailureIsReturnedAndRetried(t *testing.T) {
	attempts := 0
	played := 0
	chime := NewSpeaker(Options{})
	chime.initialize = func(beep.SampleRate, int) error {
		attempts++
		if attempts == 1 {
			return errors.New("permission denied")
		}
		return nil
	}
	chime.play = func(...beep.Streamer) { played++ }

	err := chime.Play()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open audio device")
	assert.Equal(t, 0, played)

	require.NoError(t, chime.Play())
	require.NoError(t, chime.Play())
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, played)
}

func TestSpeakerBufferSize(t *testing.T) {
	var gotRate beep.SampleRate
	var gotBuffer int
	chime := NewSpeaker(Options{SampleRate: 48000})
	chime.initialize = func(rate beep.SampleRate, buffer int) error {
		gotRate, gotBuffer = rate, buffer
		return nil
	}
	chime.play = func(...beep.Streamer) {}

	require.NoError(t, chime.Play())
	assert.Equal(t, beep.SampleRate(48000), gotRate)
	assert.Equal(t, beep.SampleRate(48000).N(100*time.Millisecond), gotBuffer)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Play())
}
