package timerwindow

import (
	"image/color"
	"testing"

	"phasetimer/internal/present"

	"github.com/stretchr/testify/assert"
)

func TestRingPixelColours(t *testing.T) {
	ring := newRingView()
	ring.frame = present.RingFrame{Fraction: 0.5, Color: present.BreakColor}

	assert.Equal(t, color.Color(present.BreakColor), ring.pixel(98, 50, 100, 100))
	assert.Equal(t, color.Color(present.TrackColor), ring.pixel(1, 50, 100, 100))
	assert.Equal(t, color.Color(color.Transparent), ring.pixel(50, 50, 100, 100))
}
