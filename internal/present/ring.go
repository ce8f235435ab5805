package present

import (
	"image/color"
	"math"

	"phasetimer/internal/core/model"
)

var (
	WorkColor  = color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	BreakColor = color.NRGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}
	TrackColor = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
)

// RingFrame is everything needed to draw the progress ring once.
type RingFrame struct {
	Fraction float64
	Color    color.NRGBA
}

// NewRingFrame builds the ring for a snapshot against the fixed hour span.
func NewRingFrame(snapshot model.Snapshot) RingFrame {
	return RingFrame{
		Fraction: SpanProgress(snapshot, RingSpanSeconds),
		Color:    PhaseColor(snapshot.State.Phase),
	}
}

// PhaseColor returns the accent colour of phase.
func PhaseColor(phase model.Phase) color.NRGBA {
	if phase.IsBreak() {
		return BreakColor
	}
	return WorkColor
}

// DashOffset returns the stroke circumference and the dash offset that
// leaves fraction of a circle of radius visible.
func DashOffset(radius, fraction float64) (circumference, offset float64) {
	circumference = 2 * math.Pi * radius
	return circumference, circumference * (1 - clamp01(fraction))
}

// RingCovers reports whether pixel (x, y) of a width x height image lies on
// the drawn arc. The arc starts at twelve o'clock and runs clockwise.
// thickness is the stroke width as a share of the radius.
func RingCovers(x, y, width, height int, fraction, thickness float64) (onTrack, onArc bool) {
	radius := math.Min(float64(width), float64(height)) / 2
	if radius <= 0 {
		return false, false
	}
	dx := float64(x) + 0.5 - float64(width)/2
	dy := float64(y) + 0.5 - float64(height)/2
	distance := math.Hypot(dx, dy)
	inner := radius * (1 - thickness)
	if distance > radius || distance < inner {
		return false, false
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	fraction = clamp01(fraction)
	return true, fraction > 0 && angle <= fraction*2*math.Pi
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
