package timerwindow

import (
	"image/color"

	"phasetimer/internal/present"

	"fyne.io/fyne/v2/canvas"
)

const ringThickness = 0.12

// ringView draws the fixed-span progress ring pixel by pixel.
type ringView struct {
	raster *canvas.Raster
	frame  present.RingFrame
}

func newRingView() *ringView {
	ring := &ringView{frame: present.RingFrame{Fraction: 1, Color: present.WorkColor}}
	ring.raster = canvas.NewRasterWithPixels(ring.pixel)
	return ring
}

// ShowRing stores the frame and schedules a redraw.
func (ring *ringView) ShowRing(frame present.RingFrame) {
	if frame == ring.frame {
		return
	}
	ring.frame = frame
	ring.raster.Refresh()
}

func (ring *ringView) pixel(x, y, width, height int) color.Color {
	onTrack, onArc := present.RingCovers(x, y, width, height, ring.frame.Fraction, ringThickness)
	switch {
	case onArc:
		return ring.frame.Color
	case onTrack:
		return present.TrackColor
	default:
		return color.Transparent
	}
}
