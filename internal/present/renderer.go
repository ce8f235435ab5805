package present

import "phasetimer/internal/core/model"

// DisplaySink shows the MM:SS countdown.
type DisplaySink interface {
	ShowTime(text string)
}

// LabelSink shows the phase name.
type LabelSink interface {
	ShowPhase(label Label)
}

// ProgressSink shows a fraction in [0,1].
type ProgressSink interface {
	ShowProgress(fraction float64)
}

// RingSink draws the fixed-span ring.
type RingSink interface {
	ShowRing(frame RingFrame)
}

// SubtitleSink shows the cycle summary.
type SubtitleSink interface {
	ShowSubtitle(text string)
}

// DisplayFunc adapts a function to DisplaySink.
type DisplayFunc func(text string)

func (fn DisplayFunc) ShowTime(text string) { fn(text) }

// LabelFunc adapts a function to LabelSink.
type LabelFunc func(label Label)

func (fn LabelFunc) ShowPhase(label Label) { fn(label) }

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(fraction float64)

func (fn ProgressFunc) ShowProgress(fraction float64) { fn(fraction) }

// RingFunc adapts a function to RingSink.
type RingFunc func(frame RingFrame)

func (fn RingFunc) ShowRing(frame RingFrame) { fn(frame) }

// SubtitleFunc adapts a function to SubtitleSink.
type SubtitleFunc func(text string)

func (fn SubtitleFunc) ShowSubtitle(text string) { fn(text) }

// Renderer pushes a snapshot to whichever sinks a front end provides.
// Any field may be empty.
type Renderer struct {
	Displays  []DisplaySink
	Labels    []LabelSink
	Bars      []ProgressSink
	Rings     []RingSink
	Subtitles []SubtitleSink
}

// Render redraws every sink from snapshot.
func (renderer *Renderer) Render(snapshot model.Snapshot) {
	if len(renderer.Displays) > 0 {
		text := FormatClock(snapshot.State.RemainingSeconds)
		for _, sink := range renderer.Displays {
			sink.ShowTime(text)
		}
	}
	if len(renderer.Labels) > 0 {
		label := PhaseLabel(snapshot.State.Phase)
		for _, sink := range renderer.Labels {
			sink.ShowPhase(label)
		}
	}
	if len(renderer.Bars) > 0 {
		progress := PhaseProgress(snapshot)
		for _, sink := range renderer.Bars {
			sink.ShowProgress(progress)
		}
	}
	if len(renderer.Rings) > 0 {
		frame := NewRingFrame(snapshot)
		for _, sink := range renderer.Rings {
			sink.ShowRing(frame)
		}
	}
	if len(renderer.Subtitles) > 0 {
		subtitle := Subtitle(snapshot.Settings)
		for _, sink := range renderer.Subtitles {
			sink.ShowSubtitle(subtitle)
		}
	}
}
