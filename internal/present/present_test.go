package present

import (
	"math"
	"testing"

	"phasetimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(phase model.Phase, remaining int, settings model.Settings) model.Snapshot {
	return model.Snapshot{
		State:    model.TimerState{Phase: phase, RemainingSeconds: remaining},
		Settings: settings,
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		9:    "00:09",
		59:   "00:59",
		60:   "01:00",
		1500: "25:00",
		3600: "60:00",
		6000: "100:00",
		-5:   "00:00",
	}
	for seconds, want := range tests {
		assert.Equal(t, want, FormatClock(seconds), "seconds=%d", seconds)
	}
}

func TestPhaseProgressBounds(t *testing.T) {
	settings := model.NewSettings(25, 5)

	assert.Equal(t, 1.0, PhaseProgress(snapshotOf(model.PhaseWork, 25*60, settings)))
	assert.Equal(t, 0.0, PhaseProgress(snapshotOf(model.PhaseWork, 0, settings)))
	assert.Equal(t, 0.5, PhaseProgress(snapshotOf(model.PhaseBreak, 150, settings)))
	assert.Equal(t, 1.0, PhaseProgress(snapshotOf(model.PhaseBreak, 9999, settings)))
}

func TestSpanProgressDoesNotRescalePerPhase(t *testing.T) {
	settings := model.NewSettings(25, 5)

	work := SpanProgress(snapshotOf(model.PhaseWork, 25*60, settings), RingSpanSeconds)
	rest := SpanProgress(snapshotOf(model.PhaseBreak, 5*60, settings), RingSpanSeconds)

	assert.InDelta(t, 25.0/60.0, work, 1e-9)
	assert.InDelta(t, 5.0/60.0, rest, 1e-9)
	assert.Equal(t, 1.0, SpanProgress(snapshotOf(model.PhaseWork, 180*60, model.NewSettings(180, 5)), RingSpanSeconds))
	assert.Equal(t, 0.0, SpanProgress(snapshotOf(model.PhaseWork, 10, settings), 0))
}

func TestPhaseLabelAndColor(t *testing.T) {
	assert.Equal(t, Label{Text: "Work"}, PhaseLabel(model.PhaseWork))
	assert.Equal(t, Label{Text: "Break", IsBreak: true}, PhaseLabel(model.PhaseBreak))
	assert.Equal(t, WorkColor, PhaseColor(model.PhaseWork))
	assert.Equal(t, BreakColor, PhaseColor(model.PhaseBreak))
}

func TestSubtitleAndStatus(t *testing.T) {
	settings := model.NewSettings(50, 10)
	assert.Equal(t, "Work 50 min / Break 10 min", Subtitle(settings))

	snapshot := snapshotOf(model.PhaseBreak, 61, settings)
	assert.Equal(t, "Break 01:01 (paused)", StatusLine(snapshot))
	snapshot.State.Running = true
	assert.Equal(t, "Break 01:01", StatusLine(snapshot))
}

func TestDashOffset(t *testing.T) {
	circumference, offset := DashOffset(10, 1)
	assert.InDelta(t, 20*math.Pi, circumference, 1e-9)
	assert.InDelta(t, 0, offset, 1e-9)

	_, offset = DashOffset(10, 0.25)
	assert.InDelta(t, 15*math.Pi, offset, 1e-9)

	_, offset = DashOffset(10, -1)
	assert.InDelta(t, circumference, offset, 1e-9)
}

func TestRingCovers(t *testing.T) {
	// top centre, just right of twelve o'clock
	onTrack, onArc := RingCovers(50, 1, 100, 100, 0.1, 0.2)
	assert.True(t, onTrack)
	assert.True(t, onArc)

	// left middle is three quarters round
	onTrack, onArc = RingCovers(1, 50, 100, 100, 0.5, 0.2)
	assert.True(t, onTrack)
	assert.False(t, onArc)
	_, onArc = RingCovers(1, 50, 100, 100, 0.8, 0.2)
	assert.True(t, onArc)

	// centre is never drawn
	onTrack, _ = RingCovers(50, 50, 100, 100, 1, 0.2)
	assert.False(t, onTrack)

	_, onArc = RingCovers(50, 1, 100, 100, 0, 0.2)
	assert.False(t, onArc)
}

type recorder struct {
	times     []string
	labels    []Label
	bars      []float64
	rings     []RingFrame
	subtitles []string
}

func TestRendererSkipsMissingSinks(t *testing.T) {
	rec := &recorder{}
	renderer := Renderer{
		Displays: []DisplaySink{
			DisplayFunc(func(text string) { rec.times = append(rec.times, text) }),
			DisplayFunc(func(text string) { rec.times = append(rec.times, text) }),
		},
		Bars: []ProgressSink{ProgressFunc(func(fraction float64) { rec.bars = append(rec.bars, fraction) })},
	}

	renderer.Render(snapshotOf(model.PhaseWork, 750, model.NewSettings(25, 5)))

	assert.Equal(t, []string{"12:30", "12:30"}, rec.times)
	assert.Equal(t, []float64{0.5}, rec.bars)
	assert.Empty(t, rec.labels)
}

func TestRendererFullSinkSet(t *testing.T) {
	rec := &recorder{}
	renderer := Renderer{
		Displays:  []DisplaySink{DisplayFunc(func(text string) { rec.times = append(rec.times, text) })},
		Labels:    []LabelSink{LabelFunc(func(label Label) { rec.labels = append(rec.labels, label) })},
		Bars:      []ProgressSink{ProgressFunc(func(fraction float64) { rec.bars = append(rec.bars, fraction) })},
		Rings:     []RingSink{RingFunc(func(frame RingFrame) { rec.rings = append(rec.rings, frame) })},
		Subtitles: []SubtitleSink{SubtitleFunc(func(text string) { rec.subtitles = append(rec.subtitles, text) })},
	}

	renderer.Render(snapshotOf(model.PhaseBreak, 300, model.NewSettings(25, 5)))

	require.Len(t, rec.rings, 1)
	assert.InDelta(t, 300.0/3600.0, rec.rings[0].Fraction, 1e-9)
	assert.Equal(t, BreakColor, rec.rings[0].Color)
	assert.Equal(t, []Label{{Text: "Break", IsBreak: true}}, rec.labels)
	assert.Equal(t, []float64{1}, rec.bars)
	assert.Equal(t, []string{"05:00"}, rec.times)
	assert.Equal(t, []string{"Work 25 min / Break 5 min"}, rec.subtitles)
}

func TestViews(t *testing.T) {
	assert.Equal(t, "Bar", ResolveView("2").Name)
	assert.Equal(t, DefaultViewID, ResolveView("nope").ID)
	assert.Equal(t, "3", NextView("2").ID)
	assert.Equal(t, "1", NextView("3").ID)
	assert.Equal(t, []string{"Ring", "Bar", "Digits"}, ViewNames())

	view, ok := ViewByName("Digits")
	assert.True(t, ok)
	assert.Equal(t, "3", view.ID)
	_, ok = ViewByName("Clock")
	assert.False(t, ok)
}
