package timerwindow

import (
	"image/color"

	"phasetimer/internal/present"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines window action handlers.
type Callbacks struct {
	OnStart      func()
	OnPause      func()
	OnReset      func()
	OnSettings   func()
	OnViewChange func(viewID string)
}

// Window manages the main timer UI.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	phaseLabels []*canvas.Text
	timeTexts   []*canvas.Text
	ring        *ringView
	bar         *widget.ProgressBar
	subtitle    *widget.Label
	viewSelect  *widget.Select
	views       map[string]fyne.CanvasObject
	startButton *widget.Button
	viewID      string
}

var textColor = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}

// New creates the timer window showing viewID.
func New(app fyne.App, viewID string, callbacks Callbacks) *Window {
	window := app.NewWindow("PhaseTimer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timerWindow := &Window{
		window:    window,
		callbacks: callbacks,
		views:     make(map[string]fyne.CanvasObject),
	}

	timerWindow.ring = newRingView()
	timerWindow.bar = widget.NewProgressBar()
	timerWindow.bar.TextFormatter = func() string { return "" }

	ringTime := timerWindow.newTimeText(42)
	ringPhase := timerWindow.newPhaseText(18)
	timerWindow.views["1"] = container.NewStack(
		timerWindow.ring.raster,
		container.NewCenter(container.NewVBox(ringPhase, ringTime)),
	)

	barTime := timerWindow.newTimeText(48)
	barPhase := timerWindow.newPhaseText(18)
	timerWindow.views["2"] = container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(barPhase),
		container.NewCenter(barTime),
		timerWindow.bar,
		layout.NewSpacer(),
	)

	digitsTime := timerWindow.newTimeText(72)
	digitsPhase := timerWindow.newPhaseText(22)
	timerWindow.views["3"] = container.NewCenter(container.NewVBox(digitsPhase, digitsTime))

	viewStack := container.NewStack()
	for _, view := range present.Views {
		viewStack.Add(timerWindow.views[view.ID])
	}

	timerWindow.subtitle = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	timerWindow.viewSelect = widget.NewSelect(present.ViewNames(), func(name string) {
		if view, ok := present.ViewByName(name); ok {
			timerWindow.setView(view.ID)
		}
	})

	timerWindow.startButton = widget.NewButton("Start", func() { invoke(timerWindow.callbacks.OnStart) })
	pauseButton := widget.NewButton("Pause", func() { invoke(timerWindow.callbacks.OnPause) })
	resetButton := widget.NewButton("Reset", func() { invoke(timerWindow.callbacks.OnReset) })
	settingsButton := widget.NewButton("Settings", func() { invoke(timerWindow.callbacks.OnSettings) })

	header := container.NewBorder(nil, nil, nil, timerWindow.viewSelect, timerWindow.subtitle)
	controls := container.NewHBox(layout.NewSpacer(), timerWindow.startButton, pauseButton, resetButton, settingsButton, layout.NewSpacer())

	window.SetContent(container.NewBorder(header, controls, nil, nil, viewStack))
	window.Resize(fyne.NewSize(420, 480))

	timerWindow.SetView(viewID)
	return timerWindow
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Hide hides the window without closing it.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (timerWindow *Window) SetCloseIntercept(handler func()) {
	timerWindow.window.SetCloseIntercept(handler)
}

// SetView switches the visible layout.
func (timerWindow *Window) SetView(viewID string) {
	view := present.ResolveView(viewID)
	timerWindow.viewSelect.SetSelected(view.Name)
	timerWindow.setView(view.ID)
}

// ViewID returns the visible layout.
func (timerWindow *Window) ViewID() string {
	return timerWindow.viewID
}

// SetRunning enables Start only while the timer is paused.
func (timerWindow *Window) SetRunning(running bool) {
	if running {
		timerWindow.startButton.Disable()
		return
	}
	timerWindow.startButton.Enable()
}

// Renderer returns the sinks this window draws.
func (timerWindow *Window) Renderer() *present.Renderer {
	renderer := &present.Renderer{
		Bars:      []present.ProgressSink{present.ProgressFunc(timerWindow.bar.SetValue)},
		Rings:     []present.RingSink{timerWindow.ring},
		Subtitles: []present.SubtitleSink{present.SubtitleFunc(timerWindow.subtitle.SetText)},
	}
	for _, text := range timerWindow.timeTexts {
		renderer.Displays = append(renderer.Displays, textDisplay{text: text})
	}
	for _, text := range timerWindow.phaseLabels {
		renderer.Labels = append(renderer.Labels, phaseDisplay{text: text})
	}
	return renderer
}

func (timerWindow *Window) setView(viewID string) {
	if viewID == timerWindow.viewID {
		return
	}
	timerWindow.viewID = viewID
	for id, view := range timerWindow.views {
		if id == viewID {
			view.Show()
		} else {
			view.Hide()
		}
	}
	if timerWindow.callbacks.OnViewChange != nil {
		timerWindow.callbacks.OnViewChange(viewID)
	}
}

func (timerWindow *Window) newTimeText(size float32) *canvas.Text {
	text := canvas.NewText("--:--", textColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	text.TextSize = size
	timerWindow.timeTexts = append(timerWindow.timeTexts, text)
	return text
}

func (timerWindow *Window) newPhaseText(size float32) *canvas.Text {
	text := canvas.NewText("", present.WorkColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = size
	timerWindow.phaseLabels = append(timerWindow.phaseLabels, text)
	return text
}

type textDisplay struct {
	text *canvas.Text
}

func (display textDisplay) ShowTime(value string) {
	display.text.Text = value
	display.text.Refresh()
}

type phaseDisplay struct {
	text *canvas.Text
}

func (display phaseDisplay) ShowPhase(label present.Label) {
	display.text.Text = label.Text
	if label.IsBreak {
		display.text.Color = present.BreakColor
	} else {
		display.text.Color = present.WorkColor
	}
	display.text.Refresh()
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
