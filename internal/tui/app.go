// Package tui is a terminal front end for the timekeeper.
package tui

import (
	"math"
	"strconv"
	"strings"

	"phasetimer/internal/core/model"
	"phasetimer/internal/core/timekeeper"
	"phasetimer/internal/present"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of the timekeeper the terminal drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	SkipPhase()
	ApplySettings(workMinutes, breakMinutes float64) model.Settings
	Snapshot() model.Snapshot
}

type eventMsg timekeeper.Event

type eventsClosedMsg struct{}

// frame holds the strings the renderer last produced.
type frame struct {
	clock    string
	label    present.Label
	phase    float64
	ring     present.RingFrame
	subtitle string
}

// App is the bubbletea model.
type App struct {
	keeper   Controller
	events   <-chan timekeeper.Event
	renderer *present.Renderer
	frame    *frame
	snapshot model.Snapshot
	viewID   string
	bar      progress.Model
	editing  bool
	inputs   [2]textinput.Model
	focused  int
	notice   string
	width    int
	styles   styles
}

// New creates the terminal app. events should come from keeper.Subscribe.
func New(keeper Controller, events <-chan timekeeper.Event, viewID string) *App {
	current := &frame{}
	app := &App{
		keeper: keeper,
		events: events,
		frame:  current,
		renderer: &present.Renderer{
			Displays:  []present.DisplaySink{present.DisplayFunc(func(text string) { current.clock = text })},
			Labels:    []present.LabelSink{present.LabelFunc(func(label present.Label) { current.label = label })},
			Bars:      []present.ProgressSink{present.ProgressFunc(func(fraction float64) { current.phase = fraction })},
			Rings:     []present.RingSink{present.RingFunc(func(ring present.RingFrame) { current.ring = ring })},
			Subtitles: []present.SubtitleSink{present.SubtitleFunc(func(text string) { current.subtitle = text })},
		},
		viewID: present.ResolveView(viewID).ID,
		bar:    progress.New(progress.WithSolidFill(hex(present.WorkColor)), progress.WithoutPercentage()),
		width:  60,
		styles: newStyles(),
	}
	app.bar.Width = 40

	for index := range app.inputs {
		input := textinput.New()
		input.CharLimit = 6
		input.Width = 6
		input.Prompt = ""
		app.inputs[index] = input
	}

	app.refresh(keeper.Snapshot())
	return app
}

// Init starts listening for timer events.
func (app *App) Init() tea.Cmd {
	return waitForEvent(app.events)
}

// Update handles key presses and timer events.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		app.handleEvent(timekeeper.Event(msg))
		return app, waitForEvent(app.events)
	case eventsClosedMsg:
		return app, tea.Quit
	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.bar.Width = max(10, min(msg.Width-8, 60))
		return app, nil
	case tea.KeyMsg:
		if app.editing {
			return app.updateEditor(msg)
		}
		return app.handleKey(msg)
	}
	return app, nil
}

func (app *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return app, tea.Quit
	case "s", " ":
		app.keeper.Start()
	case "p":
		app.keeper.Pause()
	case "r":
		app.keeper.Reset()
	case "n":
		app.keeper.SkipPhase()
	case "v":
		app.viewID = present.NextView(app.viewID).ID
	case "e":
		return app, app.openEditor()
	}
	return app, nil
}

func (app *App) openEditor() tea.Cmd {
	app.editing = true
	app.focused = 0
	app.inputs[0].SetValue(strconv.Itoa(app.snapshot.Settings.WorkMinutes()))
	app.inputs[1].SetValue(strconv.Itoa(app.snapshot.Settings.BreakMinutes()))
	app.inputs[1].Blur()
	return app.inputs[0].Focus()
}

func (app *App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		app.closeEditor()
		return app, nil
	case "tab", "shift+tab", "up", "down":
		app.inputs[app.focused].Blur()
		app.focused = 1 - app.focused
		return app, app.inputs[app.focused].Focus()
	case "enter":
		settings := app.keeper.ApplySettings(rawMinutes(app.inputs[0].Value()), rawMinutes(app.inputs[1].Value()))
		app.notice = present.Subtitle(settings)
		app.closeEditor()
		return app, nil
	}

	var cmd tea.Cmd
	app.inputs[app.focused], cmd = app.inputs[app.focused].Update(msg)
	return app, cmd
}

func (app *App) closeEditor() {
	app.editing = false
	for index := range app.inputs {
		app.inputs[index].Blur()
	}
}

func (app *App) handleEvent(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventChimeError:
		app.notice = "sound unavailable: " + event.Message
	case timekeeper.EventPhaseChange:
		app.notice = ""
		app.refresh(event.Snapshot)
	default:
		app.refresh(event.Snapshot)
	}
}

func (app *App) refresh(snapshot model.Snapshot) {
	app.snapshot = snapshot
	app.renderer.Render(snapshot)
	app.bar.FullColor = hex(app.frame.ring.Color)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

// rawMinutes lets the timekeeper decide what to do with unparsable text.
func rawMinutes(text string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}
	return value
}
