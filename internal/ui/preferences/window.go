package preferences

import (
	"strconv"

	"phasetimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings dialog.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	workEntry *widget.Entry
	restEntry *widget.Entry
}

// New creates a settings window. onSave receives the validated settings.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("PhaseTimer Settings")

	workEntry := widget.NewEntry()
	restEntry := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Work"), widget.NewLabel("min"), workEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Break"), widget.NewLabel("min"), restEntry),
		widget.NewLabel("Between 1 and 180 minutes."),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 200))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		workEntry: workEntry,
		restEntry: restEntry,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	workEntry.OnSubmitted = func(string) { prefs.handleSave() }
	restEntry.OnSubmitted = func(string) { prefs.handleSave() }
	cancelButton.OnTapped = prefs.Hide
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeyEscape {
			prefs.Hide()
		}
	})

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Hide closes the window without saving.
func (prefs *Window) Hide() {
	prefs.window.Hide()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.restEntry.SetText(strconv.Itoa(settings.BreakMinutes))
}

func (prefs *Window) handleSave() {
	prefs.settings = Submit(prefs.settings, prefs.workEntry.Text, prefs.restEntry.Text)
	prefs.UpdateSettings(prefs.settings)
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// Submit validates the typed minute values. A field that does not parse
// to a usable duration keeps its previous value.
func Submit(settings Settings, workText, breakText string) Settings {
	settings.WorkMinutes = model.ParseMinutes(workText, settings.WorkMinutes)
	settings.BreakMinutes = model.ParseMinutes(breakText, settings.BreakMinutes)
	return settings
}
