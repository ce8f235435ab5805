package tui

import (
	"fmt"
	"image/color"
	"strings"

	"phasetimer/internal/present"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	work     lipgloss.Style
	rest     lipgloss.Style
	clock    lipgloss.Style
	subtitle lipgloss.Style
	hint     lipgloss.Style
	notice   lipgloss.Style
	box      lipgloss.Style
}

func newStyles() styles {
	return styles{
		work:     lipgloss.NewStyle().Foreground(lipgloss.Color(hex(present.WorkColor))).Bold(true),
		rest:     lipgloss.NewStyle().Foreground(lipgloss.Color(hex(present.BreakColor))).Bold(true),
		clock:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
	}
}

// View renders the active layout.
func (app *App) View() string {
	var body strings.Builder

	label := app.styles.work
	if app.frame.label.IsBreak {
		label = app.styles.rest
	}
	body.WriteString(label.Render(app.frame.label.Text))
	if !app.snapshot.State.Running {
		body.WriteString(app.styles.hint.Render("  paused"))
	}
	body.WriteString("\n\n")

	switch app.viewID {
	case "1":
		body.WriteString(app.styles.clock.Render(app.frame.clock))
		body.WriteString("\n")
		body.WriteString(app.bar.ViewAs(app.frame.ring.Fraction))
		body.WriteString(app.styles.hint.Render(" of 60:00"))
	case "2":
		body.WriteString(app.styles.clock.Render(app.frame.clock))
		body.WriteString("\n")
		body.WriteString(app.bar.ViewAs(app.frame.phase))
	default:
		body.WriteString(app.styles.clock.Render(bigDigits(app.frame.clock)))
	}
	body.WriteString("\n\n")
	body.WriteString(app.styles.subtitle.Render(app.frame.subtitle))

	if app.editing {
		body.WriteString("\n\n")
		body.WriteString(fmt.Sprintf("Work  %s min\nBreak %s min\n", app.inputs[0].View(), app.inputs[1].View()))
		body.WriteString(app.styles.hint.Render("tab switch • enter apply • esc cancel"))
	}
	if app.notice != "" {
		body.WriteString("\n\n")
		body.WriteString(app.styles.notice.Render(app.notice))
	}

	view := present.ResolveView(app.viewID)
	footer := app.styles.hint.Render(fmt.Sprintf(
		"s start • p pause • r reset • n skip • e settings • v view (%s) • q quit", view.Name))

	return app.styles.box.Render(body.String()) + "\n" + footer + "\n"
}

// bigDigits spaces the clock out for the digits-only layout.
func bigDigits(clock string) string {
	return strings.Join(strings.Split(clock, ""), " ")
}

func hex(value color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", value.R, value.G, value.B)
}
