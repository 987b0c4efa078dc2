package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"vecdraw/internal/editor"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.canvasSize()

	header := titleStyle.Render(" vecdraw ─ terminal vector editor ") + " " + modeStyle.Render(m.modeLine())
	header = lipgloss.NewStyle().Width(w).MaxHeight(headerHeight).Render(header)

	canvas := lipgloss.NewStyle().Width(w).Height(h).Render(m.renderCanvas(w, h))

	// Footer: status and cursor position, then parameter entry or help
	status := dimStyle.Render(" " + m.status + " ")
	if m.statusErr {
		status = errStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.3f y=%.3f  ", m.cursor.X, m.cursor.Y))
	}
	spacerW := max(0, w-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.NewStyle().Width(spacerW).Render(""), coords)

	var bottom string
	if m.input.Focused() {
		bottom = lipgloss.JoinHorizontal(lipgloss.Bottom, m.input.View(), "  ", m.help.View(inputKeyMap{m.keys}))
	} else {
		bottom = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, lipgloss.NewStyle().MaxWidth(w).Render(bottom))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	if m.help.ShowAll && !m.input.Focused() {
		box := helpBox.Render(m.help.FullHelpView(m.keys.FullHelp()))
		ui = lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box), footer)
	}
	return appStyle.Width(w).Height(m.height).Render(ui)
}

func (m Model) modeLine() string {
	kind := m.session.Transformation()
	if kind == editor.TransformNone {
		return "draw: " + m.session.DrawMode().String()
	}
	return "transform: " + kind.String()
}
