package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	warnFg    = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	modeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8"))
	errStyle   = lipgloss.NewStyle().Foreground(warnFg)
	helpBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
)

// layerStyles colors canvas cells by the topmost layer drawn into them.
var layerStyles = map[layer]lipgloss.Style{
	layerFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("#15803D")),
	layerPolygon: lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	layerLine:    lipgloss.NewStyle().Foreground(baseFg),
	layerWindow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
	layerPreview: lipgloss.NewStyle().Foreground(baseDimFg),
	layerCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
}
