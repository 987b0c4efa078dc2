package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vecdraw/internal/editor"
)

type keyMap struct {
	Line      key.Binding
	Polygon   key.Binding
	FloodFill key.Binding

	Translate   key.Binding
	Scale       key.Binding
	Rotate      key.Binding
	ReflectX    key.Binding
	ReflectY    key.Binding
	ReflectO    key.Binding
	ShearX      key.Binding
	ShearY      key.Binding
	CancelXform key.Binding

	Clear  key.Binding
	Help   key.Binding
	Submit key.Binding
	Abort  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Line:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "line")),
		Polygon:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "polygon")),
		FloodFill:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill")),
		Translate:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "translate")),
		Scale:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scale")),
		Rotate:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		ReflectX:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reflect x")),
		ReflectY:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "reflect y")),
		ReflectO:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reflect origin")),
		ShearX:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "shear x")),
		ShearY:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "shear y")),
		CancelXform: key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "cancel transform")),
		Clear:       key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear all")),
		Help:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Abort:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "abort")),
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Line, k.Polygon, k.FloodFill, k.Translate, k.Rotate, k.CancelXform, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Line, k.Polygon, k.FloodFill},
		{k.Translate, k.Scale, k.Rotate, k.ShearX, k.ShearY},
		{k.ReflectX, k.ReflectY, k.ReflectO},
		{k.CancelXform, k.Clear, k.Help, k.Quit},
	}
}

// inputKeyMap is shown while transformation parameters are typed.
type inputKeyMap struct{ k keyMap }

func (i inputKeyMap) ShortHelp() []key.Binding  { return []key.Binding{i.k.Submit, i.k.Abort} }
func (i inputKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{i.ShortHelp()} }

// drawModeFor and transformationFor map a pressed key to the mode it selects.
func (k keyMap) drawModeFor(msg tea.KeyMsg) (editor.DrawMode, bool) {
	switch {
	case key.Matches(msg, k.Line):
		return editor.DrawLine, true
	case key.Matches(msg, k.Polygon):
		return editor.DrawPolygon, true
	case key.Matches(msg, k.FloodFill):
		return editor.DrawFloodFill, true
	}
	return editor.DrawNone, false
}

func (k keyMap) transformationFor(msg tea.KeyMsg) (editor.Transformation, bool) {
	switch {
	case key.Matches(msg, k.Translate):
		return editor.Translation, true
	case key.Matches(msg, k.Scale):
		return editor.Scaling, true
	case key.Matches(msg, k.Rotate):
		return editor.Rotation, true
	case key.Matches(msg, k.ReflectX):
		return editor.ReflectionX, true
	case key.Matches(msg, k.ReflectY):
		return editor.ReflectionY, true
	case key.Matches(msg, k.ReflectO):
		return editor.ReflectionOrigin, true
	case key.Matches(msg, k.ShearX):
		return editor.ShearX, true
	case key.Matches(msg, k.ShearY):
		return editor.ShearY, true
	}
	return editor.TransformNone, false
}
