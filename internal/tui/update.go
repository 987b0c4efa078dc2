package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vecdraw/internal/editor"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.canvasSize()
		m.session.Resize(float64(w*2), float64(h*4))
		m.help.Width = msg.Width
		m.input.Width = max(8, msg.Width-len(m.input.Prompt)-2)
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		m.closeInput()
		if err := m.session.SubmitParameters(text); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%s applied (%s)", m.session.Transformation(), text))
		return m, nil
	case key.Matches(msg, m.keys.Abort):
		m.closeInput()
		m.session.CancelTransformWindow()
		m.setStatus("transformation aborted")
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if mode, ok := m.keys.drawModeFor(msg); ok {
		m.session.SetDrawMode(mode)
		m.preview = editor.Preview{}
		m.setStatus("draw mode: " + mode.String())
		return m, nil
	}
	if kind, ok := m.keys.transformationFor(msg); ok {
		m.session.SetTransformation(kind)
		m.preview = editor.Preview{}
		m.setStatus(kind.String() + ": pick two window corners")
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.CancelXform):
		m.session.CancelTransformWindow()
		m.preview = editor.Preview{}
		m.setStatus("transformation canceled")
	case key.Matches(msg, m.keys.Clear):
		m.session.ClearAll()
		m.preview = editor.Preview{}
		m.setStatus("cleared")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px, py, ok := m.cellToDevice(msg.X, msg.Y)
	if !ok {
		m.hovering = false
		m.preview = editor.Preview{}
		return m, nil
	}
	m.hovering = true
	m.cursor = m.session.Normalize(px, py)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.click(px, py)
	}
	if m.input.Focused() && !m.session.AwaitingInput() {
		// a new window pick replaced the one waiting for parameters
		m.closeInput()
	}
	if m.session.AwaitingInput() {
		m.preview = editor.Preview{}
		if m.input.Focused() {
			return m, nil
		}
		m.setStatus(m.session.Transformation().String() + ": type parameters, enter to apply")
		return m, m.input.Focus()
	}
	m.preview = m.session.Preview(px, py)
	return m, nil
}

func (m *Model) click(px, py float64) {
	if err := m.session.InsertPoint(px, py); err != nil {
		m.setError(err)
		return
	}
	kind := m.session.Transformation()
	if kind != editor.TransformNone && !kind.NeedsParameters() && m.session.Window().Complete() {
		m.setStatus(kind.String() + " applied")
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "error: " + err.Error()
	m.statusErr = true
}
