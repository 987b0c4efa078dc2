// Package tui is the terminal front end: it turns bubbletea mouse and key
// messages into editor session calls and renders the session's vertex
// buffers on a braille canvas.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vecdraw/internal/editor"
	"vecdraw/internal/geom"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	session *editor.Session

	// speculative geometry under the pointer
	preview  editor.Preview
	hovering bool
	cursor   geom.Point

	// transformation parameter entry
	input textinput.Model

	keys keyMap
	help help.Model

	status    string
	statusErr bool
}

// New returns a model driving s.
func New(s *editor.Session) Model {
	m := Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		status:  "vecdraw ready",
	}
	m.input = textinput.New()
	m.input.Prompt = "params> "
	m.input.Placeholder = "x y"
	m.input.CharLimit = 64
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Session returns the session the model drives.
func (m Model) Session() *editor.Session { return m.session }

// canvasSize returns the canvas size in cells.
func (m Model) canvasSize() (w, h int) {
	return max(10, m.width), max(4, m.height-headerHeight-footerHeight)
}

// cellToDevice maps a terminal cell to the centre of its dot block, the
// device pixel space the session normalizes against.
func (m Model) cellToDevice(cx, cy int) (px, py float64, ok bool) {
	w, h := m.canvasSize()
	x, y := cx, cy-headerHeight
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return float64(x*2 + 1), float64(y*4 + 2), true
}
