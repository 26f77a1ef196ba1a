package app

import (
	"bytes"
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/qd/internal/review"
)

// chrome is the number of lines around the diff viewport (header + footer)
const chrome = 4

// Model is the browse mode state. File selection, binary handling and
// diff fetches all go through the same review.Session the prompt uses.
type Model struct {
	ctx     context.Context
	summary review.Summary
	session *review.Session

	// Session output lands in buf and is moved into the viewport
	buf  *bytes.Buffer
	term *review.TermRenderer

	// Navigation
	screen Screen
	cursor int

	// UI state
	viewport viewport.Model
	status   string
	path     string

	// Window size
	width  int
	height int
}

// New creates the browse model over a loaded summary
func New(ctx context.Context, source review.DiffSource, summary review.Summary, quitKey string, profile termenv.Profile) Model {
	buf := &bytes.Buffer{}
	term := review.NewTermRenderer(buf, profile)
	session := review.NewSession(source, term, summary.Range, summary.Changes, review.SessionOptions{
		QuitKey: quitKey,
	})

	return Model{
		ctx:      ctx,
		summary:  summary,
		session:  session,
		buf:      buf,
		term:     term,
		screen:   ScreenFiles,
		viewport: viewport.New(80, 24-chrome),
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the underlying selection session
func (m Model) Session() *review.Session {
	return m.session
}

// Screen returns the active screen
func (m Model) Screen() Screen {
	return m.screen
}
