package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/qd/internal/review"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.screen {
	case ScreenFiles:
		return m.handleFilesKey(msg)
	case ScreenDiff:
		return m.handleDiffKey(msg)
	}

	return m, nil
}

func (m Model) handleFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	count := len(m.summary.Changes)

	switch key := msg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(count-1, 0)
	case "enter", "right", "l":
		return m.open()
	default:
		if strings.ToLower(key) == m.session.QuitKey() {
			return m.quit()
		}
	}
	return m, nil
}

func (m Model) handleDiffKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc", "backspace", "left", "h":
		m.screen = ScreenFiles
		return m, nil
	default:
		if strings.ToLower(key) == m.session.QuitKey() {
			return m.quit()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// open shows the file under the cursor. Binary files and failed diffs
// stay on the list with a status line instead of opening the viewport.
func (m Model) open() (tea.Model, tea.Cmd) {
	if len(m.summary.Changes) == 0 {
		return m, nil
	}

	m.buf.Reset()
	m.session.Open(m.ctx, m.cursor)
	content := strings.Trim(m.buf.String(), "\n")
	m.buf.Reset()

	change := m.summary.Changes[m.cursor]
	if change.Binary || m.session.LastError() != nil {
		m.status = content
		return m, nil
	}

	m.path = change.Path
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.screen = ScreenDiff
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Quit()
	return m, tea.Quit
}

// Done reports whether the session has ended
func (m Model) Done() bool {
	return m.session.State() == review.StateDone
}
