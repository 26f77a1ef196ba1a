package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/qd/internal/ui"
)

// View renders the current screen
func (m Model) View() string {
	switch m.screen {
	case ScreenDiff:
		return m.viewDiff()
	default:
		return m.viewFiles()
	}
}

func (m Model) viewFiles() string {
	s := m.term.Styles()
	var b strings.Builder

	b.WriteString("\n " + m.term.Title(m.summary) + "\n\n")
	b.WriteString(m.term.Table(m.summary.Changes, m.cursor))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString("  " + m.status + "\n\n")
	}

	b.WriteString(ui.KeyBindings(s,
		[2]string{"↑/↓", "move"},
		[2]string{"enter", "view diff"},
		[2]string{m.session.QuitKey(), "quit"},
	))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewDiff() string {
	s := m.term.Styles()
	var b strings.Builder

	b.WriteString(ui.SectionHeader(s, m.path) + "\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(ui.KeyBindings(s,
		[2]string{"esc", "back"},
		[2]string{"↑/↓ pgup/pgdn", "scroll"},
		[2]string{m.session.QuitKey(), "quit"},
	))
	b.WriteString(s.Dim.Render(fmt.Sprintf("   %3.0f%%", m.viewport.ScrollPercent()*100)))
	b.WriteString("\n")
	return b.String()
}
