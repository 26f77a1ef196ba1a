package review

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/qd/internal/models"
	"github.com/wahlandcase/qd/internal/ui"
)

// TermRenderer writes styled review output to a terminal or any writer
type TermRenderer struct {
	w      io.Writer
	styles ui.Styles
}

// NewTermRenderer creates a TermRenderer for w using the given color profile
func NewTermRenderer(w io.Writer, profile termenv.Profile) *TermRenderer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return &TermRenderer{w: w, styles: ui.NewStyles(r)}
}

// ColorProfile picks the color profile for w from a ui.color setting
// (auto, always or never). auto honours NO_COLOR and CLICOLOR_FORCE.
func ColorProfile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		p := termenv.NewOutput(w).EnvColorProfile()
		if p == termenv.Ascii {
			return termenv.ANSI256
		}
		return p
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// Styles exposes the styles bound to this renderer's output
func (t *TermRenderer) Styles() ui.Styles {
	return t.styles
}

func (t *TermRenderer) Summary(s Summary) {
	if len(s.Changes) == 0 {
		t.println(t.styles.Warning.Render("No changes found"))
		return
	}

	t.println("")
	t.println(" " + t.Title(s))
	t.println("")
	t.println(t.Table(s.Changes, -1))

	ins, del := models.ChangeTotals(s.Changes)
	t.println("")
	t.println(fmt.Sprintf(" %s changed, %s, %s",
		ui.Plural(len(s.Changes), "file"),
		t.styles.Added.Render(ui.Plural(ins, "insertion")),
		t.styles.Removed.Render(ui.Plural(del, "deletion")),
	))
	t.println("")
}

// Title renders the one-line summary header
func (t *TermRenderer) Title(s Summary) string {
	title := t.styles.Bold.Render("qd")
	if s.Branch != "" {
		title += t.styles.Dim.Render(" on ") + t.styles.Title.Render(s.Branch)
	}

	if len(s.Commits) == 1 {
		c := s.Commits[0]
		return fmt.Sprintf("%s — 1 commit (%s → \"%s\")", title, t.styles.Hash.Render(c.Hash), c.Message)
	}
	return fmt.Sprintf("%s — %s (%s)", title, ui.Plural(len(s.Commits), "commit"), s.Range)
}

// Table renders the numbered change table. The row at index selected,
// if any, is highlighted.
func (t *TermRenderer) Table(changes []models.FileChange, selected int) string {
	s := t.styles
	r := s.Renderer()

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderStyle(r.NewStyle()).
		Headers("#", "File", "+", "-", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := r.NewStyle().PaddingRight(1)
			switch col {
			case 0:
				style = style.Width(5)
			case 2, 3:
				style = style.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				return style.Inherit(s.Header)
			}
			return style
		})

	for i, c := range changes {
		ins, del := strconv.Itoa(c.Insertions), strconv.Itoa(c.Deletions)
		if c.Binary {
			ins, del = "[binary]", ""
		}
		index := s.Dim.Render(strconv.Itoa(i + 1))
		path := c.Path
		if i == selected {
			index = s.Selected.Render(ui.Arrow(true) + strconv.Itoa(i+1))
			path = s.Selected.Render(path)
		}
		tbl.Row(
			index,
			path,
			s.Added.Render(ins),
			s.Removed.Render(del),
			s.Status(c.Status()).Render(string(c.Status())),
		)
	}

	return tbl.String()
}

func (t *TermRenderer) Hint() {
	t.println(fmt.Sprintf(" %s qd -i %s qd -f %s",
		t.styles.Dim.Render("Run"),
		t.styles.Dim.Render("to review, or"),
		t.styles.Dim.Render("for full diff"),
	))
	t.println("")
}

func (t *TermRenderer) Log(commits []models.CommitDetail) {
	if len(commits) == 0 {
		t.println(t.styles.Warning.Render("No commits found"))
		return
	}
	for _, c := range commits {
		t.println(fmt.Sprintf("  %s %s", t.styles.Hash.Render(c.Hash), c.Message))
		for _, f := range c.Files {
			t.println("    " + t.styles.Dim.Render(f))
		}
	}
	t.println("")
}

func (t *TermRenderer) FullDiff(diff string) {
	if strings.TrimSpace(diff) == "" {
		t.println(t.styles.Warning.Render("No diff content"))
		return
	}
	t.println(t.colorize(diff))
}

func (t *TermRenderer) FileDiff(path, diff string, maxLines int) {
	t.println("")
	if strings.TrimSpace(diff) == "" {
		t.println(t.styles.Warning.Render("No changes in " + path))
		return
	}

	cut := TruncateLines(diff, maxLines)
	t.println(t.colorize(cut.Text))
	if cut.Omitted > 0 {
		t.println("")
		t.println(fmt.Sprintf(" %s qd -f | less %s",
			t.styles.Dim.Render(fmt.Sprintf("... truncated (%d lines total, %d not shown). Use", cut.Total, cut.Omitted)),
			t.styles.Dim.Render("for full output."),
		))
	}
}

func (t *TermRenderer) Binary(path string) {
	t.println(t.styles.Dim.Render(path + " is a binary file"))
}

func (t *TermRenderer) InputError(msg string) {
	t.println(t.styles.Error.Render(msg))
}

func (t *TermRenderer) QueryError(err error) {
	t.println(t.styles.Error.Render("qd: " + err.Error()))
}

func (t *TermRenderer) Prompt(count int, quitKey string) {
	fmt.Fprintf(t.w, "\n%s (1-%d, %s to quit): ", t.styles.Bold.Render("File number"), count, quitKey)
}

func (t *TermRenderer) Newline() {
	t.println("")
}

// colorize styles a unified diff line by line
func (t *TermRenderer) colorize(diff string) string {
	s := t.styles
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case isDiffMeta(line):
			lines[i] = s.Meta.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = s.Hunk.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = s.Added.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = s.Removed.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func isDiffMeta(line string) bool {
	for _, prefix := range []string{
		"diff --git ", "index ", "--- ", "+++ ",
		"new file mode", "deleted file mode", "old mode", "new mode",
		"similarity index", "rename from", "rename to", "Binary files",
	} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func (t *TermRenderer) println(s string) {
	fmt.Fprintln(t.w, s)
}
