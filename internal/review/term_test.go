package review

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/wahlandcase/qd/internal/models"
)

func plainRenderer() (*TermRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewTermRenderer(&buf, termenv.Ascii), &buf
}

func TestTermSummary(t *testing.T) {
	r, buf := plainRenderer()
	r.Summary(Summary{
		Range:  "HEAD~1..HEAD",
		Branch: "main",
		Changes: []models.FileChange{
			models.NewFileChange("src/api/auth.go", 12, 3),
			models.NewBinaryFileChange("logo.png"),
		},
		Commits: []models.CommitRef{models.NewCommitRef("a1b2c3f", "feat: add login")},
	})

	out := buf.String()
	assert.Contains(t, out, `qd on main — 1 commit (a1b2c3f → "feat: add login")`)
	assert.Contains(t, out, "src/api/auth.go")
	assert.Contains(t, out, "[binary]")
	assert.Contains(t, out, "modified")
	assert.Contains(t, out, "binary")
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "2 files changed, 12 insertions, 3 deletions")
	assert.NotContains(t, out, "\x1b[")
}

func TestTermSummaryManyCommits(t *testing.T) {
	r, buf := plainRenderer()
	r.Summary(Summary{
		Range:   "HEAD~2..HEAD",
		Changes: []models.FileChange{models.NewFileChange("a.go", 1, 0)},
		Commits: []models.CommitRef{models.NewCommitRef("a", "one"), models.NewCommitRef("b", "two")},
	})

	out := buf.String()
	assert.Contains(t, out, "qd — 2 commits (HEAD~2..HEAD)")
	assert.Contains(t, out, "1 file changed, 1 insertion, 0 deletions")
	assert.Contains(t, out, "added")
}

func TestTermEmptyStates(t *testing.T) {
	r, buf := plainRenderer()
	r.Summary(Summary{})
	r.Log(nil)
	r.FullDiff("  \n")
	r.FileDiff("a.go", "", 200)

	out := buf.String()
	assert.Contains(t, out, "No changes found")
	assert.Contains(t, out, "No commits found")
	assert.Contains(t, out, "No diff content")
	assert.Contains(t, out, "No changes in a.go")
}

func TestTermFileDiffTruncates(t *testing.T) {
	var lines []string
	for i := 1; i <= 250; i++ {
		lines = append(lines, fmt.Sprintf("+line %d", i))
	}

	r, buf := plainRenderer()
	r.FileDiff("big.go", strings.Join(lines, "\n"), 200)

	out := buf.String()
	assert.Contains(t, out, "+line 200\n")
	assert.NotContains(t, out, "+line 201")
	assert.Contains(t, out, "... truncated (250 lines total, 50 not shown). Use qd -f | less for full output.")
}

func TestTermFileDiffUnlimited(t *testing.T) {
	diff := strings.Repeat("+x\n", 300) + "+last"

	r, buf := plainRenderer()
	r.FileDiff("big.go", diff, 0)
	assert.Contains(t, buf.String(), "+last")
	assert.NotContains(t, buf.String(), "truncated")
}

func TestTermLog(t *testing.T) {
	r, buf := plainRenderer()
	r.Log([]models.CommitDetail{
		models.NewCommitDetail("a1b2c3f", "feat: add login", []string{"src/login.go", "src/login_test.go"}),
	})

	assert.Equal(t, "  a1b2c3f feat: add login\n    src/login.go\n    src/login_test.go\n\n", buf.String())
}

func TestTermMessages(t *testing.T) {
	r, buf := plainRenderer()
	r.Binary("logo.png")
	r.InputError("Pick 1-3")
	r.QueryError(errors.New("git diff: boom"))
	r.Prompt(3, "q")
	r.Newline()
	r.Hint()

	assert.Equal(t,
		"logo.png is a binary file\n"+
			"Pick 1-3\n"+
			"qd: git diff: boom\n"+
			"\nFile number (1-3, q to quit): \n"+
			" Run qd -i to review, or qd -f for full diff\n\n",
		buf.String())
}

func TestTermTableHighlightsSelection(t *testing.T) {
	r, _ := plainRenderer()
	out := r.Table([]models.FileChange{
		models.NewFileChange("a.go", 1, 1),
		models.NewFileChange("b.go", 2, 0),
	}, 1)

	assert.Contains(t, out, "▶ 2")
	assert.NotContains(t, out, "▶ 1")
}

func TestTermTableHeaderStyle(t *testing.T) {
	var buf bytes.Buffer
	out := NewTermRenderer(&buf, termenv.ANSI256).Table([]models.FileChange{
		models.NewFileChange("a.go", 1, 1),
	}, -1)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "\x1b[1m")
	assert.Contains(t, lines[0], "Status")
	assert.NotContains(t, lines[1], "\x1b[1m")
}

func TestTruncateLines(t *testing.T) {
	assert.Equal(t, Truncated{Text: "a\nb", Total: 2}, TruncateLines("a\nb", 2))
	assert.Equal(t, Truncated{Text: "a\nb", Total: 3, Omitted: 1}, TruncateLines("a\nb\nc", 2))
	assert.Equal(t, Truncated{Text: "a\nb\nc", Total: 3}, TruncateLines("a\nb\nc", 0))
}

func TestColorProfile(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, ColorProfile(&buf, "never"))
	assert.NotEqual(t, termenv.Ascii, ColorProfile(&buf, "always"))
}

func TestTermColorsFollowProfile(t *testing.T) {
	var buf bytes.Buffer
	NewTermRenderer(&buf, termenv.ANSI256).FullDiff("+added\n-removed")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "added")
}
