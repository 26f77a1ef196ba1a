package review

import (
	"context"
	"fmt"

	"github.com/wahlandcase/qd/internal/git"
	"github.com/wahlandcase/qd/internal/models"
)

// recorder captures Renderer calls as short event strings
type recorder struct {
	events    []string
	summaries []Summary
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) Summary(s Summary) {
	r.summaries = append(r.summaries, s)
	r.add("summary %d", len(s.Changes))
}
func (r *recorder) Hint() { r.add("hint") }
func (r *recorder) Log(commits []models.CommitDetail) { r.add("log %d", len(commits)) }
func (r *recorder) FullDiff(diff string) { r.add("fulldiff %s", diff) }
func (r *recorder) Binary(path string) { r.add("binary %s", path) }
func (r *recorder) InputError(msg string) { r.add("input-error %s", msg) }
func (r *recorder) QueryError(err error) { r.add("query-error %v", err) }
func (r *recorder) Prompt(count int, quitKey string) { r.add("prompt") }
func (r *recorder) Newline() { r.add("newline") }
func (r *recorder) FileDiff(path, diff string, maxLines int) { r.add("diff %s %d", path, maxLines) }

// fakeSource is an in-memory repository
type fakeSource struct {
	repo      bool
	rng       models.ResolvedRange
	changes   []models.FileChange
	commits   []models.CommitRef
	details   []models.CommitDetail
	diffs     map[string]string
	branch    string
	statsErr  error
	infoErr   error
	logErr    error
	diffErr   error
	diffCalls []string
	calls     int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		repo: true,
		rng:  "HEAD~1..HEAD",
		changes: []models.FileChange{
			models.NewFileChange("src/api/auth.go", 12, 3),
			models.NewFileChange("src/login.go", 47, 0),
			models.NewBinaryFileChange("logo.png"),
		},
		commits: []models.CommitRef{models.NewCommitRef("a1b2c3f", "feat: add login")},
		diffs: map[string]string{
			"src/api/auth.go": "diff --git a/src/api/auth.go b/src/api/auth.go\n+new",
			"src/login.go":    "diff --git a/src/login.go b/src/login.go\n+login",
			"logo.png":        "Binary files differ",
		},
		branch: "main",
	}
}

func (f *fakeSource) RequireRepo(context.Context) error {
	f.calls++
	if !f.repo {
		return &git.GitError{Kind: git.KindNotARepo, Command: "rev-parse", Output: "fatal: not a git repository"}
	}
	return nil
}

func (f *fakeSource) ResolveRange(_ context.Context, n int, explicit string) models.ResolvedRange {
	f.calls++
	if explicit != "" {
		return models.ResolvedRange(explicit)
	}
	return f.rng
}

func (f *fakeSource) FileStats(context.Context, models.ResolvedRange) ([]models.FileChange, error) {
	f.calls++
	return f.changes, f.statsErr
}

func (f *fakeSource) FileDiff(_ context.Context, _ models.ResolvedRange, path string) (string, error) {
	f.calls++
	f.diffCalls = append(f.diffCalls, path)
	if f.diffErr != nil {
		return "", f.diffErr
	}
	return f.diffs[path], nil
}

func (f *fakeSource) CommitInfo(context.Context, models.ResolvedRange) ([]models.CommitRef, error) {
	f.calls++
	return f.commits, f.infoErr
}

func (f *fakeSource) CommitLog(context.Context, models.ResolvedRange) ([]models.CommitDetail, error) {
	f.calls++
	return f.details, f.logErr
}

func (f *fakeSource) CurrentBranch(context.Context) string {
	f.calls++
	return f.branch
}
