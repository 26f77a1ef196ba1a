package git

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/wahlandcase/qd/internal/models"
)

const (
	onelineFormat   = "--format=%h %s"
	commitLogFormat = "--format=%x1e%h%x1f%s"
)

// Repository answers the queries qd needs from one repository
type Repository struct {
	runner Runner
}

// NewRepository creates a Repository backed by the given runner
func NewRepository(runner Runner) *Repository {
	return &Repository{runner: runner}
}

// IsRepo checks if the working directory is inside a git repository
func (r *Repository) IsRepo(ctx context.Context) bool {
	return r.RequireRepo(ctx) == nil
}

// RequireRepo returns a KindNotARepo *GitError unless the working directory
// is inside a git repository. Any failure of the check counts as outside.
func (r *Repository) RequireRepo(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "rev-parse", "--git-dir")
	if err == nil {
		return nil
	}
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		notARepo := *gitErr
		notARepo.Kind = KindNotARepo
		return &notARepo
	}
	return &GitError{Kind: KindNotARepo, Command: "rev-parse", Output: err.Error()}
}

// CommitCount returns the number of commits reachable from HEAD,
// or 0 when there are none or git fails
func (r *Repository) CommitCount(ctx context.Context) int {
	out, err := r.runner.Run(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ResolveRange picks the range to review. An explicit range always wins.
// Otherwise n is clamped to the history length, and a request that reaches
// the root commit diffs against the empty tree.
func (r *Repository) ResolveRange(ctx context.Context, n int, explicit string) models.ResolvedRange {
	if explicit != "" {
		return models.ResolvedRange(explicit)
	}

	total := r.CommitCount(ctx)
	n = min(n, total)
	if n >= total {
		return models.RangeFromRoot()
	}
	return models.RangeBack(n)
}

// FileStats returns per-file line counts for the range, in git's order.
// Renames are listed as a deletion plus an addition so every path can be
// passed to FileDiff.
func (r *Repository) FileStats(ctx context.Context, rng models.ResolvedRange) ([]models.FileChange, error) {
	out, err := r.runner.Run(ctx, "diff", "--numstat", "--no-renames", rng.String())
	if err != nil {
		return nil, err
	}
	return ParseNumstat(out), nil
}

// FileDiff returns the textual diff of one path over the range
func (r *Repository) FileDiff(ctx context.Context, rng models.ResolvedRange, path string) (string, error) {
	return r.runner.Run(ctx, "diff", "--no-renames", rng.String(), "--", path)
}

// CommitInfo returns the first-parent commits in the range, newest first
func (r *Repository) CommitInfo(ctx context.Context, rng models.ResolvedRange) ([]models.CommitRef, error) {
	out, err := r.runner.Run(ctx, "log", onelineFormat, "--first-parent", logRange(rng))
	if err != nil {
		return nil, err
	}
	return ParseLogOneline(out), nil
}

// CommitLog returns the first-parent commits in the range with the files each touched
func (r *Repository) CommitLog(ctx context.Context, rng models.ResolvedRange) ([]models.CommitDetail, error) {
	out, err := r.runner.Run(ctx, "log", commitLogFormat, "--name-only", "--first-parent", logRange(rng))
	if err != nil {
		return nil, err
	}
	return ParseCommitLog(out), nil
}

// logRange rewrites the empty-tree range for log, which walks commits only
func logRange(rng models.ResolvedRange) string {
	if rng.FromRoot() {
		return "HEAD"
	}
	return rng.String()
}

// CurrentBranch returns the checked out branch name, or "" when HEAD is detached
func (r *Repository) CurrentBranch(ctx context.Context) string {
	out, err := r.runner.Run(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
