package git

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
)

// Runner runs one git query and returns its captured stdout.
// Failures come back as *GitError carrying git's diagnostic text.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner executes the git binary from the repository top-level.
// The top-level is looked up again on every call, so the order of
// calls never matters.
type ExecRunner struct {
	// Binary is the git executable, "git" when empty
	Binary string
	// Dir is where repository discovery starts, the process cwd when empty
	Dir string
	// Logger receives debug traces of each invocation
	Logger *slog.Logger
}

// NewExecRunner creates an ExecRunner for the given binary and start directory
func NewExecRunner(binary, dir string, logger *slog.Logger) *ExecRunner {
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	return &ExecRunner{Binary: binary, Dir: dir, Logger: logger}
}

// Run executes git with args in the repository top-level directory
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.exec(ctx, r.toplevel(ctx), args...)
}

func (r *ExecRunner) exec(ctx context.Context, dir string, args ...string) (string, error) {
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger().Debug("git", "args", args, "dir", dir, "duration", time.Since(start))
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		r.logger().Debug("git failed", "args", args, "stderr", msg)
		return "", newGitError(args, msg)
	}

	return strings.TrimRight(stdout.String(), "\r\n"), nil
}

// toplevel finds the worktree root containing the start directory.
// go-git answers in process for the common layouts, sparing a git call per
// query. GIT_DIR and GIT_WORK_TREE are only understood by git, so with
// either set, and for setups go-git cannot open, git itself is asked.
func (r *ExecRunner) toplevel(ctx context.Context) string {
	dir := r.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	if os.Getenv("GIT_DIR") == "" && os.Getenv("GIT_WORK_TREE") == "" {
		repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
			DetectDotGit:          true,
			EnableDotGitCommonDir: true,
		})
		if err == nil {
			if wt, err := repo.Worktree(); err == nil {
				return wt.Filesystem.Root()
			}
		}
	}

	root, err := r.exec(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil || root == "" {
		return dir
	}
	return root
}

func (r *ExecRunner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
