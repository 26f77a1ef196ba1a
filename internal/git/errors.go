package git

import (
	"errors"
	"strings"
)

// ErrorKind tells callers what sort of git failure occurred
type ErrorKind int

const (
	// KindQueryFailed is any non-zero exit not covered by a more specific kind
	KindQueryFailed ErrorKind = iota
	// KindNotARepo means the working directory is outside a repository
	KindNotARepo
	// KindBadRange means git could not resolve a revision or range
	KindBadRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotARepo:
		return "not-a-repo"
	case KindBadRange:
		return "bad-range"
	default:
		return "query-failed"
	}
}

// GitError provides context for git command failures
type GitError struct {
	Kind    ErrorKind
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

func newGitError(args []string, output string) *GitError {
	command := "<no-args>"
	if len(args) > 0 {
		command = args[0]
	}
	return &GitError{
		Kind:    classify(output),
		Command: command,
		Output:  output,
	}
}

// classify maps git's diagnostic text onto an ErrorKind
func classify(output string) ErrorKind {
	lower := strings.ToLower(output)
	switch {
	case strings.Contains(lower, "not a git repository"):
		return KindNotARepo
	case strings.Contains(lower, "unknown revision"),
		strings.Contains(lower, "bad revision"),
		strings.Contains(lower, "invalid revision range"),
		strings.Contains(lower, "ambiguous argument"):
		return KindBadRange
	default:
		return KindQueryFailed
	}
}

// IsKind reports whether err is a *GitError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.Kind == kind
	}
	return false
}
