package review

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/wahlandcase/qd/internal/models"
)

// State is where a Session is in its prompt cycle
type State int

const (
	// StatePrompting waits for the next answer
	StatePrompting State = iota
	// StateShowing renders the selected file
	StateShowing
	// StateDone is terminal
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "Prompting"
	case StateShowing:
		return "Showing"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// DefaultQuitKey ends a session when no other key is configured
const DefaultQuitKey = "q"

// DiffSource fetches the diff of one file over a range
type DiffSource interface {
	FileDiff(ctx context.Context, rng models.ResolvedRange, path string) (string, error)
}

// SessionOptions tune a Session
type SessionOptions struct {
	// MaxDiffLines cuts rendered diffs, 0 for no limit
	MaxDiffLines int
	QuitKey      string
	Logger       *slog.Logger
}

// Session lets the user pick files from a change list one at a time.
// It never runs anything in the background: each answer is evaluated,
// rendered and finished before the next prompt.
type Session struct {
	source   DiffSource
	out      Renderer
	rng      models.ResolvedRange
	changes  []models.FileChange
	maxLines int
	quitKey  string
	logger   *slog.Logger

	state    State
	selected int
	lastErr  error
}

// NewSession creates a Session in StatePrompting
func NewSession(source DiffSource, out Renderer, rng models.ResolvedRange, changes []models.FileChange, opts SessionOptions) *Session {
	quit := strings.ToLower(strings.TrimSpace(opts.QuitKey))
	if quit == "" {
		quit = DefaultQuitKey
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		source:   source,
		out:      out,
		rng:      rng,
		changes:  changes,
		maxLines: opts.MaxDiffLines,
		quitKey:  quit,
		logger:   logger,
		state:    StatePrompting,
		selected: -1,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// QuitKey returns the normalized quit key
func (s *Session) QuitKey() string {
	return s.quitKey
}

// Changes returns the list the user picks from
func (s *Session) Changes() []models.FileChange {
	return s.changes
}

// Selected returns the most recently shown file
func (s *Session) Selected() (models.FileChange, bool) {
	if s.selected < 0 || s.selected >= len(s.changes) {
		return models.FileChange{}, false
	}
	return s.changes[s.selected], true
}

// Submit evaluates one answer typed at the prompt and returns the state
// the session ends up in. Invalid answers are reported and leave the
// session prompting.
func (s *Session) Submit(ctx context.Context, input string) State {
	if s.state != StatePrompting {
		return s.state
	}

	choice := strings.ToLower(strings.TrimSpace(input))
	if choice == s.quitKey {
		s.Quit()
		return s.state
	}

	n, err := strconv.Atoi(choice)
	if err != nil {
		s.out.InputError(fmt.Sprintf("Pick 1-%d or %s", len(s.changes), s.quitKey))
		return s.state
	}
	if n < 1 || n > len(s.changes) {
		s.out.InputError(fmt.Sprintf("Pick 1-%d", len(s.changes)))
		return s.state
	}

	return s.Open(ctx, n-1)
}

// Open shows the file at the 0-based index and returns to prompting.
// Binary files are reported without fetching a diff; a failed fetch is
// reported and does not end the session.
func (s *Session) Open(ctx context.Context, index int) State {
	if s.state != StatePrompting || index < 0 || index >= len(s.changes) {
		return s.state
	}

	s.selected = index
	s.state = StateShowing
	s.lastErr = nil
	change := s.changes[index]

	if change.Binary {
		s.out.Binary(change.Path)
	} else {
		diff, err := s.source.FileDiff(ctx, s.rng, change.Path)
		if err != nil {
			s.logger.Debug("diff failed", "path", change.Path, "error", err)
			s.lastErr = err
			s.out.QueryError(err)
		} else {
			s.out.FileDiff(change.Path, diff, s.maxLines)
		}
	}

	s.state = StatePrompting
	return s.state
}

// LastError returns the diff error of the most recent Open, if any
func (s *Session) LastError() error {
	return s.lastErr
}

// Quit moves the session to StateDone
func (s *Session) Quit() {
	s.state = StateDone
}
