package review

import (
	"context"
	"io"
	"log/slog"

	"github.com/wahlandcase/qd/internal/models"
)

// Source is the set of repository queries the review needs.
// *git.Repository satisfies it.
type Source interface {
	// RequireRepo fails when the working directory is outside a repository
	RequireRepo(ctx context.Context) error
	ResolveRange(ctx context.Context, n int, explicit string) models.ResolvedRange
	FileStats(ctx context.Context, rng models.ResolvedRange) ([]models.FileChange, error)
	FileDiff(ctx context.Context, rng models.ResolvedRange, path string) (string, error)
	CommitInfo(ctx context.Context, rng models.ResolvedRange) ([]models.CommitRef, error)
	CommitLog(ctx context.Context, rng models.ResolvedRange) ([]models.CommitDetail, error)
	CurrentBranch(ctx context.Context) string
}

// Mode selects what a run prints
type Mode int

const (
	ModeSummary Mode = iota
	ModeFullDiff
	ModeInteractive
	ModeLog
)

// Options are the per-run choices made on the command line
type Options struct {
	// Range is an explicit revision range, "" to use Commits
	Range string
	// Commits is how many commits back from HEAD to review
	Commits int
	Mode    Mode
	// MaxDiffLines cuts per-file diffs in interactive mode, 0 for no limit
	MaxDiffLines int
	QuitKey      string
}

// Driver runs one review against a Source
type Driver struct {
	source Source
	out    Renderer
	logger *slog.Logger
}

// NewDriver creates a Driver
func NewDriver(source Source, out Renderer, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{source: source, out: out, logger: logger}
}

// Load resolves the range and fetches its file changes, commits and branch.
// Any failure here ends the run.
func (d *Driver) Load(ctx context.Context, opts Options) (Summary, error) {
	if err := d.source.RequireRepo(ctx); err != nil {
		return Summary{}, err
	}

	rng := d.source.ResolveRange(ctx, opts.Commits, opts.Range)
	d.logger.Debug("resolved range", "range", rng, "commits", opts.Commits, "explicit", opts.Range)

	changes, err := d.source.FileStats(ctx, rng)
	if err != nil {
		return Summary{}, err
	}
	commits, err := d.source.CommitInfo(ctx, rng)
	if err != nil {
		return Summary{}, err
	}
	d.logger.Debug("loaded range", "files", len(changes), "commits", len(commits))

	return Summary{
		Range:   rng,
		Branch:  d.source.CurrentBranch(ctx),
		Changes: changes,
		Commits: commits,
	}, nil
}

// Run loads the range and prints it according to opts.Mode. Interactive
// mode reads answers from in until the user quits.
func (d *Driver) Run(ctx context.Context, opts Options, in io.Reader) error {
	summary, err := d.Load(ctx, opts)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case ModeLog:
		details, err := d.source.CommitLog(ctx, summary.Range)
		if err != nil {
			return err
		}
		d.out.Log(details)
		return nil

	case ModeFullDiff:
		for _, c := range summary.Changes {
			diff, err := d.source.FileDiff(ctx, summary.Range, c.Path)
			if err != nil {
				return err
			}
			d.out.FullDiff(diff)
		}
		return nil
	}

	d.out.Summary(summary)

	if opts.Mode == ModeInteractive {
		if len(summary.Changes) == 0 {
			return nil
		}
		return d.NewSession(summary, opts).Run(ctx, in)
	}

	if len(summary.Changes) > 0 {
		d.out.Hint()
	}
	return nil
}

// NewSession starts an interactive session over a loaded summary
func (d *Driver) NewSession(summary Summary, opts Options) *Session {
	return NewSession(d.source, d.out, summary.Range, summary.Changes, SessionOptions{
		MaxDiffLines: opts.MaxDiffLines,
		QuitKey:      opts.QuitKey,
		Logger:       d.logger,
	})
}
