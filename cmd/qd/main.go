// Qd is a quick diff review for recent git changes.
//
// Usage:
//
//	qd                  # summarize the last commit
//	qd -n 3             # summarize the last 3 commits
//	qd main..HEAD       # summarize an explicit range
//	qd -i               # pick files by number and read their diffs
//	qd -t               # browse the same list full-screen
//	qd -f               # print every diff
//	qd -l               # list commits with the files each touched
package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/qd/internal/termfix"

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/wahlandcase/qd/internal/app"
	"github.com/wahlandcase/qd/internal/config"
	"github.com/wahlandcase/qd/internal/git"
	"github.com/wahlandcase/qd/internal/review"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "dev"

type flags struct {
	commits     int
	fullDiff    bool
	interactive bool
	log         bool
	browse      bool
	verbose     bool
	configPath  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qd: "+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:           "qd [range]",
		Short:         "Quick diff review for recent git changes",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().IntVarP(&f.commits, "commits", "n", 1, "Number of recent commits to review (10 with -l)")
	rootCmd.Flags().BoolVarP(&f.fullDiff, "full", "f", false, "Show full diff for all files")
	rootCmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Interactive per-file review mode")
	rootCmd.Flags().BoolVarP(&f.log, "log", "l", false, "Show commits with files modified")
	rootCmd.Flags().BoolVarP(&f.browse, "tui", "t", false, "Browse files and diffs full-screen")
	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", "", "Config file (default $QD_CONFIG or <user config dir>/qd.toml)")
	rootCmd.PersistentFlags().BoolVar(&f.verbose, "verbose", false, "Log git invocations to stderr")

	rootCmd.AddCommand(newConfigCmd(f))
	return rootCmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg, f.verbose)

	n := f.commits
	if !cmd.Flags().Changed("commits") {
		n = cfg.Review.Commits
		if f.log {
			n = cfg.Review.LogCommits
		}
	}
	if n < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", n)
	}

	var explicit string
	if len(args) == 1 {
		explicit = args[0]
	}

	opts := review.Options{
		Range:        explicit,
		Commits:      n,
		Mode:         modeFor(f),
		MaxDiffLines: cfg.Review.MaxDiffLines,
		QuitKey:      cfg.QuitToken(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	repo := git.NewRepository(git.NewExecRunner(cfg.Git.Binary, "", logger))
	profile := review.ColorProfile(cmd.OutOrStdout(), cfg.UI.Color)
	out := review.NewTermRenderer(cmd.OutOrStdout(), profile)
	driver := review.NewDriver(repo, out, logger)

	if !f.browse || opts.Mode == review.ModeLog || opts.Mode == review.ModeFullDiff {
		return describeError(driver.Run(ctx, opts, cmd.InOrStdin()), explicit)
	}

	summary, err := driver.Load(ctx, opts)
	if err != nil {
		return describeError(err, explicit)
	}
	if len(summary.Changes) == 0 {
		out.Summary(summary)
		return nil
	}

	model := app.New(ctx, repo, summary, opts.QuitKey, profile)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// describeError shortens git failures qd can explain to one line. Other
// errors keep git's own diagnostic.
func describeError(err error, explicit string) error {
	var gitErr *git.GitError
	if !errors.As(err, &gitErr) {
		return err
	}
	switch gitErr.Kind {
	case git.KindNotARepo:
		return errors.New("not a git repo")
	case git.KindBadRange:
		if explicit != "" {
			return fmt.Errorf("bad range %s", explicit)
		}
		first, _, _ := strings.Cut(gitErr.Output, "\n")
		return fmt.Errorf("bad range: %s", first)
	default:
		return err
	}
}

// modeFor maps the flags onto a review mode. -l wins over -f, which wins
// over -i.
func modeFor(f *flags) review.Mode {
	switch {
	case f.log:
		return review.ModeLog
	case f.fullDiff:
		return review.ModeFullDiff
	case f.interactive:
		return review.ModeInteractive
	default:
		return review.ModeSummary
	}
}

func loadConfig(f *flags) (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadFrom(f.configPath)
	}
	return config.Load()
}

func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
