package review

import (
	"github.com/wahlandcase/qd/internal/models"
)

// Summary is everything the summary table shows for one range
type Summary struct {
	Range   models.ResolvedRange
	Branch  string
	Changes []models.FileChange
	Commits []models.CommitRef
}

// Renderer presents review output. Implementations decide on styling.
type Renderer interface {
	// Summary prints the header, file table and totals
	Summary(s Summary)
	// Hint points at the interactive and full diff modes
	Hint()
	// Log prints each commit followed by the files it touched
	Log(commits []models.CommitDetail)
	// FullDiff prints one file's diff without truncation
	FullDiff(diff string)
	// FileDiff prints one file's diff, cut after maxLines lines (0 means no limit)
	FileDiff(path, diff string, maxLines int)
	// Binary tells the user a file has no textual diff
	Binary(path string)
	// InputError reports a rejected prompt answer
	InputError(msg string)
	// QueryError reports a failed git query that does not end the run
	QueryError(err error)
	// Prompt asks for the next file number
	Prompt(count int, quitKey string)
	// Newline ends the prompt line when input stops without an answer
	Newline()
}
