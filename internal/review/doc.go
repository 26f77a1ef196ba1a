// Package review turns the git queries for one range into what the user sees.
//
// A [Driver] loads the range, its file changes and commits, then prints a
// summary table, every diff, or the per-commit log. In interactive mode a
// [Session] takes over: it reads a 1-based file number per prompt, fetches
// and renders that file's diff, and stops on the quit key, end of input or
// an interrupt.
//
// All output goes through a [Renderer]. [TermRenderer] styles it for a
// terminal with lipgloss; tests substitute a recording implementation.
package review
