// Package termfix adjusts the terminal environment before termenv reads it.
// Warp answers terminal queries slowly, which stalls the first lipgloss
// render. Import this package FIRST in main (before lipgloss/termenv):
//
//	_ "github.com/wahlandcase/qd/internal/termfix"
package termfix

import "os"

func init() {
	apply(os.Getenv, os.Setenv)
}

// apply reports Warp as a dumb terminal so termenv skips its queries, and
// restores color through COLORTERM unless the user asked for none.
func apply(getenv func(string) string, setenv func(string, string) error) {
	if getenv("TERM_PROGRAM") != "WarpTerminal" {
		return
	}
	_ = setenv("TERM", "dumb")
	if getenv("NO_COLOR") == "" {
		_ = setenv("COLORTERM", "truecolor")
	}
}
