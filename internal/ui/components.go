package ui

import (
	"fmt"
	"strings"
)

// SectionHeader creates a styled section header with a title
// Example: "─── TITLE ───────────"
func SectionHeader(s Styles, title string) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))

	return fmt.Sprintf("%s%s%s",
		s.Dim.Render("  ─── "),
		s.Title.Render(title),
		s.Dim.Render(" "+dashes),
	)
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// KeyBinding renders a key binding hint
func KeyBinding(s Styles, key, description string) string {
	return fmt.Sprintf("%s %s",
		s.Title.Render(key),
		s.Dim.Render(description),
	)
}

// KeyBindings joins several key hints into one footer line
func KeyBindings(s Styles, pairs ...[2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, KeyBinding(s, p[0], p[1]))
	}
	return "  " + strings.Join(parts, "   ")
}

// Plural returns "1 file", "2 files" and so on
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
