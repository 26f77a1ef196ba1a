package review

import "strings"

// Truncated is a diff cut down to a line budget
type Truncated struct {
	Text    string
	Total   int
	Omitted int
}

// TruncateLines keeps the first maxLines lines of diff. maxLines <= 0 keeps everything.
func TruncateLines(diff string, maxLines int) Truncated {
	lines := strings.Split(diff, "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return Truncated{Text: diff, Total: len(lines)}
	}
	return Truncated{
		Text:    strings.Join(lines[:maxLines], "\n"),
		Total:   len(lines),
		Omitted: len(lines) - maxLines,
	}
}
