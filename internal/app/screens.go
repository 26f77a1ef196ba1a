package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenFiles Screen = iota
	ScreenDiff
)

func (s Screen) String() string {
	names := []string{
		"Files",
		"Diff",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
