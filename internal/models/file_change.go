package models

// ChangeStatus classifies how a file changed across the reviewed range
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusDeleted  ChangeStatus = "deleted"
	StatusModified ChangeStatus = "modified"
	StatusBinary   ChangeStatus = "binary"
)

// FileChange is one row of the numstat output for a range
type FileChange struct {
	// Path is relative to the repository root
	Path string
	// Insertions is the number of added lines (0 for binary files)
	Insertions int
	// Deletions is the number of removed lines (0 for binary files)
	Deletions int
	// Binary is set when git could not count lines for the file
	Binary bool
}

// NewFileChange creates a new FileChange
func NewFileChange(path string, insertions, deletions int) FileChange {
	return FileChange{
		Path:       path,
		Insertions: insertions,
		Deletions:  deletions,
	}
}

// NewBinaryFileChange creates a FileChange for a file without line counts
func NewBinaryFileChange(path string) FileChange {
	return FileChange{Path: path, Binary: true}
}

// Status derives the change classification from the counts.
// A 0/0 text entry is a mode or rename-only change and reports as modified.
func (f FileChange) Status() ChangeStatus {
	switch {
	case f.Binary:
		return StatusBinary
	case f.Deletions == 0 && f.Insertions > 0:
		return StatusAdded
	case f.Insertions == 0 && f.Deletions > 0:
		return StatusDeleted
	default:
		return StatusModified
	}
}

// ChangeTotals sums insertions and deletions over a set of changes
func ChangeTotals(changes []FileChange) (insertions, deletions int) {
	for _, c := range changes {
		insertions += c.Insertions
		deletions += c.Deletions
	}
	return insertions, deletions
}
