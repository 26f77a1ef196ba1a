package models

// CommitRef contains the short hash and subject of one first-parent commit
type CommitRef struct {
	// Hash is the abbreviated commit hash
	Hash string
	// Message is the first line of the commit message (may be empty)
	Message string
}

// NewCommitRef creates a new CommitRef
func NewCommitRef(hash, message string) CommitRef {
	return CommitRef{
		Hash:    hash,
		Message: message,
	}
}

// CommitDetail is a commit together with the files it touched, used by the log view
type CommitDetail struct {
	Hash    string
	Message string
	// Files are in the order git reported them
	Files []string
}

// NewCommitDetail creates a new CommitDetail
func NewCommitDetail(hash, message string, files []string) CommitDetail {
	return CommitDetail{
		Hash:    hash,
		Message: message,
		Files:   files,
	}
}
