package git

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/wahlandcase/qd/internal/models"
)

const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// ParseNumstat turns `git diff --numstat` output into FileChanges.
// Lines without exactly three tab-separated fields are skipped. A count
// column that is not a number (git prints "-" for binary files) marks the
// entry binary with zero counts. Output order follows input order.
func ParseNumstat(raw string) []models.FileChange {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var changes []models.FileChange
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(strings.TrimRight(line, "\r"), "\t", 3)
		if len(parts) != 3 || parts[2] == "" {
			continue
		}

		insertions, insOK := parseCount(parts[0])
		deletions, delOK := parseCount(parts[1])
		if !insOK || !delOK {
			changes = append(changes, models.NewBinaryFileChange(parts[2]))
			continue
		}
		changes = append(changes, models.NewFileChange(parts[2], insertions, deletions))
	}
	return changes
}

func parseCount(field string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseLogOneline turns "<hash> <subject>" lines into CommitRefs.
// Only the first whitespace run separates hash from subject.
func ParseLogOneline(raw string) []models.CommitRef {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var commits []models.CommitRef
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		hash, message := splitFirstSpace(line)
		commits = append(commits, models.NewCommitRef(hash, message))
	}
	return commits
}

func splitFirstSpace(line string) (string, string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}

// ParseCommitLog parses the output of commitLogFormat with --name-only.
// Each record starts with a record separator followed by
// "<hash><unit separator><subject>", then one touched path per line.
// Paths are kept byte for byte apart from a trailing carriage return.
func ParseCommitLog(raw string) []models.CommitDetail {
	var commits []models.CommitDetail
	for _, record := range strings.Split(raw, recordSep) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		lines := strings.Split(record, "\n")

		hash, message, _ := strings.Cut(strings.TrimRight(lines[0], "\r"), fieldSep)
		hash = strings.TrimSpace(hash)
		if hash == "" {
			continue
		}

		var files []string
		for _, line := range lines[1:] {
			if path := strings.TrimRight(line, "\r"); path != "" {
				files = append(files, path)
			}
		}
		commits = append(commits, models.NewCommitDetail(hash, message, files))
	}
	return commits
}
