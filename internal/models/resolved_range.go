package models

import "fmt"

// EmptyTreeHash is git's well-known hash of the empty tree
const EmptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// ResolvedRange is the two-endpoint revision range every query of one run uses
type ResolvedRange string

// RangeBack returns the range covering the last n commits before HEAD
func RangeBack(n int) ResolvedRange {
	return ResolvedRange(fmt.Sprintf("HEAD~%d..HEAD", n))
}

// RangeFromRoot returns the range from the empty tree to HEAD
func RangeFromRoot() ResolvedRange {
	return ResolvedRange(EmptyTreeHash + "..HEAD")
}

// FromRoot reports whether the range starts at the empty tree
func (r ResolvedRange) FromRoot() bool {
	return r == RangeFromRoot()
}

func (r ResolvedRange) String() string {
	return string(r)
}
