package state

import "github.com/atomicstack/dashboard-palette/internal/workspace"

type BranchStore interface {
	Entries() []workspace.Branch
	SetEntries([]workspace.Branch)
	Current() string
}

type branchStore struct {
	entries []workspace.Branch
	current string
}

func NewBranchStore() BranchStore {
	return &branchStore{}
}

func (s *branchStore) Entries() []workspace.Branch {
	return cloneBranches(s.entries)
}

// SetEntries replaces the branch list. The current branch falls back to the
// default branch when it is no longer listed.
func (s *branchStore) SetEntries(entries []workspace.Branch) {
	s.entries = cloneBranches(entries)
	for _, b := range s.entries {
		if b.Name == s.current {
			return
		}
	}
	s.current = ""
	for _, b := range s.entries {
		if b.Default {
			s.current = b.Name
			return
		}
	}
}

func (s *branchStore) Current() string {
	return s.current
}

func cloneBranches(entries []workspace.Branch) []workspace.Branch {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]workspace.Branch, len(entries))
	copy(dup, entries)
	return dup
}
