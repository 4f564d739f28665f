package state

import "sort"

type FlagStore interface {
	Enabled(name string) bool
	Set(map[string]bool)
	// Snapshot returns the enabled flag names in sorted order, suitable as a
	// registration dependency.
	Snapshot() []string
}

type flagStore struct {
	flags map[string]bool
}

func NewFlagStore() FlagStore {
	return &flagStore{flags: map[string]bool{}}
}

func (s *flagStore) Enabled(name string) bool {
	return s.flags[name]
}

func (s *flagStore) Set(flags map[string]bool) {
	dup := make(map[string]bool, len(flags))
	for k, v := range flags {
		dup[k] = v
	}
	s.flags = dup
}

func (s *flagStore) Snapshot() []string {
	names := make([]string, 0, len(s.flags))
	for name, on := range s.flags {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
