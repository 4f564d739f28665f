package state

import "github.com/atomicstack/dashboard-palette/internal/workspace"

// CatalogStore holds the user-defined sections and the docs index.
type CatalogStore interface {
	Sections() []workspace.Section
	Docs() []workspace.Doc
	Set(sections []workspace.Section, docs []workspace.Doc)
}

type catalogStore struct {
	sections []workspace.Section
	docs     []workspace.Doc
}

func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

func (s *catalogStore) Sections() []workspace.Section {
	if len(s.sections) == 0 {
		return nil
	}
	dup := make([]workspace.Section, len(s.sections))
	for i, sec := range s.sections {
		dup[i] = sec
		dup[i].Commands = append([]workspace.Command(nil), sec.Commands...)
	}
	return dup
}

func (s *catalogStore) Docs() []workspace.Doc {
	if len(s.docs) == 0 {
		return nil
	}
	return append([]workspace.Doc(nil), s.docs...)
}

func (s *catalogStore) Set(sections []workspace.Section, docs []workspace.Doc) {
	s.sections = sections
	s.docs = docs
	s.sections = s.Sections()
	s.docs = s.Docs()
}
