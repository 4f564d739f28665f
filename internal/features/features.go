// Package features holds the modules that contribute commands and pages to
// the palette. Each feature owns its registration handles and re-syncs them
// from a Context snapshot; the registry's deps comparison decides whether a
// sync actually replaces anything.
package features

import (
	"time"

	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/router"
	"github.com/atomicstack/dashboard-palette/internal/state"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
)

// Context is the data features derive their commands from.
type Context struct {
	Project       workspace.Project
	Organization  workspace.Organization
	Branches      []workspace.Branch
	CurrentBranch string
	Flags         []string
	Sections      []workspace.Section
	Docs          []workspace.Doc
}

// Snapshot reads a Context from the stores.
func Snapshot(p state.ProjectStore, b state.BranchStore, f state.FlagStore, c state.CatalogStore) Context {
	return Context{
		Project:       p.Project(),
		Organization:  p.Organization(),
		Branches:      b.Entries(),
		CurrentBranch: b.Current(),
		Flags:         f.Snapshot(),
		Sections:      c.Sections(),
		Docs:          c.Docs(),
	}
}

// Flag reports whether the named flag is enabled.
func (c Context) Flag(name string) bool {
	for _, f := range c.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// Feature is a unit of palette content.
type Feature interface {
	Sync(Context)
	Unmount()
}

// Deps are the services features act through. A zero DocsDebounce uses the
// default delay; a negative one searches on every keystroke.
type Deps struct {
	Copier       router.Copier
	DocsDebounce time.Duration
}

// Set is the collection of features mounted on one registry.
type Set struct {
	features []Feature
}

// NewSet mounts the built-in features on reg. Nothing is registered until the
// first Sync.
func NewSet(reg *palette.Registry, deps Deps) *Set {
	if deps.Copier == nil {
		deps.Copier = router.SystemClipboard{}
	}
	return &Set{features: []Feature{
		newNavigation(reg),
		newBranches(reg),
		newProject(reg, deps.Copier),
		newDocs(reg, deps.DocsDebounce),
		newCustom(reg),
		newBuiltin(reg),
	}}
}

// Sync brings every feature's registrations in line with ctx.
func (s *Set) Sync(ctx Context) {
	for _, f := range s.features {
		f.Sync(ctx)
	}
}

// Unmount retracts every registration.
func (s *Set) Unmount() {
	for _, f := range s.features {
		f.Unmount()
	}
}

func projectRoute(ref, suffix string) string {
	return "/project/" + ref + suffix
}

func glyph(s string) palette.Renderer {
	return func() string { return s }
}
