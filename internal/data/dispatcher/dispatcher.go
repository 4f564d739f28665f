package dispatcher

import (
	"github.com/atomicstack/dashboard-palette/internal/backend"
	"github.com/atomicstack/dashboard-palette/internal/state"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
)

type Result struct {
	ProjectUpdated  bool
	BranchesUpdated bool
	FlagsUpdated    bool
	CatalogUpdated  bool
}

// Any reports whether any store changed.
func (r Result) Any() bool {
	return r.ProjectUpdated || r.BranchesUpdated || r.FlagsUpdated || r.CatalogUpdated
}

type Dispatcher struct {
	project    state.ProjectStore
	branches   state.BranchStore
	flags      state.FlagStore
	catalog    state.CatalogStore
	defaultURL string
}

// New returns a dispatcher feeding the given stores. defaultURL is used when
// a workspace does not name its dashboard.
func New(p state.ProjectStore, b state.BranchStore, f state.FlagStore, c state.CatalogStore, defaultURL string) *Dispatcher {
	return &Dispatcher{project: p, branches: b, flags: f, catalog: c, defaultURL: defaultURL}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindWorkspace:
		ws, ok := evt.Data.(workspace.Workspace)
		if !ok {
			return res
		}
		return d.Apply(ws)
	}
	return res
}

// Apply copies a workspace snapshot into the stores.
func (d *Dispatcher) Apply(ws workspace.Workspace) Result {
	url := ws.DashboardURL
	if url == "" {
		url = d.defaultURL
	}
	d.project.Set(ws.Project, ws.Organization, url)
	d.branches.SetEntries(ws.Branches)
	d.flags.Set(ws.Flags)
	d.catalog.Set(ws.Sections, ws.Docs)
	return Result{ProjectUpdated: true, BranchesUpdated: true, FlagsUpdated: true, CatalogUpdated: true}
}
