package events

import "github.com/atomicstack/dashboard-palette/internal/logging"

type WorkspaceTracer struct{}

var Workspace = WorkspaceTracer{}

func (WorkspaceTracer) Load(path string, sections, branches int) {
	logging.Trace("workspace.load", map[string]interface{}{"path": path, "sections": sections, "branches": branches})
}

func (WorkspaceTracer) Change(path, op string) {
	logging.Trace("workspace.change", map[string]interface{}{"path": path, "op": op})
}

func (WorkspaceTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("workspace.error", map[string]interface{}{"path": path, "error": err.Error()})
}
