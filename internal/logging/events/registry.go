package events

import "github.com/atomicstack/dashboard-palette/internal/logging"

type RegistryTracer struct{}

type PageTracer struct{}

var (
	Registry = RegistryTracer{}
	Page     = PageTracer{}
)

func (RegistryTracer) Register(section string, handle int, ids []string) {
	logging.Trace("registry.register", map[string]interface{}{"section": section, "handle": handle, "ids": ids})
}

func (RegistryTracer) Unregister(section string, handle int) {
	logging.Trace("registry.unregister", map[string]interface{}{"section": section, "handle": handle})
}

func (RegistryTracer) Disabled(section string, handle int) {
	logging.Trace("registry.disabled", map[string]interface{}{"section": section, "handle": handle})
}

func (RegistryTracer) SectionCreated(section string, position int) {
	logging.Trace("registry.section", map[string]interface{}{"section": section, "position": position})
}

func (RegistryTracer) Overwrite(section, id string) {
	logging.Trace("registry.overwrite", map[string]interface{}{"section": section, "id": id})
}

func (PageTracer) Register(name string, handle int, kind string) {
	logging.Trace("page.register", map[string]interface{}{"name": name, "handle": handle, "kind": kind})
}

func (PageTracer) Unregister(name string, handle int) {
	logging.Trace("page.unregister", map[string]interface{}{"name": name, "handle": handle})
}

func (PageTracer) Open(from string) {
	logging.Trace("nav.open", map[string]interface{}{"from": from})
}

func (PageTracer) Close(from string) {
	logging.Trace("nav.close", map[string]interface{}{"from": from})
}

func (PageTracer) Set(name string, preserveQuery bool) {
	logging.Trace("nav.page", map[string]interface{}{"page": name, "preserveQuery": preserveQuery})
}

func (PageTracer) Reject(name string) {
	logging.Trace("nav.page.reject", map[string]interface{}{"page": name})
}

func (PageTracer) Back(from string) {
	logging.Trace("nav.back", map[string]interface{}{"from": from})
}

func (PageTracer) Mount(name string) {
	logging.Trace("page.mount", map[string]interface{}{"page": name})
}

func (PageTracer) Unmount(name string) {
	logging.Trace("page.unmount", map[string]interface{}{"page": name})
}
