package palette

import (
	"sort"

	"github.com/atomicstack/dashboard-palette/internal/logging/events"
)

// Registry stores the sections and pages registered by feature code for the
// lifetime of a palette session.
type Registry struct {
	order    []string
	sections map[string]*section
	pages    map[string]map[int]*pageBinding
	handles  int
	stamps   int
}

type section struct {
	name   string
	blocks map[int]*block
}

// block is the set of commands and section metadata one registration
// contributes to a section.
type block struct {
	handle   int
	stamp    int
	commands []Command
	meta     SectionMeta
}

type pageBinding struct {
	stamp int
	page  Page
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[string]*section),
		pages:    make(map[string]map[int]*pageBinding),
	}
}

// Registration is the handle returned for one call site's commands. The
// caller keeps it for as long as the commands should stay visible and calls
// Unregister when its own lifetime ends.
type Registration struct {
	registry *Registry
	handle   int
	section  string
	applied  bool
	enabled  bool
	hasDeps  bool
	deps     []any
	closed   bool
}

// RegisterCommands adds commands under section and returns the owning handle.
// Commands replace earlier entries with the same ID in that section.
func (r *Registry) RegisterCommands(name string, cmds []Command, opts ...Option) *Registration {
	r.handles++
	h := &Registration{registry: r, handle: r.handles, section: name}
	h.apply(cmds, resolveOptions(opts))
	return h
}

// Update re-registers the handle's commands. When the handle was registered
// with deps and neither the enabled flag nor the deps changed, Update does
// nothing and reports false. Without deps every call re-registers.
func (h *Registration) Update(cmds []Command, opts ...Option) bool {
	if h == nil || h.closed {
		return false
	}
	o := resolveOptions(opts)
	if h.applied && o.hasDeps && h.hasDeps && o.enabled == h.enabled && depsEqual(o.deps, h.deps) {
		return false
	}
	h.apply(cmds, o)
	return true
}

// Unregister retracts the handle's commands. Further calls are no-ops.
func (h *Registration) Unregister() {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	if h.registry.removeBlock(h.section, h.handle) {
		events.Registry.Unregister(h.section, h.handle)
	}
}

// Section reports the section the handle registers into.
func (h *Registration) Section() string {
	return h.section
}

// Active reports whether the handle currently contributes commands.
func (h *Registration) Active() bool {
	return h != nil && !h.closed && h.applied && h.enabled
}

func (h *Registration) apply(cmds []Command, o options) {
	h.applied = true
	h.enabled = o.enabled
	h.hasDeps = o.hasDeps
	h.deps = o.deps
	r := h.registry
	if !o.enabled {
		if r.removeBlock(h.section, h.handle) {
			events.Registry.Disabled(h.section, h.handle)
		}
		return
	}
	sec := r.ensureSection(h.section, o.order)
	r.stamps++
	for _, id := range CommandIDs(cmds) {
		if other := sec.owner(id); other != 0 && other != h.handle {
			events.Registry.Overwrite(h.section, id)
		}
	}
	sec.blocks[h.handle] = &block{handle: h.handle, stamp: r.stamps, commands: cloneCommands(cmds), meta: o.meta}
	events.Registry.Register(h.section, h.handle, CommandIDs(cmds))
}

func (r *Registry) ensureSection(name string, order OrderFunc) *section {
	if sec, ok := r.sections[name]; ok {
		return sec
	}
	sec := &section{name: name, blocks: make(map[int]*block)}
	r.sections[name] = sec
	r.order = append(r.order, name)
	if order != nil {
		if reordered := order(append([]string(nil), r.order...), len(r.order)-1); samePermutation(reordered, r.order) {
			r.order = reordered
		}
	}
	position := 0
	for i, n := range r.order {
		if n == name {
			position = i
		}
	}
	events.Registry.SectionCreated(name, position)
	return sec
}

func (r *Registry) removeBlock(name string, handle int) bool {
	sec, ok := r.sections[name]
	if !ok {
		return false
	}
	if _, ok := sec.blocks[handle]; !ok {
		return false
	}
	delete(sec.blocks, handle)
	return true
}

// owner returns the handle whose entry is currently shown for id, or 0.
func (s *section) owner(id string) int {
	best, owner := -1, 0
	for _, b := range s.blocks {
		for _, cmd := range b.commands {
			if cmd.ID == id && b.stamp > best {
				best, owner = b.stamp, b.handle
			}
		}
	}
	return owner
}

// merged resolves the section's visible commands: blocks in handle order,
// and for duplicate IDs only the most recently registered entry survives.
func (s *section) merged() []Command {
	if len(s.blocks) == 0 {
		return nil
	}
	handles := make([]int, 0, len(s.blocks))
	for h := range s.blocks {
		handles = append(handles, h)
	}
	sort.Ints(handles)

	type winner struct {
		stamp int
		index int
	}
	winners := make(map[string]winner)
	for _, h := range handles {
		b := s.blocks[h]
		for i, cmd := range b.commands {
			w, ok := winners[cmd.ID]
			if !ok || b.stamp > w.stamp || (b.stamp == w.stamp && i > w.index) {
				winners[cmd.ID] = winner{stamp: b.stamp, index: i}
			}
		}
	}

	out := make([]Command, 0, len(winners))
	for _, h := range handles {
		b := s.blocks[h]
		for i, cmd := range b.commands {
			if w := winners[cmd.ID]; w.stamp == b.stamp && w.index == i {
				out = append(out, cmd)
			}
		}
	}
	return out
}

// meta resolves the section metadata from the live blocks, oldest first, so
// the most recent registration's priority and data keys win. Metadata of
// retracted or re-registered blocks no longer counts.
func (s *section) meta() SectionMeta {
	if len(s.blocks) == 0 {
		return SectionMeta{}
	}
	live := make([]*block, 0, len(s.blocks))
	for _, b := range s.blocks {
		if !b.meta.isZero() {
			live = append(live, b)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].stamp < live[j].stamp })
	var meta SectionMeta
	for _, b := range live {
		meta = mergeMeta(meta, b.meta)
	}
	return meta
}

// Sections returns every section in registration order, including sections
// whose registrations have all been retracted.
func (r *Registry) Sections() []Section {
	out := make([]Section, 0, len(r.order))
	for _, name := range r.order {
		sec := r.sections[name]
		out = append(out, Section{Name: name, Commands: sec.merged(), Meta: sec.meta()})
	}
	return out
}

// Ordered returns the sections sorted for display.
func (r *Registry) Ordered() []Section {
	return OrderSections(r.Sections())
}

// Visible returns the ordered sections filtered by query.
func (r *Registry) Visible(query string) []Section {
	return Filter(r.Ordered(), query)
}

// Commands returns the merged commands of one section.
func (r *Registry) Commands(name string) []Command {
	sec, ok := r.sections[name]
	if !ok {
		return nil
	}
	return sec.merged()
}

// PageRegistration is the handle returned for a registered page.
type PageRegistration struct {
	registry *Registry
	handle   int
	name     string
	applied  bool
	enabled  bool
	hasDeps  bool
	deps     []any
	closed   bool
}

// RegisterPage associates page with name. The most recent active
// registration of a name wins.
func (r *Registry) RegisterPage(name string, page Page, opts ...Option) *PageRegistration {
	r.handles++
	h := &PageRegistration{registry: r, handle: r.handles, name: name}
	h.apply(page, resolveOptions(opts))
	return h
}

// Update follows the same deps contract as Registration.Update.
func (h *PageRegistration) Update(page Page, opts ...Option) bool {
	if h == nil || h.closed {
		return false
	}
	o := resolveOptions(opts)
	if h.applied && o.hasDeps && h.hasDeps && o.enabled == h.enabled && depsEqual(o.deps, h.deps) {
		return false
	}
	h.apply(page, o)
	return true
}

// Unregister removes the page binding. Further calls are no-ops.
func (h *PageRegistration) Unregister() {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	if h.registry.removePage(h.name, h.handle) {
		events.Page.Unregister(h.name, h.handle)
	}
}

// Name reports the page name.
func (h *PageRegistration) Name() string {
	return h.name
}

func (h *PageRegistration) apply(page Page, o options) {
	h.applied = true
	h.enabled = o.enabled
	h.hasDeps = o.hasDeps
	h.deps = o.deps
	r := h.registry
	if !o.enabled || page == nil {
		r.removePage(h.name, h.handle)
		return
	}
	bindings, ok := r.pages[h.name]
	if !ok {
		bindings = make(map[int]*pageBinding)
		r.pages[h.name] = bindings
	}
	r.stamps++
	bindings[h.handle] = &pageBinding{stamp: r.stamps, page: page}
	events.Page.Register(h.name, h.handle, page.Kind().String())
}

func (r *Registry) removePage(name string, handle int) bool {
	bindings, ok := r.pages[name]
	if !ok {
		return false
	}
	if _, ok := bindings[handle]; !ok {
		return false
	}
	delete(bindings, handle)
	if len(bindings) == 0 {
		delete(r.pages, name)
	}
	return true
}

// Page looks up an active page by name.
func (r *Registry) Page(name string) (Page, bool) {
	bindings, ok := r.pages[name]
	if !ok || len(bindings) == 0 {
		return nil, false
	}
	var best *pageBinding
	for _, b := range bindings {
		if best == nil || b.stamp > best.stamp {
			best = b
		}
	}
	return best.page, true
}

// Pages lists the names of active pages in lexical order.
func (r *Registry) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mergeMeta(base, update SectionMeta) SectionMeta {
	if update.Priority != nil {
		base.Priority = Priority(*update.Priority)
	}
	if len(update.Data) > 0 {
		data := make(map[string]any, len(base.Data)+len(update.Data))
		for k, v := range base.Data {
			data[k] = v
		}
		for k, v := range update.Data {
			data[k] = v
		}
		base.Data = data
	}
	return base
}

func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}
