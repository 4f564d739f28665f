package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/dashboard-palette/internal/backend"
	"github.com/atomicstack/dashboard-palette/internal/data/dispatcher"
	"github.com/atomicstack/dashboard-palette/internal/features"
	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/router"
	"github.com/atomicstack/dashboard-palette/internal/state"
	"github.com/atomicstack/dashboard-palette/internal/theme"
	"github.com/atomicstack/dashboard-palette/internal/ui/command"
	uistate "github.com/atomicstack/dashboard-palette/internal/ui/state"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	menuHeaderSeparator = " → "
	defaultRootTitle    = "commands"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(page, title string, sections []palette.Section) *level {
	return uistate.NewLevel(page, title, sections)
}

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Watcher      *backend.Watcher
	Router       router.Router
	Copier       router.Copier
	DashboardURL string
	// Workspace, when set, is applied before the first render.
	Workspace *workspace.Workspace
	Page      string
	Query     string
	// StaticCursor disables prompt cursor blinking.
	StaticCursor bool
	DocsDebounce time.Duration
}

// Model implements the Bubble Tea model for the command palette.
type Model struct {
	registry *palette.Registry
	nav      *palette.Navigator
	features *features.Set
	bus      *command.Bus

	level          *level
	component      palette.Component
	componentPage  string
	componentQuery string

	pendingPage       string
	routing           bool
	initCmd           tea.Cmd
	loaded            bool
	quitting          bool
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendErr        string
	showFooter        bool
	verbose           bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	project    state.ProjectStore
	branches   state.BranchStore
	flags      state.FlagStore
	catalog    state.CatalogStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the palette, open on the merged listing.
func NewModel(opts Options) *Model {
	registry := palette.NewRegistry()
	project := state.NewProjectStore()
	branches := state.NewBranchStore()
	flags := state.NewFlagStore()
	catalog := state.NewCatalogStore()
	project.Set(workspace.Project{}, workspace.Organization{}, opts.DashboardURL)
	m := &Model{
		registry:    registry,
		nav:         palette.NewNavigator(registry),
		features:    features.NewSet(registry, features.Deps{Copier: opts.Copier, DocsDebounce: opts.DocsDebounce}),
		bus:         command.New(opts.Router),
		backend:     opts.Watcher,
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		pendingPage: strings.TrimSpace(opts.Page),
		project:     project,
		branches:    branches,
		flags:       flags,
		catalog:     catalog,
		dispatcher:  dispatcher.New(project, branches, flags, catalog, opts.DashboardURL),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if opts.StaticCursor {
		c.SetMode(cursor.CursorStatic)
	}
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()

	if opts.Workspace != nil {
		m.dispatcher.Apply(*opts.Workspace)
		m.loaded = true
	}
	m.nav.Open()
	m.nav.SetQuery(opts.Query)
	m.initCmd = m.sync()
	return m
}

// Registry exposes the command registry so callers can contribute commands.
func (m *Model) Registry() *palette.Registry {
	return m.registry
}

// Navigator exposes the page navigator.
func (m *Model) Navigator() *palette.Navigator {
	return m.nav
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.initCmd != nil {
		cmds = append(cmds, m.initCmd)
		m.initCmd = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if cmd := m.forwardToComponent(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(palette.RouteMsg{}):     m.handleRouteMsg,
		reflect.TypeOf(palette.NoticeMsg{}):    m.handleNoticeMsg,
		reflect.TypeOf(backendEventMsg{}):      m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):       m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.sync(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.quitting {
		return tea.Quit
	}
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// sync reconciles the screen with the registry and navigator after every
// update: features re-register from the stores, a vanished page falls back to
// the listing, the hosted component follows the current page and the list
// follows the query.
func (m *Model) sync() tea.Cmd {
	if m.quitting {
		return nil
	}
	m.features.Sync(features.Snapshot(m.project, m.branches, m.flags, m.catalog))
	m.applyPendingPage()
	m.nav.Reconcile()
	if !m.nav.IsOpen() {
		m.unmountComponent()
		m.quitting = true
		return nil
	}

	name := m.nav.Page()
	var cmds []tea.Cmd
	if m.component != nil && m.componentPage != name {
		m.unmountComponent()
	}
	var sections []palette.Section
	if name == "" {
		sections = m.registry.Ordered()
	} else if page, ok := m.registry.Page(name); ok {
		switch p := page.(type) {
		case palette.CommandsPage:
			sections = palette.OrderSections(p.Sections)
		case palette.ComponentPage:
			if m.component == nil && p.New != nil {
				m.component = p.New(m.nav)
				m.componentPage = name
				m.componentQuery = ""
				if m.component != nil {
					if cmd := m.mountComponentCmd(); cmd != nil {
						cmds = append(cmds, cmd)
					}
				}
			}
		}
	}

	if m.level == nil || m.level.ID != name {
		title := defaultRootTitle
		if name != "" {
			title = name
		}
		m.level = newLevel(name, title, sections)
		m.level.SetFilter(m.nav.Query(), len([]rune(m.nav.Query())))
		m.filterCursorDirty = true
	} else {
		m.level.UpdateSections(sections)
		if m.level.Filter != m.nav.Query() {
			m.level.SetFilter(m.nav.Query(), len([]rune(m.nav.Query())))
			m.filterCursorDirty = true
		}
	}
	m.syncViewport(m.level)

	if m.component != nil && m.componentQuery != m.nav.Query() {
		if cmd := m.sendQueryToComponent(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyPendingPage() {
	if m.pendingPage == "" {
		return
	}
	if m.nav.SetPage(m.pendingPage, true) {
		m.pendingPage = ""
		return
	}
	if m.loaded {
		m.errMsg = fmt.Sprintf("Unknown page %q", m.pendingPage)
		m.pendingPage = ""
	}
}

func (m *Model) mountComponentCmd() tea.Cmd {
	cmds := []tea.Cmd{m.component.Init()}
	if m.width > 0 || m.height > 0 {
		cmds = append(cmds, m.updateComponent(tea.WindowSizeMsg{Width: m.width, Height: m.height}))
	}
	cmds = append(cmds, m.sendQueryToComponent())
	return tea.Batch(cmds...)
}

func (m *Model) sendQueryToComponent() tea.Cmd {
	m.componentQuery = m.nav.Query()
	return m.updateComponent(palette.QueryMsg{Query: m.componentQuery})
}

func (m *Model) updateComponent(msg tea.Msg) tea.Cmd {
	if m.component == nil {
		return nil
	}
	next, cmd := m.component.Update(msg)
	if next != nil {
		m.component = next
	}
	return cmd
}

func (m *Model) forwardToComponent(msg tea.Msg) tea.Cmd {
	if m.component == nil || msg == nil {
		return nil
	}
	return m.updateComponent(msg)
}

func (m *Model) unmountComponent() {
	if m.component == nil {
		return
	}
	if u, ok := m.component.(palette.Unmounter); ok {
		u.Unmount()
	}
	m.component = nil
	m.componentPage = ""
	m.componentQuery = ""
}

func (m *Model) currentLevel() *level {
	return m.level
}
