package palette

import tea "github.com/charmbracelet/bubbletea"

// PageKind distinguishes the two page shapes.
type PageKind int

const (
	PageCommands PageKind = iota
	PageComponent
)

func (k PageKind) String() string {
	switch k {
	case PageCommands:
		return "commands"
	case PageComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Page is a drill-down destination reachable by name.
type Page interface {
	Kind() PageKind
}

// CommandsPage lists its own sections instead of the registry's.
type CommandsPage struct {
	Sections []Section
}

func (CommandsPage) Kind() PageKind { return PageCommands }

// ComponentPage embeds a custom view. New is called each time the page is
// entered so every visit starts from a fresh component.
type ComponentPage struct {
	New func(Controller) Component
}

func (ComponentPage) Kind() PageKind { return PageComponent }

// Component is an embedded page view.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
}

// Unmounter is implemented by components that hold in-flight work. Unmount is
// called when the page is left or the palette closes.
type Unmounter interface {
	Unmount()
}

// PageLookup resolves registered pages by name.
type PageLookup interface {
	Page(name string) (Page, bool)
}
