// Package palette holds the command palette core: a registry of sections and
// pages contributed by feature code, the ordering applied to sections, the
// query filter and the page navigator driving drill-down.
//
// Nothing in this package is safe for concurrent use. A Registry and its
// Navigator are owned by the UI loop; background work reports back through
// messages and the loop applies the resulting registrations.
package palette

import tea "github.com/charmbracelet/bubbletea"

// Renderer produces a short decoration (icon or badge) for a command row.
type Renderer func() string

// Action runs when a command is selected. It may drive navigation through the
// controller and may return a command for asynchronous follow-up work.
type Action func(Controller) tea.Cmd

// Command is a single selectable entry in the palette.
type Command struct {
	ID            string
	Name          string
	Value         string
	Route         string
	Action        Action
	Icon          Renderer
	Badge         Renderer
	DefaultHidden bool
}

// SectionMeta is registration-time data attached to a section.
type SectionMeta struct {
	Priority *int
	Data     map[string]any
}

// Priority returns a pointer suitable for SectionMeta.Priority.
func Priority(p int) *int {
	return &p
}

// HasPriority reports whether a priority has been assigned.
func (m SectionMeta) HasPriority() bool {
	return m.Priority != nil
}

func (m SectionMeta) isZero() bool {
	return m.Priority == nil && len(m.Data) == 0
}

// Section is a named, ordered group of commands.
type Section struct {
	Name     string
	Commands []Command
	Meta     SectionMeta
}

// Controller drives palette navigation from command actions.
type Controller interface {
	SetPage(name string, preserveQuery bool) bool
	SetOpen(open bool)
	SetQuery(query string)
}

// CommandIDs lists the identifiers of the provided commands in order.
func CommandIDs(cmds []Command) []string {
	ids := make([]string, len(cmds))
	for i, cmd := range cmds {
		ids[i] = cmd.ID
	}
	return ids
}

func cloneCommands(cmds []Command) []Command {
	if len(cmds) == 0 {
		return nil
	}
	dup := make([]Command, len(cmds))
	copy(dup, cmds)
	return dup
}

func cloneSections(sections []Section) []Section {
	if len(sections) == 0 {
		return nil
	}
	dup := make([]Section, len(sections))
	for i, s := range sections {
		dup[i] = Section{Name: s.Name, Commands: cloneCommands(s.Commands), Meta: s.Meta}
	}
	return dup
}
