package ui

import (
	"github.com/atomicstack/dashboard-palette/internal/logging/events"
	"github.com/atomicstack/dashboard-palette/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// handleEscapeKey leaves the current page, or closes the palette from the
// listing. The query survives going back.
func (m *Model) handleEscapeKey() tea.Cmd {
	m.errMsg = ""
	m.forceClearInfo()
	if m.nav.GoBack() {
		return nil
	}
	m.nav.Close()
	return nil
}

// handleEnterKey executes the selection. While a route is being delivered
// further selections are ignored.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.routing {
		events.Command.Busy(m.nav.Page())
		return nil
	}
	if m.component != nil {
		return m.updateComponent(tea.KeyMsg{Type: tea.KeyEnter})
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	cmd, ok := current.Selected()
	if !ok {
		return nil
	}
	section := current.Rows[current.Cursor].Section
	events.UI.MenuEnter(current.ID, section, cmd.ID, cmd.Name, current.Filter)
	m.errMsg = ""
	m.forceClearInfo()
	next := m.bus.Execute(m.nav, command.Request{
		Section: section,
		Command: cmd,
		Base:    m.project.DashboardURL(),
	})
	if next != nil && cmd.Action == nil && cmd.Route != "" {
		m.routing = true
	}
	return next
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorUp() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorDown() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		m.nav.Close()
		return nil
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	}
	if m.component != nil {
		return m.updateComponent(keyMsg)
	}
	switch keyMsg.String() {
	case "up", "ctrl+p":
		m.moveCursorUp()
	case "down", "ctrl+n":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}
