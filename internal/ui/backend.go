package ui

import (
	"github.com/atomicstack/dashboard-palette/internal/backend"
	"github.com/atomicstack/dashboard-palette/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent feeds a workspace snapshot into the stores. The next sync
// re-registers feature commands from them. A failed reload keeps the last
// good workspace and shows the error.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.backendErr = evt.Err.Error()
		m.loaded = true
		return
	}
	res := m.dispatcher.Handle(evt)
	if res.Any() {
		m.loaded = true
		m.backendErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	if m.backendErr == "" {
		return false, ""
	}
	return true, m.backendErr
}
