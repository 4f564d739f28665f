package ui

import (
	"github.com/atomicstack/dashboard-palette/internal/logging/events"
	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// handleActionResultMsg closes the palette once a route has been delivered.
// Failures keep it open with the error on the status line.
func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	m.routing = false
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	events.App.Exit(result.URL)
	m.nav.Close()
	return nil
}

func (m *Model) handleRouteMsg(msg tea.Msg) tea.Cmd {
	req, ok := msg.(palette.RouteMsg)
	if !ok || m.routing {
		return nil
	}
	next := m.bus.Execute(m.nav, command.Request{
		Section: m.nav.Page(),
		Command: palette.Command{ID: req.ID, Name: req.ID, Route: req.Route},
		Base:    m.project.DashboardURL(),
	})
	m.routing = next != nil
	return next
}

func (m *Model) handleNoticeMsg(msg tea.Msg) tea.Cmd {
	notice, ok := msg.(palette.NoticeMsg)
	if !ok {
		return nil
	}
	if notice.Err != nil {
		m.errMsg = notice.Err.Error()
		events.Action.Error(notice.Err)
		return nil
	}
	m.errMsg = ""
	if notice.Info != "" {
		m.setInfo(notice.Info)
		events.Action.Success(notice.Info)
	}
	return nil
}
