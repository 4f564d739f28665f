package palette

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func names(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Name
	}
	return out
}

func sectionNames(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Name
	}
	return out
}

func TestRegisterCommandsLastRegisteredWins(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("NAV", []Command{{ID: "x", Name: "first"}})
	r.RegisterCommands("NAV", []Command{{ID: "x", Name: "second"}})
	r.RegisterCommands("NAV", []Command{{ID: "y", Name: "other"}, {ID: "x", Name: "third"}})

	cmds := r.Commands("NAV")
	require.Equal(t, []string{"other", "third"}, names(cmds))
}

func TestRegisterCommandsDuplicateInsideOneCall(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("NAV", []Command{{ID: "x", Name: "a"}, {ID: "x", Name: "b"}})
	require.Equal(t, []string{"b"}, names(r.Commands("NAV")))
}

func TestRegisterCommandsAccumulateAcrossCallSites(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("NAV", []Command{{ID: "a", Name: "A"}})
	r.RegisterCommands("NAV", []Command{{ID: "b", Name: "B"}})
	require.Equal(t, []string{"A", "B"}, names(r.Commands("NAV")))
	require.Equal(t, []string{"NAV"}, sectionNames(r.Sections()))
}

func TestDisablingRegistrationRemovesCommands(t *testing.T) {
	r := NewRegistry()
	keep := r.RegisterCommands("NAV", []Command{{ID: "keep", Name: "Keep"}})
	h := r.RegisterCommands("NAV", []Command{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})
	require.True(t, h.Active())

	changed := h.Update([]Command{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, Enabled(false))
	require.True(t, changed)
	require.False(t, h.Active())
	require.Equal(t, []string{"Keep"}, names(r.Commands("NAV")))
	require.True(t, keep.Active())

	visible := r.Visible("")
	require.Len(t, visible, 1)
	require.Equal(t, []string{"Keep"}, names(visible[0].Commands))
}

func TestDisabledRegistrationIsNoOp(t *testing.T) {
	r := NewRegistry()
	h := r.RegisterCommands("Hidden", []Command{{ID: "a", Name: "A"}}, Enabled(false))
	require.False(t, h.Active())
	require.Empty(t, r.Sections())
	require.Empty(t, r.Visible(""))
}

func TestUnregisterIsIdempotentAndSectionPersists(t *testing.T) {
	r := NewRegistry()
	h := r.RegisterCommands("NAV", []Command{{ID: "a", Name: "A"}})
	h.Unregister()
	h.Unregister()
	require.Empty(t, r.Commands("NAV"))
	require.Equal(t, []string{"NAV"}, sectionNames(r.Sections()))
	require.Empty(t, r.Visible(""))
	require.False(t, h.Update([]Command{{ID: "a", Name: "A"}}))
	require.Empty(t, r.Commands("NAV"))
}

func TestUpdateWithUnchangedDepsSkipsReRegistration(t *testing.T) {
	r := NewRegistry()
	h := r.RegisterCommands("NAV", []Command{{ID: "a", Name: "old"}}, Deps("ref-1", []string{"x"}))

	require.False(t, h.Update([]Command{{ID: "a", Name: "new"}}, Deps("ref-1", []string{"x"})))
	require.Equal(t, []string{"old"}, names(r.Commands("NAV")))

	require.True(t, h.Update([]Command{{ID: "a", Name: "new"}}, Deps("ref-2", []string{"x"})))
	require.Equal(t, []string{"new"}, names(r.Commands("NAV")))
}

func TestUpdateWithoutDepsAlwaysReRegisters(t *testing.T) {
	r := NewRegistry()
	h := r.RegisterCommands("NAV", []Command{{ID: "a", Name: "one"}})
	require.True(t, h.Update([]Command{{ID: "a", Name: "two"}}))
	require.Equal(t, []string{"two"}, names(r.Commands("NAV")))
}

func TestReRegistrationKeepsCallSitePosition(t *testing.T) {
	r := NewRegistry()
	first := r.RegisterCommands("NAV", []Command{{ID: "a", Name: "A"}}, Deps(1))
	r.RegisterCommands("NAV", []Command{{ID: "b", Name: "B"}})

	first.Update([]Command{{ID: "a", Name: "A2"}}, Deps(2))
	require.Equal(t, []string{"A2", "B"}, names(r.Commands("NAV")))
}

func TestOvershadowedCommandReturnsAfterUnregister(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("NAV", []Command{{ID: "x", Name: "base"}})
	override := r.RegisterCommands("NAV", []Command{{ID: "x", Name: "override"}})
	require.Equal(t, []string{"override"}, names(r.Commands("NAV")))

	override.Unregister()
	require.Equal(t, []string{"base"}, names(r.Commands("NAV")))
}

func TestOrderSectionHookAppliesOnCreation(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("a", []Command{{ID: "1", Name: "1"}})
	r.RegisterCommands("b", []Command{{ID: "2", Name: "2"}})
	r.RegisterCommands("c", []Command{{ID: "3", Name: "3"}}, OrderSection(OrderFirst))
	r.RegisterCommands("d", []Command{{ID: "4", Name: "4"}}, OrderSection(OrderBefore("b")))
	require.Equal(t, []string{"c", "a", "d", "b"}, sectionNames(r.Sections()))

	// hooks only run when the section is created
	r.RegisterCommands("a", []Command{{ID: "5", Name: "5"}}, OrderSection(OrderFirst))
	require.Equal(t, []string{"c", "a", "d", "b"}, sectionNames(r.Sections()))
}

func TestOrderSectionHookReturningGarbageIsIgnored(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("a", []Command{{ID: "1", Name: "1"}})
	r.RegisterCommands("b", []Command{{ID: "2", Name: "2"}}, OrderSection(func([]string, int) []string {
		return []string{"zzz"}
	}))
	require.Equal(t, []string{"a", "b"}, sectionNames(r.Sections()))
}

func TestSectionMetaPriorityDrivesVisibleOrder(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("a", []Command{{ID: "1", Name: "one"}}, WithPriority(3))
	r.RegisterCommands("b", []Command{{ID: "2", Name: "two"}})
	r.RegisterCommands("c", []Command{{ID: "3", Name: "three"}}, WithSectionMeta(SectionMeta{
		Priority: Priority(1),
		Data:     map[string]any{"owner": "docs"},
	}))

	require.Equal(t, []string{"c", "a", "b"}, sectionNames(r.Visible("")))
	ordered := r.Ordered()
	require.Equal(t, "docs", ordered[0].Meta.Data["owner"])
}

type stubComponent struct{}

func (stubComponent) Init() tea.Cmd { return nil }

func (s stubComponent) Update(tea.Msg) (Component, tea.Cmd) { return s, nil }

func (stubComponent) View() string { return "stub" }

func TestRegisterPageLifecycle(t *testing.T) {
	r := NewRegistry()
	first := r.RegisterPage("Switch branch", CommandsPage{Sections: []Section{{Name: "Branches"}}})
	page, ok := r.Page("Switch branch")
	require.True(t, ok)
	require.Equal(t, PageCommands, page.Kind())

	second := r.RegisterPage("Switch branch", ComponentPage{New: func(Controller) Component { return stubComponent{} }})
	page, ok = r.Page("Switch branch")
	require.True(t, ok)
	require.Equal(t, PageComponent, page.Kind())

	second.Unregister()
	page, ok = r.Page("Switch branch")
	require.True(t, ok)
	require.Equal(t, PageCommands, page.Kind())

	require.True(t, first.Update(CommandsPage{}, Enabled(false)))
	_, ok = r.Page("Switch branch")
	require.False(t, ok)
	require.Empty(t, r.Pages())
}

func TestRegisterPageDepsContract(t *testing.T) {
	r := NewRegistry()
	h := r.RegisterPage("Docs", CommandsPage{}, Deps("v1"))
	require.False(t, h.Update(CommandsPage{}, Deps("v1")))
	require.True(t, h.Update(CommandsPage{}, Deps("v2")))
	require.Equal(t, []string{"Docs"}, r.Pages())
}

func TestRegisteredCommandsAreCopied(t *testing.T) {
	r := NewRegistry()
	cmds := []Command{{ID: "a", Name: "A"}}
	r.RegisterCommands("NAV", cmds)
	cmds[0].Name = "mutated"
	require.Equal(t, []string{"A"}, names(r.Commands("NAV")))
}

func TestDroppingPriorityRestoresRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("Navigate", []Command{{ID: "a", Name: "A"}})
	cmds := []Command{{ID: "wiki", Name: "Team wiki"}}
	team := r.RegisterCommands("Team", cmds, WithPriority(0), Deps(1))
	require.Equal(t, []string{"Team", "Navigate"}, sectionNames(r.Ordered()))

	require.True(t, team.Update(cmds, Deps(2)))
	ordered := r.Ordered()
	require.Equal(t, []string{"Navigate", "Team"}, sectionNames(ordered))
	require.False(t, ordered[1].Meta.HasPriority())
}

func TestUnregisterRetractsSectionPriority(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommands("Navigate", []Command{{ID: "a", Name: "A"}})
	cmds := []Command{{ID: "wiki", Name: "Team wiki"}}
	team := r.RegisterCommands("Team", cmds, WithPriority(0))
	team.Unregister()

	r.RegisterCommands("Team", cmds)
	ordered := r.Ordered()
	require.Equal(t, []string{"Navigate", "Team"}, sectionNames(ordered))
	require.False(t, ordered[1].Meta.HasPriority())
}

func TestMostRecentPriorityWins(t *testing.T) {
	r := NewRegistry()
	first := r.RegisterCommands("Team", []Command{{ID: "a", Name: "A"}}, WithPriority(4))
	r.RegisterCommands("Team", []Command{{ID: "b", Name: "B"}}, WithPriority(2))
	require.Equal(t, 2, *r.Sections()[0].Meta.Priority)

	first.Update([]Command{{ID: "a", Name: "A"}}, WithPriority(7))
	require.Equal(t, 7, *r.Sections()[0].Meta.Priority)
}
