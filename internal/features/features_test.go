package features

import (
	"errors"
	"testing"

	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	"github.com/stretchr/testify/require"
)

type fakeCopier struct {
	copied []string
	err    error
}

func (f *fakeCopier) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type fakeController struct {
	page     string
	preserve bool
	open     bool
	query    string
}

func (c *fakeController) SetPage(name string, preserve bool) bool {
	c.page, c.preserve = name, preserve
	return true
}
func (c *fakeController) SetOpen(open bool)      { c.open = open }
func (c *fakeController) SetQuery(query string) { c.query = query }

func sampleContext() Context {
	prio := 5
	return Context{
		Project:      workspace.Project{Ref: "abc", Name: "Demo"},
		Organization: workspace.Organization{Slug: "acme", Name: "Acme"},
		Branches: []workspace.Branch{
			{Name: "main", Ref: "abc", Default: true},
			{Name: "feature", Ref: "def", Status: "ACTIVE"},
		},
		CurrentBranch: "main",
		Flags:         []string{"branching"},
		Sections: []workspace.Section{{
			Name:     "Team",
			Priority: &prio,
			Commands: []workspace.Command{{ID: "wiki", Name: "Team wiki", Route: "https://wiki.example.com"}},
		}},
		Docs: []workspace.Doc{{Title: "Auth quickstart", URL: "https://docs.example.com/auth"}},
	}
}

func sectionNames(sections []palette.Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

func commandNames(cmds []palette.Command) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func TestSetRegistersBuiltinSections(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	set.Sync(sampleContext())

	require.Equal(t,
		[]string{NavigateSection, "Team", BranchesSection, ProjectSection, DocsSection},
		sectionNames(reg.Visible("")))
	require.ElementsMatch(t, []string{SearchDocsPage, SwitchBranchPage}, reg.Pages())

	nav := reg.Commands(NavigateSection)
	require.Equal(t, "/project/abc/editor", nav[0].Route)
	require.NotContains(t, commandNames(nav), "GIS")
}

func TestNavigationDisabledWithoutProject(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	ctx := sampleContext()
	ctx.Project = workspace.Project{}
	set.Sync(ctx)
	require.Empty(t, reg.Commands(NavigateSection))

	ctx.Project.Ref = "xyz"
	ctx.Flags = append(ctx.Flags, "gis")
	set.Sync(ctx)
	nav := reg.Commands(NavigateSection)
	require.Contains(t, commandNames(nav), "GIS")
	require.Equal(t, "/project/xyz/editor", nav[0].Route)
}

func TestBranchesGatedByFlag(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	ctx := sampleContext()
	ctx.Flags = nil
	set.Sync(ctx)
	_, ok := reg.Page(SwitchBranchPage)
	require.False(t, ok)
	require.Empty(t, reg.Commands(BranchesSection))

	ctx.Flags = []string{"branching"}
	set.Sync(ctx)
	page, ok := reg.Page(SwitchBranchPage)
	require.True(t, ok)
	cp := page.(palette.CommandsPage)
	require.Len(t, cp.Sections, 1)
	cmds := cp.Sections[0].Commands
	require.Equal(t, []string{"main", "feature"}, commandNames(cmds))
	require.Equal(t, "current · default", cmds[0].Badge())
	require.Equal(t, "active", cmds[1].Badge())
	require.Equal(t, "/project/def", cmds[1].Route)

	ctrl := &fakeController{}
	reg.Commands(BranchesSection)[0].Action(ctrl)
	require.Equal(t, SwitchBranchPage, ctrl.page)
	require.False(t, ctrl.preserve)
}

func TestSyncWithUnchangedContextKeepsRegistrations(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	set.Sync(sampleContext())
	before := reg.Visible("")
	set.Sync(sampleContext())
	require.Equal(t, sectionNames(before), sectionNames(reg.Visible("")))
	require.Len(t, reg.Commands("Team"), 1)
}

func TestCustomSectionsFollowWorkspace(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	ctx := sampleContext()
	set.Sync(ctx)

	ctx.Sections = append(ctx.Sections, workspace.Section{
		Name:     "Ops",
		Commands: []workspace.Command{{ID: "pager", Name: "Pager", Route: "/ops/pager", Hidden: true}},
	})
	set.Sync(ctx)
	require.NotContains(t, sectionNames(reg.Visible("")), "Ops")
	require.Equal(t, []string{"Ops"}, sectionNames(reg.Visible("pager")))

	ctx.Sections = ctx.Sections[1:]
	set.Sync(ctx)
	require.Empty(t, reg.Commands("Team"))
	require.NotContains(t, sectionNames(reg.Visible("")), "Team")
}

func TestCopyProjectRef(t *testing.T) {
	reg := palette.NewRegistry()
	copier := &fakeCopier{}
	set := NewSet(reg, Deps{Copier: copier, DocsDebounce: -1})
	set.Sync(sampleContext())

	cmds := reg.Commands(ProjectSection)
	require.Equal(t, []string{"Copy project ref", "Open organization"}, commandNames(cmds))
	require.Equal(t, "/org/acme", cmds[1].Route)

	ctrl := &fakeController{open: true}
	require.Nil(t, cmds[0].Action(ctrl))
	require.Equal(t, []string{"abc"}, copier.copied)
	require.False(t, ctrl.open)

	copier.err = errors.New("no clipboard")
	ctrl.open = true
	cmd := cmds[0].Action(ctrl)
	require.NotNil(t, cmd)
	notice, ok := cmd().(palette.NoticeMsg)
	require.True(t, ok)
	require.ErrorContains(t, notice.Err, "no clipboard")
	require.True(t, ctrl.open)
}

func TestBuiltinCommandsAreHidden(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	set.Sync(Context{})
	require.Empty(t, reg.Visible(""))

	visible := reg.Visible("close")
	require.Len(t, visible, 1)
	ctrl := &fakeController{open: true}
	visible[0].Commands[0].Action(ctrl)
	require.False(t, ctrl.open)

	clear := reg.Visible("clear search")[0].Commands[0]
	ctrl.query = "clear search"
	clear.Action(ctrl)
	require.Equal(t, "", ctrl.query)
}

func TestUnmountRetractsEverything(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	set.Sync(sampleContext())
	set.Unmount()
	require.Empty(t, reg.Visible(""))
	require.Empty(t, reg.Visible("close"))
	require.Empty(t, reg.Pages())
}

func TestCustomSectionPriorityRemovedOnReload(t *testing.T) {
	reg := palette.NewRegistry()
	set := NewSet(reg, Deps{Copier: &fakeCopier{}, DocsDebounce: -1})
	set.Sync(sampleContext())
	require.Equal(t, "Team", sectionNames(reg.Visible(""))[1])

	ctx := sampleContext()
	ctx.Sections[0].Priority = nil
	set.Sync(ctx)
	require.Equal(t,
		[]string{NavigateSection, BranchesSection, ProjectSection, DocsSection, "Team"},
		sectionNames(reg.Visible("")))
}
