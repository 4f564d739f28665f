package features

import (
	"strings"

	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	BranchesSection  = "Branches"
	SwitchBranchPage = "Switch branch"
	branchingFlag    = "branching"
)

type branches struct {
	registry *palette.Registry
	reg      *palette.Registration
	page     *palette.PageRegistration
}

func newBranches(reg *palette.Registry) *branches {
	return &branches{registry: reg}
}

func (b *branches) Sync(ctx Context) {
	enabled := ctx.Flag(branchingFlag) && len(ctx.Branches) > 0
	deps := palette.Deps(enabled, ctx.Branches, ctx.CurrentBranch)

	cmds := []palette.Command{{
		ID:    "switch-branch",
		Name:  "Switch branch",
		Value: "Switch branch preview",
		Icon:  glyph("⑂"),
		Action: func(c palette.Controller) tea.Cmd {
			c.SetPage(SwitchBranchPage, false)
			return nil
		},
	}}
	page := palette.CommandsPage{Sections: []palette.Section{{
		Name:     BranchesSection,
		Commands: branchCommands(ctx.Branches, ctx.CurrentBranch),
	}}}

	if b.reg == nil {
		b.reg = b.registry.RegisterCommands(BranchesSection, cmds,
			palette.Enabled(enabled), deps, palette.OrderSection(palette.OrderFirst))
		b.page = b.registry.RegisterPage(SwitchBranchPage, page, palette.Enabled(enabled), deps)
		return
	}
	b.reg.Update(cmds, palette.Enabled(enabled), deps)
	b.page.Update(page, palette.Enabled(enabled), deps)
}

func (b *branches) Unmount() {
	b.reg.Unregister()
	b.page.Unregister()
}

func branchCommands(entries []workspace.Branch, current string) []palette.Command {
	cmds := make([]palette.Command, 0, len(entries))
	for _, br := range entries {
		var tags []string
		if br.Name == current {
			tags = append(tags, "current")
		}
		if br.Default {
			tags = append(tags, "default")
		}
		if br.Status != "" {
			tags = append(tags, strings.ToLower(br.Status))
		}
		cmd := palette.Command{
			ID:    "branch-" + br.Name,
			Name:  br.Name,
			Value: br.Name + " " + br.Ref,
			Route: projectRoute(br.Ref, ""),
		}
		if len(tags) > 0 {
			cmd.Badge = glyph(strings.Join(tags, " · "))
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
