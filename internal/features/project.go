package features

import (
	"fmt"

	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

const ProjectSection = "Project"

type project struct {
	registry *palette.Registry
	copier   router.Copier
	reg      *palette.Registration
}

func newProject(reg *palette.Registry, copier router.Copier) *project {
	return &project{registry: reg, copier: copier}
}

func (p *project) Sync(ctx Context) {
	ref := ctx.Project.Ref
	slug := ctx.Organization.Slug
	var cmds []palette.Command
	if ref != "" {
		cmds = append(cmds, palette.Command{
			ID:     "copy-ref",
			Name:   "Copy project ref",
			Value:  "Copy project ref " + ref,
			Icon:   glyph("⧉"),
			Action: p.copyAction(ref),
		})
	}
	if slug != "" {
		name := ctx.Organization.Name
		if name == "" {
			name = slug
		}
		cmds = append(cmds, palette.Command{
			ID:    "open-org",
			Name:  "Open organization",
			Value: "Organization " + name,
			Route: "/org/" + slug,
			Icon:  glyph("⌂"),
		})
	}
	opts := []palette.Option{palette.Enabled(len(cmds) > 0), palette.Deps(ref, slug, ctx.Organization.Name)}
	if p.reg == nil {
		p.reg = p.registry.RegisterCommands(ProjectSection, cmds, opts...)
		return
	}
	p.reg.Update(cmds, opts...)
}

func (p *project) Unmount() {
	p.reg.Unregister()
}

// copyAction copies the ref and closes the palette. A failed copy keeps the
// palette open and reports the error instead.
func (p *project) copyAction(ref string) palette.Action {
	return func(c palette.Controller) tea.Cmd {
		if err := p.copier.Copy(ref); err != nil {
			return func() tea.Msg {
				return palette.NoticeMsg{Err: fmt.Errorf("copy project ref: %w", err)}
			}
		}
		c.SetOpen(false)
		return nil
	}
}
