package features

import (
	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
)

// custom registers the sections declared in the workspace file, one handle
// per section name.
type custom struct {
	registry *palette.Registry
	regs     map[string]*palette.Registration
}

func newCustom(reg *palette.Registry) *custom {
	return &custom{registry: reg, regs: make(map[string]*palette.Registration)}
}

func (c *custom) Sync(ctx Context) {
	seen := make(map[string]struct{}, len(ctx.Sections))
	for _, sec := range ctx.Sections {
		seen[sec.Name] = struct{}{}
		cmds := customCommands(sec.Commands)
		opts := []palette.Option{palette.Deps(sec)}
		if sec.Priority != nil {
			opts = append(opts, palette.WithPriority(*sec.Priority))
		}
		if reg, ok := c.regs[sec.Name]; ok {
			reg.Update(cmds, opts...)
			continue
		}
		c.regs[sec.Name] = c.registry.RegisterCommands(sec.Name, cmds, opts...)
	}
	for name, reg := range c.regs {
		if _, ok := seen[name]; !ok {
			reg.Unregister()
			delete(c.regs, name)
		}
	}
}

func (c *custom) Unmount() {
	for name, reg := range c.regs {
		reg.Unregister()
		delete(c.regs, name)
	}
}

func customCommands(entries []workspace.Command) []palette.Command {
	cmds := make([]palette.Command, 0, len(entries))
	for _, e := range entries {
		cmds = append(cmds, palette.Command{
			ID:            e.ID,
			Name:          e.Name,
			Value:         e.Value,
			Route:         e.Route,
			DefaultHidden: e.Hidden,
		})
	}
	return cmds
}
