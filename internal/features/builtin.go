package features

import (
	"github.com/atomicstack/dashboard-palette/internal/palette"
	tea "github.com/charmbracelet/bubbletea"
)

const PaletteSection = "Palette"

// builtin carries commands that only show up when searched for.
type builtin struct {
	registry *palette.Registry
	reg      *palette.Registration
}

func newBuiltin(reg *palette.Registry) *builtin {
	return &builtin{registry: reg}
}

func (b *builtin) Sync(Context) {
	cmds := []palette.Command{
		{
			ID:            "close",
			Name:          "Close palette",
			DefaultHidden: true,
			Action: func(c palette.Controller) tea.Cmd {
				c.SetOpen(false)
				return nil
			},
		},
		{
			ID:            "clear",
			Name:          "Clear search",
			DefaultHidden: true,
			Action: func(c palette.Controller) tea.Cmd {
				c.SetQuery("")
				return nil
			},
		},
	}
	if b.reg == nil {
		b.reg = b.registry.RegisterCommands(PaletteSection, cmds, palette.Deps())
		return
	}
	b.reg.Update(cmds, palette.Deps())
}

func (b *builtin) Unmount() {
	b.reg.Unregister()
}
