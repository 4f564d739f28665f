package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/dashboard-palette/internal/backend"
	"github.com/atomicstack/dashboard-palette/internal/data/dispatcher"
	"github.com/atomicstack/dashboard-palette/internal/features"
	"github.com/atomicstack/dashboard-palette/internal/format/table"
	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/router"
	"github.com/atomicstack/dashboard-palette/internal/state"
	"github.com/atomicstack/dashboard-palette/internal/ui"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	WorkspacePath string
	DashboardURL  string
	Page          string
	Query         string
	RouteMode     string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	List          bool
}

// Run bootstraps and executes the Bubble Tea program. Routes collected in
// print mode are written to stdout once the palette has closed.
func Run(cfg Config) error {
	if cfg.List {
		return List(cfg, os.Stdout)
	}
	mode, err := router.ParseMode(cfg.RouteMode)
	if err != nil {
		return err
	}
	watcher, err := backend.NewWatcher(cfg.WorkspacePath, reloadInterval)
	if err != nil {
		return fmt.Errorf("watch workspace: %w", err)
	}
	defer watcher.Stop()

	r := router.New(mode)
	model := ui.NewModel(ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		Watcher:      watcher,
		Router:       r,
		DashboardURL: cfg.DashboardURL,
		Page:         cfg.Page,
		Query:        cfg.Query,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if p, ok := r.(*router.Printer); ok {
		for _, url := range p.URLs() {
			fmt.Fprintln(os.Stdout, url)
		}
	}
	return err
}

// List writes the commands the palette would show for cfg.Query as a table
// of section, name and target. With cfg.Page set the page's commands are
// listed instead of the merged listing.
func List(cfg Config, w io.Writer) error {
	ws, err := workspace.Load(cfg.WorkspacePath)
	if err != nil {
		return err
	}
	project := state.NewProjectStore()
	branches := state.NewBranchStore()
	flags := state.NewFlagStore()
	catalog := state.NewCatalogStore()
	dispatcher.New(project, branches, flags, catalog, cfg.DashboardURL).Apply(ws)

	registry := palette.NewRegistry()
	set := features.NewSet(registry, features.Deps{})
	set.Sync(features.Snapshot(project, branches, flags, catalog))
	defer set.Unmount()

	sections := registry.Visible(cfg.Query)
	if cfg.Page != "" {
		page, ok := registry.Page(cfg.Page)
		if !ok {
			return fmt.Errorf("unknown page %q", cfg.Page)
		}
		commands, ok := page.(palette.CommandsPage)
		if !ok {
			return fmt.Errorf("page %q is interactive and has no command list", cfg.Page)
		}
		sections = palette.Filter(palette.OrderSections(commands.Sections), cfg.Query)
	}

	rows := make([][]string, 0, 16)
	for _, sec := range sections {
		for _, cmd := range sec.Commands {
			rows = append(rows, []string{sec.Name, cmd.Name, target(project.DashboardURL(), cmd)})
		}
	}
	for _, line := range table.Format(rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func target(base string, cmd palette.Command) string {
	if cmd.Route == "" {
		return "(action)"
	}
	url, err := router.Resolve(base, cmd.Route)
	if err != nil {
		return cmd.Route
	}
	return url
}
