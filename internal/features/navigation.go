package features

import "github.com/atomicstack/dashboard-palette/internal/palette"

const (
	NavigateSection = "Navigate"
	gisFlag         = "gis"
)

type navigation struct {
	registry *palette.Registry
	reg      *palette.Registration
}

func newNavigation(reg *palette.Registry) *navigation {
	return &navigation{registry: reg}
}

func (n *navigation) Sync(ctx Context) {
	ref := ctx.Project.Ref
	gis := ctx.Flag(gisFlag)
	cmds := navigationCommands(ref, gis)
	opts := []palette.Option{
		palette.Enabled(ref != ""),
		palette.Deps(ref, gis),
		palette.WithPriority(1),
	}
	if n.reg == nil {
		n.reg = n.registry.RegisterCommands(NavigateSection, cmds, opts...)
		return
	}
	n.reg.Update(cmds, opts...)
}

func (n *navigation) Unmount() {
	n.reg.Unregister()
}

func navigationCommands(ref string, gis bool) []palette.Command {
	if ref == "" {
		return nil
	}
	cmds := []palette.Command{
		{ID: "nav-editor", Name: "Table Editor", Route: projectRoute(ref, "/editor"), Icon: glyph("▦")},
		{ID: "nav-sql", Name: "SQL Editor", Route: projectRoute(ref, "/sql/new"), Icon: glyph("›")},
		{ID: "nav-database", Name: "Database", Value: "Database tables schemas", Route: projectRoute(ref, "/database/tables"), Icon: glyph("◫")},
		{ID: "nav-auth", Name: "Authentication", Value: "Authentication users", Route: projectRoute(ref, "/auth/users"), Icon: glyph("◉")},
		{ID: "nav-storage", Name: "Storage", Value: "Storage buckets", Route: projectRoute(ref, "/storage/buckets"), Icon: glyph("▤")},
		{ID: "nav-functions", Name: "Edge Functions", Route: projectRoute(ref, "/functions"), Icon: glyph("λ")},
		{ID: "nav-realtime", Name: "Realtime", Value: "Realtime inspector", Route: projectRoute(ref, "/realtime/inspector"), Icon: glyph("↯")},
		{ID: "nav-logs", Name: "Logs", Value: "Logs explorer", Route: projectRoute(ref, "/logs/explorer"), Icon: glyph("≡")},
	}
	if gis {
		cmds = append(cmds, palette.Command{ID: "nav-gis", Name: "GIS", Value: "GIS maps geospatial", Route: projectRoute(ref, "/gis"), Icon: glyph("◍")})
	}
	return append(cmds,
		palette.Command{ID: "nav-advisors", Name: "Advisors", Value: "Security performance advisors", Route: projectRoute(ref, "/advisors/security"), Icon: glyph("!")},
		palette.Command{ID: "nav-reports", Name: "Reports", Route: projectRoute(ref, "/reports"), Icon: glyph("▲")},
		palette.Command{ID: "nav-api", Name: "API Docs", Route: projectRoute(ref, "/api"), Icon: glyph("{}")},
		palette.Command{ID: "nav-settings", Name: "Project Settings", Value: "Settings general", Route: projectRoute(ref, "/settings/general"), Icon: glyph("⚙")},
	)
}
