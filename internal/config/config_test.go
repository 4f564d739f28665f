package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "workspace.toml", cfg.App.WorkspacePath)
	require.Equal(t, "open", cfg.App.RouteMode)
	require.Equal(t, 5, cfg.Logging.MaxSizeMB)
	require.False(t, cfg.App.List)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"DASHBOARD_PALETTE_WORKSPACE=/env/ws.toml",
		"DASHBOARD_PALETTE_ROUTE_MODE=copy",
		"DASHBOARD_PALETTE_WIDTH=100",
		"DASHBOARD_PALETTE_TRACE=true",
		"DASHBOARD_PALETTE_URL=https://env.example.com",
	}
	cfg, err := LoadArgs([]string{"--workspace", "/flag/ws.toml", "--page", "Switch branch", "--query", "main", "--width", "60"}, env)
	require.NoError(t, err)
	require.Equal(t, "/flag/ws.toml", cfg.App.WorkspacePath)
	require.Equal(t, "copy", cfg.App.RouteMode)
	require.Equal(t, 60, cfg.App.Width)
	require.True(t, cfg.Logging.Trace)
	require.Equal(t, "https://env.example.com", cfg.App.DashboardURL)
	require.Equal(t, "Switch branch", cfg.App.Page)
	require.Equal(t, "main", cfg.App.Query)
	require.Equal(t, "60", cfg.Flags["width"])
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DASHBOARD_PALETTE_WIDTH=wide", "DASHBOARD_PALETTE_FOOTER=maybe", "garbage"})
	require.NoError(t, err)
	require.Zero(t, cfg.App.Width)
	require.False(t, cfg.App.ShowFooter)
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	_, err := LoadArgs([]string{"--width", "-1"}, nil)
	require.ErrorContains(t, err, "width")

	_, err = LoadArgs([]string{"--log-max-size", "0"}, nil)
	require.ErrorContains(t, err, "log-max-size")

	_, err = LoadArgs([]string{"--nope"}, nil)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"--route-mode", "fax"}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "unknown route mode")

	cfg, err = LoadArgs([]string{"--workspace", " "}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "workspace")

	cfg, err = LoadArgs([]string{"--list", "--route-mode", "print"}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "--list")
}
