package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/dashboard-palette/internal/app"
	"github.com/atomicstack/dashboard-palette/internal/router"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath  string
	MaxSizeMB int
	Trace     bool
}

const (
	envWorkspace    = "DASHBOARD_PALETTE_WORKSPACE"
	envDashboardURL = "DASHBOARD_PALETTE_URL"
	envPage         = "DASHBOARD_PALETTE_PAGE"
	envRouteMode    = "DASHBOARD_PALETTE_ROUTE_MODE"
	envWidth        = "DASHBOARD_PALETTE_WIDTH"
	envHeight       = "DASHBOARD_PALETTE_HEIGHT"
	envShowFooter   = "DASHBOARD_PALETTE_FOOTER"
	envVerbose      = "DASHBOARD_PALETTE_VERBOSE"
	envTrace        = "DASHBOARD_PALETTE_TRACE"
	envLogFile      = "DASHBOARD_PALETTE_LOG_FILE"
	envLogMaxSize   = "DASHBOARD_PALETTE_LOG_MAX_SIZE"

	defaultWorkspace = "workspace.toml"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("dashboard-palette", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	workspacePath := fs.String("workspace", envOrDefault(env, envWorkspace, defaultWorkspace), "path to the workspace file")
	dashboardURL := fs.String("dashboard-url", envOrDefault(env, envDashboardURL, ""), "dashboard base URL used when the workspace does not set one")
	page := fs.String("page", envOrDefault(env, envPage, ""), "open the palette on this page")
	query := fs.String("query", "", "initial search text")
	routeMode := fs.String("route-mode", envOrDefault(env, envRouteMode, string(router.ModeOpen)), "how routes are delivered: open, copy or print")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logMaxSize := fs.Int("log-max-size", envOrInt(env, envLogMaxSize, 5), "rotate the log file after this many megabytes")
	list := fs.Bool("list", false, "print the visible commands and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *logMaxSize <= 0 {
		return Config{}, fmt.Errorf("log-max-size must be > 0 (got %d)", *logMaxSize)
	}

	cfg := Config{
		App: app.Config{
			WorkspacePath: *workspacePath,
			DashboardURL:  *dashboardURL,
			Page:          *page,
			Query:         *query,
			RouteMode:     *routeMode,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			List:          *list,
		},
		Logging: Logging{
			FilePath:  *logFile,
			MaxSizeMB: *logMaxSize,
			Trace:     *trace,
		},
		Flags: map[string]string{
			"workspace":    *workspacePath,
			"dashboardURL": *dashboardURL,
			"page":         *page,
			"query":        *query,
			"routeMode":    *routeMode,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
			"logMaxSize":   strconv.Itoa(*logMaxSize),
			"list":         strconv.FormatBool(*list),
		},
		Args: append([]string(nil), fs.Args()...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that parse fine but cannot be used.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.WorkspacePath) == "" {
		return fmt.Errorf("workspace path is required")
	}
	if _, err := router.ParseMode(cfg.App.RouteMode); err != nil {
		return err
	}
	if cfg.App.List && cfg.App.RouteMode != "" && cfg.App.RouteMode != string(router.ModeOpen) {
		return fmt.Errorf("--list does not deliver routes; drop --route-mode")
	}
	return nil
}
