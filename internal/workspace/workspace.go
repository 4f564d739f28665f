// Package workspace reads the workspace file describing the project the
// palette operates on: dashboard location, project and organization, feature
// flags, branches, the docs index and user-defined command sections.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Workspace is the decoded workspace file.
type Workspace struct {
	DashboardURL string          `toml:"dashboard_url"`
	Project      Project         `toml:"project"`
	Organization Organization    `toml:"organization"`
	Flags        map[string]bool `toml:"flags"`
	Branches     []Branch        `toml:"branches"`
	Docs         []Doc           `toml:"docs"`
	Sections     []Section       `toml:"sections"`
}

type Project struct {
	Ref    string `toml:"ref"`
	Name   string `toml:"name"`
	Region string `toml:"region"`
}

type Organization struct {
	Slug string `toml:"slug"`
	Name string `toml:"name"`
}

type Branch struct {
	Name    string `toml:"name"`
	Ref     string `toml:"ref"`
	Default bool   `toml:"default"`
	Status  string `toml:"status"`
}

type Doc struct {
	Title   string `toml:"title"`
	URL     string `toml:"url"`
	Summary string `toml:"summary"`
}

// Section is a user-defined command section.
type Section struct {
	Name     string    `toml:"name"`
	Priority *int      `toml:"priority"`
	Commands []Command `toml:"commands"`
}

type Command struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Value  string `toml:"value"`
	Route  string `toml:"route"`
	Hidden bool   `toml:"hidden"`
}

// Load reads and validates the workspace file at path.
func Load(path string) (Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Workspace{}, fmt.Errorf("read workspace %s: %w", path, err)
	}
	ws, err := Parse(data)
	if err != nil {
		return Workspace{}, fmt.Errorf("workspace %s: %w", path, err)
	}
	return ws, nil
}

// Parse decodes and validates workspace TOML. Unknown keys are rejected so
// typos do not silently drop commands.
func Parse(data []byte) (Workspace, error) {
	var ws Workspace
	md, err := toml.Decode(string(data), &ws)
	if err != nil {
		return Workspace{}, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return Workspace{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := ws.Validate(); err != nil {
		return Workspace{}, err
	}
	return ws, nil
}

// Validate checks required fields and uniqueness constraints.
func (w Workspace) Validate() error {
	var errs []error
	seenBranch := make(map[string]struct{}, len(w.Branches))
	for i, b := range w.Branches {
		if strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.Ref) == "" {
			errs = append(errs, fmt.Errorf("branches[%d]: name and ref are required", i))
			continue
		}
		if _, dup := seenBranch[b.Name]; dup {
			errs = append(errs, fmt.Errorf("branches[%d]: duplicate branch %q", i, b.Name))
		}
		seenBranch[b.Name] = struct{}{}
	}
	for i, d := range w.Docs {
		if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.URL) == "" {
			errs = append(errs, fmt.Errorf("docs[%d]: title and url are required", i))
		}
	}
	seenSection := make(map[string]struct{}, len(w.Sections))
	for i, s := range w.Sections {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("sections[%d]: name is required", i))
			continue
		}
		if _, dup := seenSection[s.Name]; dup {
			errs = append(errs, fmt.Errorf("sections[%d]: duplicate section %q", i, s.Name))
		}
		seenSection[s.Name] = struct{}{}
		for j, c := range s.Commands {
			if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
				errs = append(errs, fmt.Errorf("sections[%d].commands[%d]: id and name are required", i, j))
			}
			if strings.TrimSpace(c.Route) == "" {
				errs = append(errs, fmt.Errorf("sections[%d].commands[%d]: route is required", i, j))
			}
		}
	}
	return errors.Join(errs...)
}

// Flag reports whether the named feature flag is on.
func (w Workspace) Flag(name string) bool {
	return w.Flags[name]
}

// DefaultBranch returns the branch marked default, if any.
func (w Workspace) DefaultBranch() (Branch, bool) {
	for _, b := range w.Branches {
		if b.Default {
			return b, true
		}
	}
	return Branch{}, false
}
