package palette

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether cmd is listed for query. An empty query lists every
// command except DefaultHidden ones; otherwise the name or value must contain
// the query, compared with Unicode case folding. Surrounding whitespace in the
// query is part of the needle.
func Matches(cmd Command, query string) bool {
	q := fold(query)
	if q == "" {
		return !cmd.DefaultHidden
	}
	if strings.Contains(fold(cmd.Name), q) {
		return true
	}
	return cmd.Value != "" && strings.Contains(fold(cmd.Value), q)
}

// Filter keeps the commands matching query and drops sections left empty.
// Section order is preserved.
func Filter(sections []Section, query string) []Section {
	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		cmds := make([]Command, 0, len(sec.Commands))
		for _, cmd := range sec.Commands {
			if Matches(cmd, query) {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			continue
		}
		out = append(out, Section{Name: sec.Name, Commands: cmds, Meta: sec.Meta})
	}
	return out
}

func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}
