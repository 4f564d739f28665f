package state

import "github.com/atomicstack/dashboard-palette/internal/palette"

// Row is one line of the palette list: either a section header or a command.
type Row struct {
	Section string
	Command palette.Command
	Header  bool
}

// Flatten lays sections out as rows, each section preceded by its header.
// Sections without commands produce no rows.
func Flatten(sections []palette.Section) []Row {
	n := 0
	for _, sec := range sections {
		if len(sec.Commands) > 0 {
			n += len(sec.Commands) + 1
		}
	}
	rows := make([]Row, 0, n)
	for _, sec := range sections {
		if len(sec.Commands) == 0 {
			continue
		}
		rows = append(rows, Row{Section: sec.Name, Header: true})
		for _, cmd := range sec.Commands {
			rows = append(rows, Row{Section: sec.Name, Command: cmd})
		}
	}
	return rows
}

// CommandCount returns the number of non-header rows.
func CommandCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if !r.Header {
			n++
		}
	}
	return n
}

// IndexOf returns the row holding the command id in section, or -1.
func IndexOf(rows []Row, section, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range rows {
		if !r.Header && r.Section == section && r.Command.ID == id {
			return i
		}
	}
	return -1
}
