package state

import "github.com/atomicstack/dashboard-palette/internal/palette"

// Level holds the list state of one palette screen: the merged listing or a
// commands page. Rows are derived from Sections filtered by Filter.
type Level struct {
	ID             string
	Title          string
	Sections       []palette.Section
	Rows           []Row
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level showing the provided sections.
func NewLevel(id, title string, sections []palette.Section) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateSections(sections)
	return l
}

// UpdateSections swaps in a fresh set of sections, keeping the cursor on the
// same command when it is still listed.
func (l *Level) UpdateSections(sections []palette.Section) {
	prev, hadPrev := l.Selected()
	prevSection := l.selectedSection()
	prevOffset := l.ViewportOffset
	l.Sections = sections
	l.applyFilter()
	if hadPrev {
		if idx := IndexOf(l.Rows, prevSection, prev.ID); idx >= 0 {
			l.Cursor = idx
		}
	}
	if len(l.Rows) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Rows)-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}

// Selected returns the command under the cursor.
func (l *Level) Selected() (palette.Command, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) || l.Rows[l.Cursor].Header {
		return palette.Command{}, false
	}
	return l.Rows[l.Cursor].Command, true
}

func (l *Level) selectedSection() string {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return ""
	}
	return l.Rows[l.Cursor].Section
}
