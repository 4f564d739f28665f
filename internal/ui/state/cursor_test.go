package state

import (
	"testing"

	"github.com/atomicstack/dashboard-palette/internal/palette"
)

// newTestLevel builds a level with one section per argument; each section
// lists the commands named in its slice.
func newTestLevel(sections ...[]string) *Level {
	secs := make([]palette.Section, len(sections))
	for i, names := range sections {
		cmds := make([]palette.Command, len(names))
		for j, name := range names {
			cmds[j] = palette.Command{ID: name, Name: name}
		}
		secs[i] = palette.Section{Name: string(rune('A' + i)), Commands: cmds}
	}
	return NewLevel("", "commands", secs)
}

func selectedName(l *Level) string {
	cmd, ok := l.Selected()
	if !ok {
		return ""
	}
	return cmd.Name
}

func TestNewLevelSelectsFirstCommand(t *testing.T) {
	l := newTestLevel([]string{"a", "b"}, []string{"c"})
	if len(l.Rows) != 5 {
		t.Fatalf("expected 5 rows including headers, got %d", len(l.Rows))
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor on first command row, got %d", l.Cursor)
	}
	if selectedName(l) != "a" {
		t.Fatalf("expected a selected, got %q", selectedName(l))
	}
}

func TestMoveCursorSkipsHeadersAndWraps(t *testing.T) {
	l := newTestLevel([]string{"a", "b"}, []string{"c"})
	l.MoveCursorDown()
	l.MoveCursorDown()
	if selectedName(l) != "c" {
		t.Fatalf("expected c after crossing header, got %q", selectedName(l))
	}
	l.MoveCursorDown()
	if selectedName(l) != "a" {
		t.Fatalf("expected wrap to a, got %q", selectedName(l))
	}
	l.MoveCursorUp()
	if selectedName(l) != "c" {
		t.Fatalf("expected wrap back to c, got %q", selectedName(l))
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestLevel([]string{"a"}, []string{"b", "c"})
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if selectedName(l) != "c" {
		t.Fatalf("expected c, got %q", selectedName(l))
	}
	if !l.MoveCursorHome() {
		t.Fatalf("expected movement to start")
	}
	if selectedName(l) != "a" {
		t.Fatalf("expected a, got %q", selectedName(l))
	}

	empty := newTestLevel()
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != -1 {
		t.Fatalf("expected cursor -1 for empty level, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel([]string{"a", "b", "c", "d", "e"})
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on page down")
	}
	if selectedName(l) != "c" {
		t.Fatalf("expected c, got %q", selectedName(l))
	}
	l.MoveCursorPageDown(10)
	if selectedName(l) != "e" {
		t.Fatalf("expected e at end, got %q", selectedName(l))
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	l.MoveCursorPageUp(10)
	if selectedName(l) != "a" {
		t.Fatalf("expected page up to land on first command, got %q", selectedName(l))
	}
}

func TestEnsureCursorVisibleKeepsHeader(t *testing.T) {
	l := newTestLevel([]string{"a", "b"}, []string{"c", "d"})
	l.MoveCursorEnd()
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 4 {
		t.Fatalf("expected offset 4, got %d", l.ViewportOffset)
	}
	l.MoveCursorUp()
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected header of section B in view, got offset %d", l.ViewportOffset)
	}
	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}
}

func TestUpdateSectionsKeepsSelection(t *testing.T) {
	l := newTestLevel([]string{"a", "b", "c"})
	l.MoveCursorDown()
	l.UpdateSections([]palette.Section{
		{Name: "Z", Commands: []palette.Command{{ID: "z", Name: "z"}}},
		{Name: "A", Commands: []palette.Command{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}}},
	})
	if selectedName(l) != "b" {
		t.Fatalf("expected b to stay selected, got %q", selectedName(l))
	}
}
