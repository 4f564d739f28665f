package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsSectionHeadersAndBreadcrumb(t *testing.T) {
	h, _ := newSampleHarness(t)
	lines := strings.Split(h.View(), "\n")
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "commands") {
		t.Fatalf("expected root breadcrumb first, got %q", lines[0])
	}
	if strings.Contains(lines[0], "→") {
		t.Fatalf("root breadcrumb should have a single segment, got %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "Navigate" {
		t.Fatalf("expected Navigate header, got %q", lines[1])
	}
}

func TestViewNoResults(t *testing.T) {
	h, _ := newSampleHarness(t)
	typeText(h, "zzzz")
	if !strings.Contains(h.View(), `No results for "zzzz"`) {
		t.Fatalf("expected empty state, got:\n%s", h.View())
	}
	press(h, tea.KeyEnter)
	if h.Quit() {
		t.Fatalf("enter with nothing selected should do nothing")
	}
}

func TestViewEmptyRegistry(t *testing.T) {
	h := NewHarness(NewModel(testOptions(&testutil.RecordingRouter{})))
	if !strings.Contains(h.View(), "(no commands)") {
		t.Fatalf("expected empty listing message:\n%s", h.View())
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	rec := &testutil.RecordingRouter{}
	opts := testOptions(rec)
	opts.Height = 8
	opts.Width = 40
	m := NewModel(opts)
	cmds := make([]palette.Command, 20)
	for i := range cmds {
		cmds[i] = palette.Command{ID: fmt.Sprintf("c%02d", i), Name: fmt.Sprintf("cmd-%02d", i), Route: "/x"}
	}
	m.Registry().RegisterCommands("Many", cmds)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 50})

	if m.width != 40 || m.height != 8 {
		t.Fatalf("fixed size should ignore resizes, got %dx%d", m.width, m.height)
	}
	visible := m.maxVisibleItems()
	if visible != 5 {
		t.Fatalf("expected 5 visible rows, got %d", visible)
	}
	for i := 0; i < 10; i++ {
		press(h, tea.KeyDown)
	}
	if got := selectedName(m); got != "cmd-10" {
		t.Fatalf("expected cmd-10 selected, got %q", got)
	}
	view := h.View()
	if !strings.Contains(view, "cmd-10") {
		t.Fatalf("selected row should be visible:\n%s", view)
	}
	if strings.Contains(view, "cmd-00") {
		t.Fatalf("scrolled-off rows should be hidden:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := len([]rune(line)); w > 40 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}

	press(h, tea.KeyPgUp)
	press(h, tea.KeyHome)
	if got := selectedName(m); got != "cmd-00" {
		t.Fatalf("expected home to select first command, got %q", got)
	}
	if !strings.Contains(h.View(), "Many") {
		t.Fatalf("expected section header back in view")
	}
}

func TestFooterShown(t *testing.T) {
	rec := &testutil.RecordingRouter{}
	opts := testOptions(rec)
	opts.ShowFooter = true
	opts.Workspace = sampleWorkspace(t)
	h := NewHarness(NewModel(opts))
	if !strings.Contains(h.View(), "esc back") {
		t.Fatalf("expected footer:\n%s", h.View())
	}
}

func TestBadgeRendered(t *testing.T) {
	rec := &testutil.RecordingRouter{}
	m := NewModel(testOptions(rec))
	m.Registry().RegisterCommands("Status", []palette.Command{{
		ID:    "s",
		Name:  "Service",
		Route: "/s",
		Badge: func() string { return "beta" },
		Icon:  func() string { return "*" },
	}})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 10})
	view := h.View()
	if !strings.Contains(view, "* Service") || !strings.Contains(view, "beta") {
		t.Fatalf("expected icon and badge, got:\n%s", view)
	}
}
