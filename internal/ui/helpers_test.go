package ui

import (
	"testing"

	"github.com/atomicstack/dashboard-palette/internal/testutil"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

func testOptions(rec *testutil.RecordingRouter) Options {
	return Options{
		StaticCursor: true,
		DocsDebounce: -1,
		Router:       rec,
		Copier:       &testutil.RecordingCopier{},
	}
}

func sampleWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws, err := workspace.Parse([]byte(testutil.SampleWorkspace))
	if err != nil {
		t.Fatalf("parse sample workspace: %v", err)
	}
	return &ws
}

func newSampleHarness(t *testing.T) (*Harness, *testutil.RecordingRouter) {
	t.Helper()
	rec := &testutil.RecordingRouter{}
	opts := testOptions(rec)
	opts.Workspace = sampleWorkspace(t)
	h := NewHarness(NewModel(opts))
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h, rec
}

func typeText(h *Harness, text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(h *Harness, key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

func selectedName(m *Model) string {
	if m.level == nil {
		return ""
	}
	cmd, ok := m.level.Selected()
	if !ok {
		return ""
	}
	return cmd.Name
}

func rowNames(m *Model) []string {
	if m.level == nil {
		return nil
	}
	names := make([]string, 0, len(m.level.Rows))
	for _, row := range m.level.Rows {
		if row.Header {
			continue
		}
		names = append(names, row.Command.Name)
	}
	return names
}

func containsRow(m *Model, name string) bool {
	for _, n := range rowNames(m) {
		if n == name {
			return true
		}
	}
	return false
}
