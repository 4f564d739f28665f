package features

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/truncate"
)

const (
	DocsSection    = "Docs"
	SearchDocsPage = "Search the docs"

	defaultDocsDebounce = 150 * time.Millisecond
	maxDocResults       = 20
)

type docs struct {
	registry *palette.Registry
	debounce time.Duration
	reg      *palette.Registration
	page     *palette.PageRegistration
}

func newDocs(reg *palette.Registry, debounce time.Duration) *docs {
	switch {
	case debounce == 0:
		debounce = defaultDocsDebounce
	case debounce < 0:
		debounce = 0
	}
	return &docs{registry: reg, debounce: debounce}
}

func (d *docs) Sync(ctx Context) {
	index := append([]workspace.Doc(nil), ctx.Docs...)
	enabled := len(index) > 0
	deps := palette.Deps(enabled, index)
	cmds := []palette.Command{{
		ID:    "search-docs",
		Name:  "Search the docs",
		Value: "Search the docs documentation guides help",
		Icon:  glyph("?"),
		Action: func(c palette.Controller) tea.Cmd {
			c.SetPage(SearchDocsPage, true)
			return nil
		},
	}}
	debounce := d.debounce
	page := palette.ComponentPage{New: func(palette.Controller) palette.Component {
		return NewDocSearch(index, debounce)
	}}
	if d.reg == nil {
		d.reg = d.registry.RegisterCommands(DocsSection, cmds, palette.Enabled(enabled), deps)
		d.page = d.registry.RegisterPage(SearchDocsPage, page, palette.Enabled(enabled), deps)
		return
	}
	d.reg.Update(cmds, palette.Enabled(enabled), deps)
	d.page.Update(page, palette.Enabled(enabled), deps)
}

func (d *docs) Unmount() {
	d.reg.Unregister()
	d.page.Unregister()
}

type docSearchTickMsg struct {
	seq int
}

type docSearchResultMsg struct {
	seq     int
	results []workspace.Doc
	err     error
}

// DocSearch is the component page searching the docs index. Queries are
// debounced; each search runs in its own cancellable command and results from
// superseded or unmounted searches are dropped.
type DocSearch struct {
	index    []workspace.Doc
	debounce time.Duration

	query     string
	seq       int
	searching bool
	results   []workspace.Doc
	cursor    int
	err       error
	width     int
	cancel    context.CancelFunc
	closed    bool
}

// NewDocSearch creates a search over index. A zero debounce searches on
// every query change without waiting.
func NewDocSearch(index []workspace.Doc, debounce time.Duration) *DocSearch {
	return &DocSearch{index: index, debounce: debounce}
}

func (s *DocSearch) Init() tea.Cmd {
	return nil
}

func (s *DocSearch) Update(msg tea.Msg) (palette.Component, tea.Cmd) {
	if s.closed {
		return s, nil
	}
	switch msg := msg.(type) {
	case palette.QueryMsg:
		return s, s.setQuery(msg.Query)
	case docSearchTickMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		return s, s.start()
	case docSearchResultMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.searching = false
		s.err = msg.err
		s.results = msg.results
		s.cursor = 0
		return s, nil
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *DocSearch) setQuery(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == s.query && (s.searching || s.results != nil) {
		return nil
	}
	s.query = query
	s.seq++
	s.stop()
	if query == "" {
		s.searching = false
		s.results = nil
		s.err = nil
		return nil
	}
	s.searching = true
	if s.debounce <= 0 {
		return s.start()
	}
	seq := s.seq
	return tea.Tick(s.debounce, func(time.Time) tea.Msg {
		return docSearchTickMsg{seq: seq}
	})
}

func (s *DocSearch) start() tea.Cmd {
	s.stop()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	seq, query, index := s.seq, s.query, s.index
	return func() tea.Msg {
		results, err := SearchDocs(ctx, index, query)
		return docSearchResultMsg{seq: seq, results: results, err: err}
	}
}

func (s *DocSearch) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Unmount cancels any in-flight search.
func (s *DocSearch) Unmount() {
	s.closed = true
	s.seq++
	s.stop()
}

func (s *DocSearch) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "ctrl+n":
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < 0 || s.cursor >= len(s.results) {
			return nil
		}
		doc := s.results[s.cursor]
		return func() tea.Msg {
			return palette.RouteMsg{ID: "doc:" + doc.Title, Route: doc.URL}
		}
	}
	return nil
}

func (s *DocSearch) View() string {
	switch {
	case s.query == "":
		return "Type to search the docs"
	case s.err != nil:
		return fmt.Sprintf("Search failed: %v", s.err)
	case s.searching:
		return fmt.Sprintf("Searching for %q…", s.query)
	case len(s.results) == 0:
		return fmt.Sprintf("No docs match %q", s.query)
	}
	lines := make([]string, 0, len(s.results))
	for i, doc := range s.results {
		marker := "  "
		if i == s.cursor {
			marker = "▌ "
		}
		line := marker + doc.Title
		if doc.Summary != "" {
			line += "  " + doc.Summary
		}
		if s.width > 1 {
			line = truncate.StringWithTail(line, uint(s.width-1), "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Selected returns the highlighted result.
func (s *DocSearch) Selected() (workspace.Doc, bool) {
	if s.cursor < 0 || s.cursor >= len(s.results) {
		return workspace.Doc{}, false
	}
	return s.results[s.cursor], true
}

// SearchDocs ranks the index against query, best matches first. Titles are
// matched fuzzily; summaries only by substring.
func SearchDocs(ctx context.Context, index []workspace.Doc, query string) ([]workspace.Doc, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	titles := make([]string, len(index))
	for i, doc := range index {
		titles[i] = doc.Title
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type hit struct {
		idx   int
		score int
	}
	hits := make(map[int]hit)
	for _, rank := range fuzzy.RankFindNormalizedFold(query, titles) {
		hits[rank.OriginalIndex] = hit{idx: rank.OriginalIndex, score: rank.Distance}
	}
	lower := strings.ToLower(query)
	for i, doc := range index {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if _, ok := hits[i]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(doc.Summary), lower) {
			hits[i] = hit{idx: i, score: 1 << 16}
		}
	}
	ordered := make([]hit, 0, len(hits))
	for _, h := range hits {
		ordered = append(ordered, h)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score < ordered[j].score
		}
		return ordered[i].idx < ordered[j].idx
	})
	if len(ordered) > maxDocResults {
		ordered = ordered[:maxDocResults]
	}
	out := make([]workspace.Doc, len(ordered))
	for i, h := range ordered {
		out[i] = index[h.idx]
	}
	return out, nil
}

var _ palette.Unmounter = (*DocSearch)(nil)
