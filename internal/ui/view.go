package ui

import (
	"fmt"
	"strings"
	"time"

	uistate "github.com/atomicstack/dashboard-palette/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const footerText = "↑/↓ move  enter select  esc back  ctrl+u clear  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if m.component != nil {
		for _, line := range strings.Split(m.component.View(), "\n") {
			lines = append(lines, styledLine{text: line, raw: true})
		}
	} else if current := m.currentLevel(); current != nil {
		lines = append(lines, m.listLines(current)...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if warn, msg := m.hasBackendIssue(); warn {
		statusLine = styledLine{text: fmt.Sprintf("Workspace: %s", msg), style: styles.Error}
	}
	promptText, _ := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText, raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) listLines(current *level) []styledLine {
	m.syncViewport(current)
	if len(current.Rows) == 0 {
		msg := "(no commands)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No results for %q", current.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	rows := current.Rows
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(rows) > maxItems {
		start = current.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(rows) {
			start = len(rows) - maxItems
			if start < 0 {
				start = 0
			}
			current.ViewportOffset = start
		}
		rows = rows[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(rows))
	for i, row := range rows {
		if row.Header {
			lines = append(lines, styledLine{text: row.Section, style: styles.SectionHeader})
			continue
		}
		lines = append(lines, m.buildItemLine(row, start+i, current, m.width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a command row.
// width is the target column width; when > 0 the text is padded so that
// the selected item's background spans the full container.
func (m *Model) buildItemLine(row uistate.Row, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	badgeStyle := styles.Badge
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
		badgeStyle = styles.SelectedBadge
	}
	cmd := row.Command
	icon := "  "
	if cmd.Icon != nil {
		if glyph := strings.TrimSpace(cmd.Icon()); glyph != "" {
			icon = glyph + " "
		}
	}
	label := indicator + " " + icon + cmd.Name
	badge := ""
	if cmd.Badge != nil {
		badge = strings.TrimSpace(cmd.Badge())
	}
	if badge == "" {
		text := label
		if width > 0 {
			if pad := width - lipgloss.Width(text); pad > 0 {
				text += strings.Repeat(" ", pad)
			}
		}
		return styledLine{
			text:          text,
			style:         lineStyle,
			prefixStyle:   indicatorStyle,
			highlightFrom: 1, // just the ▌ character
		}
	}
	gap := 2
	if width > 0 {
		if avail := width - lipgloss.Width(label) - lipgloss.Width(badge); avail > gap {
			gap = avail
		}
	}
	text := render(indicatorStyle, indicator) +
		render(lineStyle, " "+icon+cmd.Name+strings.Repeat(" ", gap)) +
		render(badgeStyle, badge)
	return styledLine{text: text, raw: true}
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	segments := []string{defaultRootTitle}
	if page := strings.TrimSpace(m.nav.Page()); page != "" {
		segments = append(segments, strings.ToLower(page))
	}
	return segments
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return m.updateComponent(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

