package ui

import (
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/theme"
	uistate "github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth   = 80
	itemGap        = 2
	markerWidth    = 2
	itemIndicator  = "▌ "
	noMatchesLabel = "(no matches)"
	loadingLabel   = "loading…"
	leftMarker     = "<"
	rightMarker    = ">"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View renders the launcher. Horizontal mode draws the input and the current
// page of matches on one line; vertical mode lists matches below the input.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var lines []string
	if m.opts.Lines > 0 {
		lines = m.viewVertical()
	} else {
		lines = []string{m.viewHorizontal()}
	}
	if m.errMsg != "" {
		lines = append(lines, renderLine(styledLine{text: truncateText(m.errMsg, m.viewWidth()), style: styles.Error}))
	}
	if m.opts.Bottom && m.height > len(lines) {
		pad := make([]string, m.height-len(lines))
		lines = append(pad, lines...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// inputLine renders the prompt, query and caret.
func (m *Model) inputLine() string {
	var b strings.Builder
	if m.opts.Prompt != "" {
		b.WriteString(renderLine(styledLine{text: " " + m.opts.Prompt + " ", style: styles.Prompt}))
		b.WriteString(" ")
	}
	b.WriteString(renderLine(styledLine{text: m.session.Query, style: styles.Input}))
	b.WriteString(m.caret.View())
	return b.String()
}

func (m *Model) inputWidth() int {
	w := lipgloss.Width(m.session.Query) + 1
	if m.opts.Prompt != "" {
		w += lipgloss.Width(m.opts.Prompt) + 3
	}
	if third := m.viewWidth() / 3; w < third {
		w = third
	}
	return w
}

func (m *Model) viewHorizontal() string {
	input := m.inputLine()
	width := m.viewWidth()
	inputWidth := m.inputWidth()
	if pad := inputWidth - lipgloss.Width(input); pad > 0 {
		input += strings.Repeat(" ", pad)
	}
	if status := m.statusLabel(); status != "" {
		return input + renderLine(styledLine{text: status, style: m.statusStyle()})
	}

	matches := m.session.Matches()
	avail := width - inputWidth - 2*markerWidth
	if avail < 1 {
		avail = 1
	}
	widths := make([]int, len(matches))
	for i, item := range matches {
		widths[i] = lipgloss.Width(item)
	}
	pages := uistate.Pages(widths, avail, itemGap)
	page := uistate.PageOf(pages, m.session.Cursor)
	current := pages[page]

	var b strings.Builder
	b.WriteString(input)
	if page > 0 {
		b.WriteString(renderLine(styledLine{text: leftMarker, style: styles.More}))
		b.WriteString(" ")
	} else {
		b.WriteString(strings.Repeat(" ", markerWidth))
	}
	for i := current.Start; i < current.End; i++ {
		if i > current.Start {
			b.WriteString(strings.Repeat(" ", itemGap))
		}
		style := styles.Item
		if i == m.session.Cursor {
			style = styles.SelectedItem
		}
		b.WriteString(renderLine(styledLine{text: truncateText(matches[i], avail), style: style}))
	}
	if page < len(pages)-1 {
		b.WriteString(" ")
		b.WriteString(renderLine(styledLine{text: rightMarker, style: styles.More}))
	}
	return b.String()
}

func (m *Model) viewVertical() []string {
	width := m.viewWidth()
	lines := []string{m.inputLine()}
	if status := m.statusLabel(); status != "" {
		return append(lines, renderLine(styledLine{text: truncateText(status, width), style: m.statusStyle()}))
	}
	matches := m.session.Matches()
	visible := m.maxVisibleItems()
	end := m.offset + visible
	if end > len(matches) {
		end = len(matches)
	}
	for i := m.offset; i < end; i++ {
		label := truncateText(matches[i], width-lipgloss.Width(itemIndicator))
		indicator, style := styles.ItemIndicator, styles.Item
		if i == m.session.Cursor {
			indicator, style = styles.SelectedItemIndicator, styles.SelectedItem
		}
		lines = append(lines, renderLine(styledLine{text: itemIndicator, style: indicator})+renderLine(styledLine{text: label, style: style}))
	}
	return lines
}

func (m *Model) statusLabel() string {
	switch {
	case m.loading:
		return loadingLabel
	case m.session.Count() == 0:
		return noMatchesLabel
	}
	return ""
}

func (m *Model) statusStyle() *lipgloss.Style {
	if m.loading {
		return styles.Loading
	}
	return styles.Info
}

// maxVisibleItems is the number of rows available to candidates in vertical
// mode: the configured line count, capped by the terminal height.
func (m *Model) maxVisibleItems() int {
	visible := m.opts.Lines
	if m.height > 0 {
		used := 1
		if m.errMsg != "" {
			used++
		}
		if remain := m.height - used; remain < visible {
			visible = remain
		}
	}
	if visible < 1 {
		return 1
	}
	return visible
}

// syncViewport keeps the selected candidate inside the drawn window.
func (m *Model) syncViewport() {
	if m.opts.Lines <= 0 {
		m.offset = 0
		return
	}
	prev := m.offset
	m.offset = uistate.VisibleOffset(m.session.Cursor, m.offset, m.session.Count(), m.maxVisibleItems())
	if prev != m.offset {
		events.UI.Cursor(m.session.Cursor, m.session.Count())
	}
}

func renderLine(line styledLine) string {
	return theme.Render(line.style, line.text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
