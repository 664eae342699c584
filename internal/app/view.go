package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/skiffsh/skiff/internal/bookmarks"
	"github.com/skiffsh/skiff/internal/layout"
	"github.com/skiffsh/skiff/internal/shell"
	"github.com/skiffsh/skiff/internal/theme"
)

// sidebarWidth is the total width of the bookmark sidebar, border
// included.
const sidebarWidth = 25

// View renders the sidebar next to either the terminal pane or the
// directory navigator.
func (m *Model) View() string {
	innerH := m.height - 2
	mainW := m.width - sidebarWidth - 2
	if mainW < 1 || innerH < 2 {
		return ""
	}

	sidebar := m.paneStyle(m.mode == modePicking).
		Width(sidebarWidth - 2).Height(innerH).
		Render(m.renderSidebar(sidebarWidth-2, innerH))

	var main string
	if m.mode == modeNavigating {
		main = m.paneStyle(true).Width(mainW).Height(innerH).
			Render(m.renderNavigator(mainW, innerH))
	} else {
		main = m.paneStyle(m.mode == modeNormal).Width(mainW).Height(innerH).
			Render(m.renderTerminal(mainW, innerH))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

func (m *Model) paneStyle(active bool) lipgloss.Style {
	border := m.theme.BorderDim
	if active {
		border = m.theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

func (m *Model) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
}

func (m *Model) textStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.TextFg)
}

func (m *Model) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.MutedFg)
}

func (m *Model) selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(m.theme.Accent).
		Foreground(m.theme.AccentFg)
}

// renderTerminal lays out the scrollback and the live input line. The
// frame comes from one wrapping pass, so the drawn rows and the cursor
// cell always agree.
func (m *Model) renderTerminal(innerW, innerH int) string {
	prompt := m.promptText()
	promptLen := len([]rune(prompt))
	inputLine := prompt + string(m.input)
	cursorIdx := promptLen + m.cursor

	contentH := innerH - 1
	frame := layout.Compose(m.scrollback, inputLine, cursorIdx, innerW, contentH)

	inputRows := layout.WrapLine(inputLine, innerW)
	firstInput := len(frame.Rows) - len(inputRows)
	offsets := make([]int, len(inputRows)+1)
	for i, row := range inputRows {
		offsets[i+1] = offsets[i] + len([]rune(row))
	}

	lineRunes := []rune(inputLine)
	spans := m.inputSpans(promptLen, string(m.input))
	textStyle := m.textStyle()
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	lines := make([]string, 0, innerH)
	lines = append(lines, m.terminalTitle(innerW))
	for r := 0; r < contentH; r++ {
		showCursor := frame.Visible && r == frame.Cursor.Row
		k := r - firstInput
		switch {
		case r < len(frame.Rows) && k >= 0:
			rowSpans := spans
			if k > 0 {
				// Continuation rows of a wrapped input stay unstyled.
				rowSpans = []styledSpan{{start: offsets[k], end: offsets[k+1], style: textStyle}}
			}
			lines = append(lines, renderStyledRow(
				lineRunes, offsets[k], offsets[k+1], rowSpans,
				cursorStyle, showCursor, cursorIdx))
		case r < len(frame.Rows):
			lines = append(lines, textStyle.Render(frame.Rows[r]))
		case showCursor:
			lines = append(lines, cursorStyle.Render(" "))
		default:
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) terminalTitle(innerW int) string {
	title := " " + shell.AbbreviateHome(m.cwd)
	if m.status != nil {
		title += "  " + m.status.Label()
	}
	return m.titleStyle().Render(truncate.StringWithTail(title, uint(innerW), "…"))
}

// renderNavigator draws the directory listing with the highlighted
// entry.
func (m *Model) renderNavigator(innerW, innerH int) string {
	listH := innerH - 1
	m.browser.AdjustScroll(listH)

	lines := make([]string, 0, innerH)
	lines = append(lines, m.titleStyle().Render(
		truncate.StringWithTail(" "+shell.AbbreviateHome(m.browser.Current()), uint(innerW), "…")))

	textStyle := m.textStyle()
	selStyle := m.selectedStyle()
	for _, ie := range m.browser.VisibleEntries(listH) {
		label := ie.Entry.Name
		if m.cfg.ShowIcons {
			label = theme.IconFor(ie.Entry.Name, ie.Entry.IsDir) + " " + label
		}
		label = truncate.StringWithTail(" "+label, uint(innerW), "…")
		if m.browser.IsSelected(ie.Index) {
			lines = append(lines, selStyle.Width(innerW).Render(label))
		} else {
			lines = append(lines, textStyle.Render(label))
		}
	}
	if len(m.browser.Entries()) == 0 {
		lines = append(lines, m.mutedStyle().Render(" (no subdirectories)"))
	}
	return strings.Join(lines, "\n")
}

// renderSidebar draws the ranked bookmarks with their jump slots and
// age.
func (m *Model) renderSidebar(innerW, innerH int) string {
	lines := make([]string, 0, innerH)
	lines = append(lines, m.titleStyle().Render(" Shortcuts"))

	ranked := m.marks.Ranked()
	if len(ranked) == 0 {
		lines = append(lines, "")
		lines = append(lines, m.mutedStyle().Render(" (none yet)"))
		lines = append(lines, m.mutedStyle().Render(" skiff save"))
		return strings.Join(lines, "\n")
	}

	now := time.Now()
	textStyle := m.textStyle()
	mutedStyle := m.mutedStyle()
	selStyle := m.selectedStyle()
	for i, b := range ranked {
		if i >= bookmarks.MaxSlots {
			break
		}
		name := truncate.StringWithTail(
			fmt.Sprintf(" %d %s", i+1, b.DisplayName()), uint(innerW), "…")
		if m.mode == modePicking && i == m.pickerIdx {
			lines = append(lines, selStyle.Width(innerW).Render(name))
		} else {
			lines = append(lines, textStyle.Render(name))
		}
		lines = append(lines, mutedStyle.Render("   "+b.TimeAgo(now)))
	}
	return strings.Join(lines, "\n")
}

// styledSpan maps a rune range of the rendered input line to one style.
type styledSpan struct {
	start int // inclusive rune index
	end   int // exclusive rune index
	style lipgloss.Style
}

// inputSpans styles the prompt prefix muted and each input token with
// its syntax color.
func (m *Model) inputSpans(promptLen int, input string) []styledSpan {
	spans := []styledSpan{{start: 0, end: promptLen, style: m.mutedStyle()}}
	idx := promptLen
	for _, tok := range shell.Tokenize(input) {
		n := len([]rune(tok.Text))
		spans = append(spans, styledSpan{start: idx, end: idx + n, style: m.tokenStyle(tok.Type)})
		idx += n
	}
	return spans
}

func (m *Model) tokenStyle(t shell.TokenType) lipgloss.Style {
	var color lipgloss.Color
	switch t {
	case shell.TokenCommand:
		color = m.theme.SynCommand
	case shell.TokenFlag:
		color = m.theme.SynFlag
	case shell.TokenPath:
		color = m.theme.SynPath
	case shell.TokenString:
		color = m.theme.SynString
	case shell.TokenNumber:
		color = m.theme.SynNumber
	case shell.TokenOperator:
		color = m.theme.SynOperator
	default:
		color = m.theme.SynText
	}
	return lipgloss.NewStyle().Foreground(color)
}

// renderStyledRow renders the slice [start, end) of the input line,
// overlaying a reverse-video cursor when it falls on this row. A cursor
// past the row's runes (end of line, or an exactly-full previous row)
// renders as a reversed space.
func renderStyledRow(line []rune, start, end int, spans []styledSpan, cursorStyle lipgloss.Style, showCursor bool, cursorIdx int) string {
	var b strings.Builder
	drawn := false
	for _, sp := range spans {
		s, e := max(sp.start, start), min(sp.end, end)
		if s >= e {
			continue
		}
		seg := line[s:e]
		if showCursor && cursorIdx >= s && cursorIdx < e {
			i := cursorIdx - s
			b.WriteString(sp.style.Render(string(seg[:i])))
			b.WriteString(cursorStyle.Render(string(seg[i : i+1])))
			b.WriteString(sp.style.Render(string(seg[i+1:])))
			drawn = true
		} else {
			b.WriteString(sp.style.Render(string(seg)))
		}
	}
	if showCursor && !drawn {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// navigatorListHeight is the number of entry rows the navigator pane
// can show.
func (m *Model) navigatorListHeight() int {
	return max(1, m.height-3)
}
