package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// renderCarousel renders the controls and the visible slice of the strip.
func (m Model) renderCarousel() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	full := m.renderContentRows(styles, bg)
	viewCols := m.viewCols()
	startCol := m.cells.cols(m.view.Offset())

	prev := m.renderControl("‹", m.engine.IsAtStart(), styles, bg)
	next := m.renderControl("›", m.engine.IsAtEnd(), styles, bg)

	lines := make([]string, len(full))
	for r, row := range full {
		visible := ansi.Cut(row, startCol, startCol+viewCols)
		if w := ansi.StringWidth(visible); w < viewCols {
			visible += bg.Spaces(viewCols - w)
		}
		lines[r] = prev[r] + visible + next[r]
	}
	return strings.Join(lines, "\n")
}

// renderContentRows renders every card side by side on the content grid.
func (m Model) renderContentRows(styles Styles, bg BgStyle) []string {
	l := m.strip
	rows := make([]strings.Builder, l.rows)

	col := 0
	for i := range m.items {
		card := strings.Split(m.renderCard(i, styles), "\n")
		pad := l.starts[i] - col
		for r := 0; r < l.rows; r++ {
			if pad > 0 {
				rows[r].WriteString(bg.Spaces(pad))
			}
			if r < len(card) {
				rows[r].WriteString(card[r])
			} else {
				rows[r].WriteString(bg.Spaces(l.widths[i]))
			}
		}
		col = l.starts[i] + l.widths[i]
	}

	out := make([]string, l.rows)
	for r := range rows {
		out[r] = rows[r].String()
	}
	return out
}

// renderCard renders item i as a bordered block exactly l.widths[i] columns
// wide and l.rows rows tall.
func (m Model) renderCard(i int, styles Styles) string {
	item := m.items[i]
	w := m.strip.widths[i]
	innerW := max(1, w-4) // border and padding
	innerH := m.strip.rows - 2

	lines := make([]string, innerH)
	lines[0] = styles.Text.Bold(true).Render(runewidth.Truncate(item.Title, innerW, "…"))
	if innerH >= 3 && item.Subtitle != "" {
		lines[1] = styles.MutedText.Render(runewidth.Truncate(item.Subtitle, innerW, "…"))
	}
	if innerH >= 2 {
		index := fmt.Sprintf("%d/%d", i+1, len(m.items))
		lines[innerH-1] = styles.FaintText.Render(runewidth.Truncate(index, innerW, ""))
	}

	return styles.Card.
		BorderForeground(lipgloss.Color(m.theme.CardBorder(i, len(m.items)))).
		Width(w - 2).
		Height(innerH).
		MaxHeight(m.strip.rows).
		Render(strings.Join(lines, "\n"))
}

// renderControl renders a navigation control column. A control at its
// boundary is drawn disabled but stays clickable.
func (m Model) renderControl(glyph string, disabled bool, styles Styles, bg BgStyle) []string {
	style := styles.Control
	if disabled {
		style = styles.ControlDisabled
	}
	out := make([]string, m.strip.rows)
	for r := range out {
		if r == m.strip.ctrl {
			out[r] = style.Render(" " + glyph + " ")
		} else {
			out[r] = bg.Spaces(ControlWidth)
		}
	}
	return out
}

// renderLiveRegion renders the announcement line. The line is always
// present so the layout does not jump when a message appears.
func (m Model) renderLiveRegion() string {
	msg := ""
	if m.engine != nil {
		msg = m.engine.StatusMessage()
	}
	if msg == "" {
		return ""
	}
	return m.theme.Styles().LiveRegion.Render("» " + msg)
}

func (m Model) viewCols() int {
	if m.view == nil {
		return 0
	}
	return max(1, m.cells.cols(m.view.ViewportWidth()))
}

// hostWidth is the pixel width available to the viewport.
func (m Model) hostWidth() float64 {
	return m.cells.px(max(1, m.width-2*ControlWidth))
}
