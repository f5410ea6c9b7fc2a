package ui

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/five82/carousel/internal/carousel"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	return m.theme.Styles().Header.Width(m.width).Render(m.buildStatusContent(styles, bg))
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < 80
	sep := "  "

	parts := []string{bg.Render("carousel", styles.Logo)}

	if m.engine == nil {
		parts = append(parts, bg.Render("Items:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.items)), styles.Text))
	} else {
		first, last := visibleRange(m.engine.Geometry(), len(m.items), m.view.Offset(), m.view.ViewportWidth())
		parts = append(parts,
			bg.Render("Items:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d–%d of %d", first, last, len(m.items)), styles.Text),
			m.formatBoundary(styles, bg),
		)
		if !compact {
			parts = append(parts,
				bg.Render("Offset:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%.0fpx", m.view.Offset()), styles.Text))
		}
	}

	if !compact {
		parts = append(parts, bg.Render("Source:", styles.MutedText)+bg.Space()+
			bg.Render(m.sourceLabel(), styles.FaintText))
	}

	if warn := m.formatHealthWarning(compact, styles, bg); warn != "" {
		parts = append(parts, warn)
	}

	return bg.Join(parts, sep)
}

// formatBoundary shows which edge of the list the viewport rests on.
func (m Model) formatBoundary(styles Styles, bg BgStyle) string {
	switch m.engine.Boundary() {
	case carousel.Start:
		return bg.Render("● start", styles.AccentText)
	case carousel.End:
		return bg.Render("● end", styles.AccentText)
	default:
		return bg.Render("○ scrolling", styles.FaintText)
	}
}

// sourceLabel names where the items come from.
func (m Model) sourceLabel() string {
	if m.cfg.ItemsFile == "" {
		return "placeholders"
	}
	return truncateMiddle(filepath.Base(m.cfg.ItemsFile), 32)
}

// formatHealthWarning reports a failing items file reload.
func (m Model) formatHealthWarning(compact bool, styles Styles, bg BgStyle) string {
	if m.snapshot.LastError == nil {
		return ""
	}
	style := styles.WarningText
	if m.snapshot.IsStale() {
		style = styles.DangerText
	}
	if compact {
		return bg.Render("⚠ reload", style)
	}
	msg := "⚠ " + truncate(m.snapshot.LastError.Error(), 48)
	if !m.snapshot.LastUpdated.IsZero() {
		msg += " (checked " + humanize.Time(m.snapshot.LastUpdated) + ")"
	}
	return bg.Render(msg, style)
}

// truncate shortens s to max display columns, marking the cut with "…".
func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "…")
}

// truncateMiddle shortens s to max display columns by cutting the middle,
// which keeps both ends of a path readable.
func truncateMiddle(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 1 {
		return runewidth.Truncate(s, max, "")
	}
	tail := (max - 1) / 2
	head := max - 1 - tail
	runes := []rune(s)
	end := ""
	for i := len(runes) - 1; i >= 0 && runewidth.StringWidth(end) < tail; i-- {
		end = string(runes[i]) + end
	}
	return runewidth.Truncate(s, head, "") + "…" + end
}
