package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelp(theme Theme) help.Model {
	h := help.New()
	applyHelpTheme(&h, theme)
	return h
}

func applyHelpTheme(h *help.Model, theme Theme) {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))

	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	h.Width = m.width
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Mouse: wheel scrolls, click ‹ › to navigate"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderFooter renders the short help line.
func (m Model) renderFooter() string {
	h := m.help
	h.ShowAll = false
	h.Width = m.width - 2
	return m.theme.Styles().Footer.Width(m.width).Render(h.View(m.keys))
}
