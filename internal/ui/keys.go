package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Carousel controls
	Prev key.Binding
	Next key.Binding

	// Native scrolling, bypassing the controls
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Home        key.Binding
	End         key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "Next"),
		),

		ScrollLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Scroll right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "Scroll to start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Scroll to end"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.ScrollLeft, k.ScrollRight, k.Home, k.End},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
