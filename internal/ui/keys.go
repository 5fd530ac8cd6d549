package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the scrubber.
type KeyMap struct {
	Play    key.Binding
	Back    key.Binding
	Forward key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Reset   key.Binding
	NextTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Escape  key.Binding
	Sort    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "zero age"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "detail"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// footerBindings returns the hints shown for a view.
func footerBindings(km KeyMap, mode ViewMode) []key.Binding {
	clock := []key.Binding{km.Play, km.Back, km.Forward, km.Faster, km.Slower}
	switch mode {
	case ViewTable:
		return append(clock, km.Up, km.Down, km.Sort, km.Enter, km.NextTab, km.Quit)
	case ViewDetail:
		return append(clock, km.Up, km.Down, km.Escape, km.NextTab, km.Quit)
	default:
		return append(clock, km.Up, km.Down, km.NextTab, km.Quit)
	}
}
