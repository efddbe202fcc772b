package ui

import "github.com/charmbracelet/bubbles/key"

// ProfileKeyMap holds the bindings of the edit-profile page.
type ProfileKeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	ChipLeft   key.Binding
	ChipRight  key.Binding
	RemoveChip key.Binding
	Backspace  key.Binding
	Submit     key.Binding
	Quit       key.Binding
}

// DefaultProfileKeyMap returns the default profile bindings.
func DefaultProfileKeyMap() ProfileKeyMap {
	return ProfileKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		ChipLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "select tag"),
		),
		ChipRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "select tag"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "remove tag"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "remove last"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ProfileKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.RemoveChip, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ProfileKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.ChipLeft, k.ChipRight, k.RemoveChip, k.Backspace},
		{k.Submit, k.Quit},
	}
}

// CarouselKeyMap holds the bindings of the slideshow page.
type CarouselKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Jump  key.Binding
	Open  key.Binding
	Close key.Binding
	Quit  key.Binding
}

// DefaultCarouselKeyMap returns the default slideshow bindings.
func DefaultCarouselKeyMap() CarouselKeyMap {
	return CarouselKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k CarouselKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k CarouselKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Jump}, {k.Open, k.Close, k.Quit}}
}
