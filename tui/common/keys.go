package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding // enter — expand/collapse a comment's replies
	Judge    key.Binding // u — ask the umpire to judge the selected comment
	Protest  key.Binding // p — contest the displayed verdict
	LoadMore key.Binding // m — fetch the next comment page
	NewVideo key.Binding // n — back to the URL prompt
	Back     key.Binding
	Remove   key.Binding // ctrl+d — drop a URL from the history
	Clear    key.Binding // ctrl+l — forget the whole history
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replies"),
		),
		Judge: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "umpire"),
		),
		Protest: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "protest"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more"),
		),
		NewVideo: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new video"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear history"),
		),
	}
}
