package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	reset  key.Binding
	submit key.Binding
	yes    key.Binding
	no     key.Binding
	quit   key.Binding
}

var defaultKeymap = keymap{
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset timer"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit answer"),
	),
	yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "allow"),
	),
	no: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "deny"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
