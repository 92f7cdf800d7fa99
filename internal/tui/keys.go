package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shorter  key.Binding
	Longer   key.Binding
	Digits   key.Binding
	Symbols  key.Binding
	Generate key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Shorter:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "shorter")),
		Longer:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "longer")),
		Digits:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "numbers")),
		Symbols:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "special chars")),
		Generate: key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g/enter", "generate")),
		Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shorter, k.Longer},
		{k.Digits, k.Symbols},
		{k.Generate, k.Copy},
		{k.Help, k.Quit},
	}
}
