package view

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Switch   key.Binding
	Select   key.Binding
	Reveal   key.Binding
	Delete   key.Binding
	Search   key.Binding
	AllCats  key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Yes      key.Binding
	No       key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch pane")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open category")),
		Reveal:   key.NewBinding(key.WithKeys(" ", "a"), key.WithHelp("space", "show answer")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		AllCats:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "all questions")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		Yes:      key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Dismiss:  key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Search, k.Delete, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.Select},
		{k.Reveal, k.Delete, k.Search, k.AllCats},
		{k.PrevPage, k.NextPage, k.Help, k.Quit},
	}
}
