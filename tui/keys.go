package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Open     key.Binding
	Back     key.Binding
	Search   key.Binding
	Status   key.Binding
	Risk     key.Binding
	Clear    key.Binding
	Insights key.Binding
	Tab      key.Binding
	Retry    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Next:     key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next page")),
	Prev:     key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "prev page")),
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Status:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	Risk:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "risk")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
	Insights: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insights")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	Retry:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "retry")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Search, k.Status, k.Risk, k.Clear, k.Prev, k.Next, k.Open, k.Insights, k.Retry, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Back, k.Retry, k.Quit}
}
