package tui

import "github.com/charmbracelet/bubbles/key"

type listKeys struct {
	Up, Down, Prev, Next key.Binding
	Add, Edit, Delete    key.Binding
	SortID, SortStatus   key.Binding
	Reload, Quit         key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		SortID:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort by id")),
		SortStatus: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by status")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.SortStatus, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Add, k.Edit, k.Delete},
		{k.SortID, k.SortStatus, k.Reload, k.Quit},
	}
}

type formKeys struct {
	NextField, PrevField key.Binding
	Left, Right          key.Binding
	Save, Cancel         key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev option")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Save:      key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Left, k.Right, k.Save, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextField, k.PrevField}, {k.Left, k.Right}, {k.Save, k.Cancel}}
}

type confirmKeys struct {
	Yes, No key.Binding
}

func newConfirmKeys() confirmKeys {
	return confirmKeys{
		Yes: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "delete")),
		No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}

func (k confirmKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Yes, k.No} }
func (k confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Yes, k.No}} }
