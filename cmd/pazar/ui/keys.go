package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the market page bindings. Row movement (up/down, pgup/pgdn,
// home/end) is left to the bubbles table.
type KeyMap struct {
	Filter      key.Binding
	LeaveFilter key.Binding
	ColumnLeft  key.Binding
	ColumnRight key.Binding
	Sort        key.Binding
	SortColumn  key.Binding
	FirstPage   key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	LastPage    key.Binding
	PageSize    key.Binding
	Popover     key.Binding
	Close       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		LeaveFilter: key.NewBinding(
			key.WithKeys("enter", "esc", "tab"),
			key.WithHelp("enter/esc", "leave search"),
		),
		ColumnLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "column"),
		),
		ColumnRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "column"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),
		SortColumn: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "sort by n-th column"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "first page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "last page"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "page size"),
		),
		Popover: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "addresses"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Sort, k.PrevPage, k.NextPage, k.Popover, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Filter, k.LeaveFilter, k.Popover, k.Close},
		{k.ColumnLeft, k.ColumnRight, k.Sort, k.SortColumn},
		{k.FirstPage, k.PrevPage, k.NextPage, k.LastPage, k.PageSize},
		{k.Help, k.Quit},
	}
}
