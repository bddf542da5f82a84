package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// App adapts the market page to tea.Model.
type App struct {
	page MarketPageModel
}

// NewApp wraps a market page.
func NewApp(page MarketPageModel) App {
	return App{page: page}
}

// Init initializes the program.
func (a App) Init() tea.Cmd {
	return a.page.Init()
}

// Update routes window sizes to the page and every other message through it.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.page.SetSize(ws.Width, ws.Height)
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// View renders the page.
func (a App) View() string {
	return a.page.View()
}

// Page returns the wrapped page.
func (a App) Page() MarketPageModel {
	return a.page
}

// Run starts the interactive table on the alternate screen and blocks until
// the user quits.
func Run(page MarketPageModel, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(NewApp(page), opts...).Run()
	return err
}
