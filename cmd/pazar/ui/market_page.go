package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"pazar/internal/market"
	"pazar/internal/popover"
	"pazar/internal/query"
)

// AllRowsLabel is the page-size label of the "every row" option.
const AllRowsLabel = "Tümü"

// Options configures a MarketPageModel.
type Options struct {
	PageSizes       []int // offered besides all rows; empty = query.DefaultPageSizes
	DefaultPageSize int   // 0 = all rows
	TableHeight     int   // 0 = fit the window
	PopoverWidth    int
	SearchURL       string
	Styles          *Styles
	Logger          *zap.Logger
}

// MarketPageModel is the interactive market table: a search box, sortable
// headers, paging controls and an address popover. All table state lives in
// a query.State value; every input replaces it and re-derives the view.
type MarketPageModel struct {
	width  int
	height int

	// Data
	proj   market.Projection
	cols   []query.Column[market.Row]
	widths []int
	sizes  []int
	state  query.State
	result query.Result[market.Row]

	// Widgets
	table       table.Model
	filterInput textinput.Model
	paginator   paginator.Model
	help        help.Model
	keys        KeyMap

	// Interaction state
	filterFocused bool
	focusCol      int
	popover       popover.State

	renderer     *glamour.TermRenderer
	popoverWidth int
	tableHeight  int
	searchURL    string

	styles Styles
	logger *zap.Logger
}

// NewMarketPageModel creates the market table page for a projection.
func NewMarketPageModel(p market.Projection, opts Options) MarketPageModel {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cols := p.Columns()
	total := len(p.Rows)

	st := query.InitialState(total)
	if opts.DefaultPageSize > 0 {
		st.PageSize = opts.DefaultPageSize
	}

	height := opts.TableHeight
	if height <= 0 {
		height = DefaultTableRows
	}

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(height),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Theme.Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = styles.TableSelected
	t.SetStyles(ts)

	fi := textinput.New()
	fi.Placeholder = "Tabloda ara..."
	fi.CharLimit = FilterCharLimit
	fi.Width = FilterWidth

	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.ArabicFormat = "%d / %d"

	m := MarketPageModel{
		proj:         p,
		cols:         cols,
		widths:       columnWidths(p.Rows, cols),
		sizes:        query.PageSizeOptions(total, opts.PageSizes...),
		state:        st,
		table:        t,
		filterInput:  fi,
		paginator:    pg,
		help:         help.New(),
		keys:         DefaultKeyMap(),
		popoverWidth: opts.PopoverWidth,
		tableHeight:  opts.TableHeight,
		searchURL:    opts.SearchURL,
		styles:       styles,
		logger:       logger,
	}
	m.renderer = newMarkdownRenderer(styles.Theme, PopoverWrapWidth(m.popoverWidth, 0))
	m.refresh()
	return m
}

// Init initializes the model.
func (m MarketPageModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MarketPageModel) Update(msg tea.Msg) (MarketPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.filterFocused {
			m.filterInput, cmd = m.filterInput.Update(msg)
		} else {
			m.table, cmd = m.table.Update(msg)
		}
		return m, cmd
	}

	if m.filterFocused {
		return m.updateFilter(keyMsg)
	}

	// Any key other than the popover key acts as a click outside it.
	if _, open := m.popover.IsOpen(); open {
		if key.Matches(keyMsg, m.keys.Close) {
			m.popover = m.popover.Close()
			return m, nil
		}
		if !key.Matches(keyMsg, m.keys.Popover) {
			m.popover = m.popover.Close()
		}
	}

	rows := m.proj.Rows
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Filter):
		m.filterFocused = true
		m.table.Blur()
		return m, m.filterInput.Focus()
	case key.Matches(keyMsg, m.keys.ColumnLeft):
		m.focusColumn(m.focusCol - 1)
	case key.Matches(keyMsg, m.keys.ColumnRight):
		m.focusColumn(m.focusCol + 1)
	case key.Matches(keyMsg, m.keys.Sort):
		m.apply(query.ToggleSort(m.state, m.cols[m.focusCol].ID), "sort toggled")
	case key.Matches(keyMsg, m.keys.SortColumn):
		i := int(keyMsg.String()[0] - '1')
		if i < len(m.cols) {
			m.focusCol = i
			m.apply(query.ToggleSort(m.state, m.cols[i].ID), "sort toggled")
		}
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.apply(query.FirstPage(rows, m.cols, m.state), "page changed")
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.apply(query.PrevPage(rows, m.cols, m.state), "page changed")
	case key.Matches(keyMsg, m.keys.NextPage):
		m.apply(query.NextPage(rows, m.cols, m.state), "page changed")
	case key.Matches(keyMsg, m.keys.LastPage):
		m.apply(query.LastPage(rows, m.cols, m.state), "page changed")
	case key.Matches(keyMsg, m.keys.PageSize):
		size := query.NextPageSize(m.sizes, m.state.PageSize)
		m.apply(query.SetPageSize(rows, m.cols, m.state, size), "page size changed")
	case key.Matches(keyMsg, m.keys.Popover):
		m.togglePopover()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateFilter handles keys while the search box has focus. Every edit
// re-derives the table.
func (m MarketPageModel) updateFilter(msg tea.KeyMsg) (MarketPageModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.LeaveFilter) {
		m.filterFocused = false
		m.filterInput.Blur()
		m.table.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if v := m.filterInput.Value(); v != m.state.Filter {
		m.apply(query.SetFilter(m.proj.Rows, m.cols, m.state, v), "filter changed")
	}
	return m, cmd
}

// apply installs a new query state and re-derives the visible rows.
func (m *MarketPageModel) apply(st query.State, event string) {
	m.state = st
	m.refresh()
	m.logger.Debug(event,
		zap.String("filter", st.Filter),
		zap.String("sort_column", st.Sort.Column),
		zap.Stringer("sort_direction", st.Sort.Direction),
		zap.Int("page_index", m.result.PageIndex),
		zap.Int("page_size", st.PageSize),
		zap.Int("matches", m.result.FilteredCount),
	)
}

// refresh derives the view from the current state and pushes it into the
// widgets. Visible rows may move, so an open popover is closed.
func (m *MarketPageModel) refresh() {
	m.result = query.Derive(m.proj.Rows, m.cols, m.state)
	m.state.PageIndex = m.result.PageIndex
	m.popover = m.popover.Close()

	rows := make([]table.Row, len(m.result.Rows))
	for i, r := range m.result.Rows {
		row := make(table.Row, len(m.cols))
		for j, c := range m.cols {
			row[j] = c.Text(r)
		}
		rows[i] = row
	}
	m.table.SetColumns(m.tableColumns())
	m.table.SetRows(rows)
	switch {
	case len(rows) == 0:
		m.table.SetCursor(0)
	case m.table.Cursor() >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	case m.table.Cursor() < 0:
		m.table.SetCursor(0)
	}

	m.paginator.TotalPages = m.result.PageCount
	m.paginator.Page = m.result.PageIndex
}

func (m *MarketPageModel) focusColumn(i int) {
	if i < 0 || i >= len(m.cols) {
		return
	}
	m.focusCol = i
	m.table.SetColumns(m.tableColumns())
}

// togglePopover opens the address panel for the selected row and focused
// day column. Cells without any address get no popover.
func (m *MarketPageModel) togglePopover() {
	row := m.table.Cursor()
	if m.focusCol == 0 || row < 0 || row >= len(m.result.Rows) {
		return
	}
	if !hasAddress(m.result.Rows[row].Cell(m.focusCol - 1)) {
		return
	}
	m.popover = m.popover.Toggle(popover.Cell{Row: row, Column: m.focusCol})
}

func hasAddress(entries []market.Entry) bool {
	for _, e := range entries {
		if popover.HasAddress(e.Address) {
			return true
		}
	}
	return false
}

func (m MarketPageModel) tableColumns() []table.Column {
	out := make([]table.Column, len(m.cols))
	for i, c := range m.cols {
		title := c.Header
		if m.state.Sort.IsSorted() && m.state.Sort.Column == c.ID {
			title += m.sortIndicator(m.state.Sort.Direction)
		}
		if i == m.focusCol {
			title = "› " + title
		} else {
			title = "  " + title
		}
		out[i] = table.Column{Title: title, Width: m.widths[i]}
	}
	return out
}

func (m MarketPageModel) sortIndicator(d query.Direction) string {
	if d < 0 || int(d) >= len(m.styles.SortIndicators) {
		return ""
	}
	return m.styles.SortIndicators[d]
}

func columnWidths(rows []market.Row, cols []query.Column[market.Row]) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := lipgloss.Width(c.Header) + ColumnPadding
		for _, r := range rows {
			if tw := lipgloss.Width(c.Text(r)); tw > w {
				w = tw
			}
		}
		w += FocusMarkerWidth
		if w > MaxColumnWidth {
			w = MaxColumnWidth
		}
		widths[i] = w
	}
	return widths
}

// View renders the page.
func (m MarketPageModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" Pazar Yerleri "))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n")
	sb.WriteString(m.renderControls())
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")

	if pv := m.popoverView(); pv != "" {
		sb.WriteString(pv)
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m MarketPageModel) renderFilterBar() string {
	style := m.styles.Input
	if m.filterFocused {
		style = m.styles.InputFocused
	}
	return style.Render(m.filterInput.View())
}

// renderControls draws |< < n / m > >| and the page-size selector. Buttons
// that cannot act are dimmed.
func (m MarketPageModel) renderControls() string {
	button := func(label string, enabled bool) string {
		if enabled {
			return m.styles.Control.Render(label)
		}
		return m.styles.ControlOff.Render(label)
	}

	parts := []string{
		button("|<", m.result.CanPageBack),
		button("<", m.result.CanPageBack),
		m.styles.Bold.Render(m.paginator.View()),
		button(">", m.result.CanPageForward),
		button(">|", m.result.CanPageForward),
		m.styles.Muted.Render("Sayfa:"),
		m.styles.Control.Render(m.pageSizeLabel(m.state.PageSize)),
	}
	return strings.Join(parts, " ")
}

func (m MarketPageModel) pageSizeLabel(size int) string {
	if size <= 0 || size == m.result.TotalCount {
		return AllRowsLabel
	}
	return strconv.Itoa(size)
}

func (m MarketPageModel) renderStatus() string {
	text, style := m.status()
	return style.Render(text)
}

// status returns the line under the table: an error when nothing matches,
// info while a search narrows the rows.
func (m MarketPageModel) status() (string, lipgloss.Style) {
	count := fmt.Sprintf("%d of %d districts", m.result.FilteredCount, m.result.TotalCount)
	switch {
	case m.result.FilteredCount == 0:
		return "No districts match the search.", m.styles.Error
	case m.state.Filter != "":
		return count, m.styles.Info
	default:
		return count, m.styles.Body
	}
}

func (m MarketPageModel) popoverView() string {
	cell, open := m.popover.IsOpen()
	if !open || cell.Row >= len(m.result.Rows) || cell.Column < 1 || cell.Column > len(m.proj.Days) {
		return ""
	}
	r := m.result.Rows[cell.Row]
	md := popover.Markdown(m.searchURL, r.District, m.proj.Days[cell.Column-1], r.Cell(cell.Column-1))
	return m.styles.Popover.Render(safeRenderMarkdown(m.renderer, md))
}

// SetSize updates the size.
func (m *MarketPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w
	m.table.SetWidth(w)
	if m.tableHeight <= 0 {
		m.table.SetHeight(TableBodyHeight(h, 0))
	}
	m.renderer = newMarkdownRenderer(m.styles.Theme, PopoverWrapWidth(m.popoverWidth, w))
}

// State returns the current query state.
func (m MarketPageModel) State() query.State {
	return m.state
}

// Result returns the derived view for the current state.
func (m MarketPageModel) Result() query.Result[market.Row] {
	return m.result
}

// Popover returns the popover state.
func (m MarketPageModel) Popover() popover.State {
	return m.popover
}

// FilterFocused reports whether the search box has focus.
func (m MarketPageModel) FilterFocused() bool {
	return m.filterFocused
}

// FocusedColumn returns the index of the header column keys act on.
func (m MarketPageModel) FocusedColumn() int {
	return m.focusCol
}
