package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// SimpleTable is a static table for non-interactive output: a title,
// headers, zebra-striped rows and an optional footer line.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table. Short rows are padded with empty cells.
func (t *SimpleTable) AddRow(row ...string) {
	for len(row) < len(t.Headers) {
		row = append(row, "")
	}
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles. A table without rows
// still renders its headers so an empty search result is visible.
func (t *SimpleTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	tbl := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Theme.Border)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return styles.TableHeader
			case row%2 == 0:
				return styles.TableCell
			default:
				return styles.TableCellAlt
			}
		})

	sb.WriteString(tbl.Render())
	sb.WriteString("\n")

	if t.Footer != "" {
		sb.WriteString(styles.Footer.Render(t.Footer))
		sb.WriteString("\n")
	}

	return sb.String()
}
