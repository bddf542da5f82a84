package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pazar/cmd/pazar/ui"
	"pazar/internal/logging"
	"pazar/internal/market"
	"pazar/internal/query"
)

// Output formats accepted by --format.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

var validFormats = []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

var (
	errUnknownFormat   = errors.New("unknown format")
	errDescWithoutSort = errors.New("--desc requires --sort")
)

// markdownWidth is the word-wrap width of --format markdown.
const markdownWidth = 120

var (
	tableFilter string
	tableSort   string
	tableDesc   bool
	tablePage   int
	tableSize   int
	tableFormat string
)

// tableCmd prints one page of the derived table
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the market table",
	Long: `Filters, sorts and paginates the market table exactly like the
interactive view and prints the resulting page.

Examples:
  pazar table --filter nilüfer
  pazar table --sort Pazartesi --desc --size 5 --page 2
  pazar table --format json`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVarP(&tableFilter, "filter", "f", "", "Case-insensitive search across all columns")
	tableCmd.Flags().StringVarP(&tableSort, "sort", "s", "", "Column to sort by (district or a day name)")
	tableCmd.Flags().BoolVar(&tableDesc, "desc", false, "Sort descending")
	tableCmd.Flags().IntVarP(&tablePage, "page", "p", 1, "Page number, starting at 1")
	tableCmd.Flags().IntVarP(&tableSize, "size", "n", 0, "Rows per page (0 = table.default_page_size, or all)")
	tableCmd.Flags().StringVarP(&tableFormat, "format", "o", FormatText, "Output format: "+strings.Join(validFormats, ", "))
}

// tableCell is one day's markets in a district, in serialized output.
type tableCell struct {
	Day     string         `json:"day" yaml:"day"`
	Markets []market.Entry `json:"markets" yaml:"markets"`
}

// tableRow is one district in serialized output.
type tableRow struct {
	District string      `json:"district" yaml:"district"`
	Days     []tableCell `json:"days" yaml:"days"`
}

// tablePageView is the serialized form of a derived page.
type tablePageView struct {
	Page      int        `json:"page" yaml:"page"`
	PageCount int        `json:"page_count" yaml:"page_count"`
	Matches   int        `json:"matches" yaml:"matches"`
	Total     int        `json:"total" yaml:"total"`
	Rows      []tableRow `json:"rows" yaml:"rows"`
}

// runTable derives one page from the flags and writes it out
func runTable(cmd *cobra.Command, args []string) error {
	if !isValidFormat(tableFormat) {
		return fmt.Errorf("%w %q (valid: %s)", errUnknownFormat, tableFormat, strings.Join(validFormats, ", "))
	}
	if tablePage < 1 {
		return fmt.Errorf("invalid page %d: pages start at 1", tablePage)
	}
	if tableSize < 0 {
		return fmt.Errorf("invalid page size %d", tableSize)
	}
	if tableDesc && tableSort == "" {
		return errDescWithoutSort
	}

	p, err := loadProjection()
	if err != nil {
		return err
	}
	cols := p.Columns()

	st := query.InitialState(len(p.Rows))
	st.Filter = tableFilter
	st.PageIndex = tablePage - 1
	switch {
	case tableSize > 0:
		st.PageSize = tableSize
	case cfg.Table.DefaultPageSize > 0:
		st.PageSize = cfg.Table.DefaultPageSize
	}
	if tableSort != "" {
		i, err := query.ColumnIndex(cols, tableSort)
		if err != nil {
			return fmt.Errorf("failed to sort: %w", err)
		}
		dir := query.Ascending
		if tableDesc {
			dir = query.Descending
		}
		st.Sort = query.Sort{Column: cols[i].ID, Direction: dir}
	}

	res := query.Derive(p.Rows, cols, st)
	logging.Get(logging.CategoryQuery).Debug("table derived",
		zap.String("filter", st.Filter),
		zap.String("sort_column", st.Sort.Column),
		zap.Stringer("sort_direction", st.Sort.Direction),
		zap.Int("page_index", res.PageIndex),
		zap.Int("page_size", st.PageSize),
		zap.Int("matches", res.FilteredCount),
	)
	if res.PageIndex != st.PageIndex {
		logging.QueryDebug("page %d clamped to %d", st.PageIndex+1, res.PageIndex+1)
	}

	return writeTable(cmd.OutOrStdout(), tableFormat, p, cols, res)
}

func isValidFormat(f string) bool {
	for _, v := range validFormats {
		if f == v {
			return true
		}
	}
	return false
}

func writeTable(w io.Writer, format string, p market.Projection, cols []query.Column[market.Row], res query.Result[market.Row]) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pageView(p, res)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pageView(p, res)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := fmt.Fprintln(w, ui.RenderMarkdown(styles().Theme, markdownWidth, markdownTable(cols, res)))
		return err
	default:
		_, err := fmt.Fprint(w, textTable(cols, res).View(styles()))
		return err
	}
}

func pageView(p market.Projection, res query.Result[market.Row]) tablePageView {
	v := tablePageView{
		Page:      res.PageIndex + 1,
		PageCount: res.PageCount,
		Matches:   res.FilteredCount,
		Total:     res.TotalCount,
		Rows:      make([]tableRow, 0, len(res.Rows)),
	}
	for _, r := range res.Rows {
		row := tableRow{District: r.District, Days: make([]tableCell, len(p.Days))}
		for i, day := range p.Days {
			markets := r.Cell(i)
			if markets == nil {
				markets = []market.Entry{}
			}
			row.Days[i] = tableCell{Day: day, Markets: markets}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func footer(res query.Result[market.Row]) string {
	return fmt.Sprintf("%d / %d · %d of %d districts", res.PageIndex+1, res.PageCount, res.FilteredCount, res.TotalCount)
}

func textTable(cols []query.Column[market.Row], res query.Result[market.Row]) *ui.SimpleTable {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	t := ui.NewSimpleTable("Pazar Yerleri", headers)
	for _, r := range res.Rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Text(r)
		}
		t.AddRow(cells...)
	}
	t.Footer = footer(res)
	return t
}

func markdownTable(cols []query.Column[market.Row], res query.Result[market.Row]) string {
	var sb strings.Builder
	sb.WriteString("## Pazar Yerleri\n\n")

	sb.WriteString("|")
	for _, c := range cols {
		sb.WriteString(" " + escapeCell(c.Header) + " |")
	}
	sb.WriteString("\n|")
	for range cols {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, r := range res.Rows {
		sb.WriteString("|")
		for _, c := range cols {
			sb.WriteString(" " + escapeCell(c.Text(r)) + " |")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(footer(res))
	sb.WriteString("\n")
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
