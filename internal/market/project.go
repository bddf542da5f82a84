package market

import (
	"slices"

	"pazar/internal/query"
)

// IdentityColumn is the ID of the district column.
const IdentityColumn = "district"

// IdentityHeader is the header label of the district column.
const IdentityHeader = "İlçe"

// Projection is the flat table model: day labels in dataset order and one
// row per district in first-seen order.
type Projection struct {
	Days []string
	Rows []Row
}

// Project flattens a dataset into rows. Every district that appears under
// any day gets exactly one row, and every row has one cell per day. The
// dataset is not modified.
func Project(ds Dataset) Projection {
	p := Projection{
		Days: ds.DayNames(),
		Rows: make([]Row, 0),
	}

	index := make(map[string]int)
	for d, day := range ds.Days {
		for _, district := range day.Districts {
			i, ok := index[district.Name]
			if !ok {
				i = len(p.Rows)
				index[district.Name] = i
				p.Rows = append(p.Rows, Row{
					District: district.Name,
					Cells:    make([][]Entry, len(ds.Days)),
				})
			}
			p.Rows[i].Cells[d] = slices.Clone(district.Markets)
		}
	}
	return p
}

// MarketCount returns the number of market entries across all cells.
func (p Projection) MarketCount() int {
	n := 0
	for _, r := range p.Rows {
		for _, c := range r.Cells {
			n += len(c)
		}
	}
	return n
}

// Columns returns the district column followed by one column per day.
func (p Projection) Columns() []query.Column[Row] {
	return Columns(p.Days)
}

// Columns builds the table columns for the given day labels. Day column IDs
// are the day labels themselves.
func Columns(days []string) []query.Column[Row] {
	cols := make([]query.Column[Row], 0, len(days)+1)
	cols = append(cols, query.Column[Row]{
		ID:     IdentityColumn,
		Header: IdentityHeader,
		Text:   func(r Row) string { return r.District },
	})
	for i, day := range days {
		cols = append(cols, query.Column[Row]{
			ID:     day,
			Header: day,
			Text:   func(r Row) string { return CellText(r.Cell(i)) },
		})
	}
	return cols
}
