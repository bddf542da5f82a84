// Package market models the weekly neighborhood market schedule and projects
// the nested day/district dataset into one table row per district.
package market

import "strings"

// DistrictsKey is the key under each day that holds the district map.
const DistrictsKey = "İlçe"

// Placeholder is the display text of a cell with no market that day.
const Placeholder = "-"

// Entry is a single market: its name and street address.
type Entry struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// District holds the markets of one district on one day, in dataset order.
type District struct {
	Name    string
	Markets []Entry
}

// Day holds the districts that have a market on one weekday.
type Day struct {
	Name      string
	Districts []District
}

// Dataset is the parsed source document. Days and districts keep the order
// in which they appear in the JSON document.
type Dataset struct {
	Days []Day
}

// DayNames returns the day keys in dataset order.
func (ds Dataset) DayNames() []string {
	names := make([]string, len(ds.Days))
	for i, d := range ds.Days {
		names[i] = d.Name
	}
	return names
}

// Row is one district with one cell per projected day. Cells[i] belongs to
// Projection.Days[i]; an empty cell means no market that day.
type Row struct {
	District string
	Cells    [][]Entry
}

// Cell returns the markets of day column i. Out-of-range indexes are empty.
func (r Row) Cell(i int) []Entry {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// Names returns the market names of day column i.
func (r Row) Names(i int) []string {
	cell := r.Cell(i)
	names := make([]string, len(cell))
	for j, e := range cell {
		names[j] = e.Name
	}
	return names
}

// CellText renders a cell the way the table shows it: market names joined
// with ", ", or the placeholder when the district has no market.
func CellText(entries []Entry) string {
	if len(entries) == 0 {
		return Placeholder
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return strings.Join(names, ", ")
}
