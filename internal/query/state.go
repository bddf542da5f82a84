// Package query is an in-memory tabular query engine: a global text filter,
// single-column sort and pagination over a fixed row set. All functions are
// pure; the caller owns the State value and replaces it on every change.
package query

import "fmt"

// Direction specifies the direction of sorting.
type Direction int

const (
	// None indicates no sorting.
	None Direction = iota
	// Ascending indicates ascending sort order.
	Ascending
	// Descending indicates descending sort order.
	Descending
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Sort is the active sort: one column and a direction.
type Sort struct {
	Column    string
	Direction Direction
}

// IsSorted reports whether this sort orders rows at all.
func (s Sort) IsSorted() bool {
	return s.Column != "" && s.Direction != None
}

// State is the interactive query state. A PageSize of zero or less means
// every row on one page.
type State struct {
	Filter    string
	Sort      Sort
	PageIndex int
	PageSize  int
}

// InitialState returns the state a fresh table starts with: no filter, no
// sort, the first page, and a page size covering all rows.
func InitialState(total int) State {
	return State{PageSize: total}
}
