package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColumn is returned when a column ID does not name a column.
var ErrUnknownColumn = errors.New("unknown column")

// Column describes one table column: a stable ID, its header label, and an
// accessor returning the cell's display text. The display text is what the
// filter searches and what the sort compares.
type Column[R any] struct {
	ID     string
	Header string
	Text   func(R) string
}

// ColumnIndex finds a column by ID or header. The lookup falls back to a
// case-insensitive match so callers can accept user-typed names.
func ColumnIndex[R any](cols []Column[R], name string) (int, error) {
	for i, c := range cols {
		if c.ID == name || c.Header == name {
			return i, nil
		}
	}
	for i, c := range cols {
		if strings.EqualFold(c.ID, name) || strings.EqualFold(c.Header, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
}
