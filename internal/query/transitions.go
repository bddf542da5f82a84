package query

import (
	"slices"
)

// DefaultPageSizes are the fixed page-size choices offered next to "all".
var DefaultPageSizes = []int{10, 20, 50, 100}

// Normalize clamps PageIndex into the pages available for the filtered rows.
// Every transition below ends with it.
func Normalize[R any](rows []R, cols []Column[R], st State) State {
	n := len(Filter(rows, cols, st.Filter))
	st.PageIndex = clampPage(st.PageIndex, PageCount(n, st.PageSize))
	return st
}

// SetFilter replaces the filter text.
func SetFilter[R any](rows []R, cols []Column[R], st State, text string) State {
	st.Filter = text
	return Normalize(rows, cols, st)
}

// SetPageSize replaces the page size. The page index is kept and clamped.
func SetPageSize[R any](rows []R, cols []Column[R], st State, size int) State {
	st.PageSize = size
	return Normalize(rows, cols, st)
}

// SetPageIndex moves to page idx, clamped to the available pages.
func SetPageIndex[R any](rows []R, cols []Column[R], st State, idx int) State {
	st.PageIndex = idx
	return Normalize(rows, cols, st)
}

// NextPage moves forward one page; on the last page it is a no-op.
func NextPage[R any](rows []R, cols []Column[R], st State) State {
	return SetPageIndex(rows, cols, st, st.PageIndex+1)
}

// PrevPage moves back one page; on the first page it is a no-op.
func PrevPage[R any](rows []R, cols []Column[R], st State) State {
	return SetPageIndex(rows, cols, st, st.PageIndex-1)
}

// FirstPage moves to the first page.
func FirstPage[R any](rows []R, cols []Column[R], st State) State {
	return SetPageIndex(rows, cols, st, 0)
}

// LastPage moves to the last page of the filtered rows.
func LastPage[R any](rows []R, cols []Column[R], st State) State {
	n := len(Filter(rows, cols, st.Filter))
	return SetPageIndex(rows, cols, st, PageCount(n, st.PageSize)-1)
}

// ToggleSort advances the sort on column through none, ascending,
// descending and back to none. Choosing a different column starts it at
// ascending and drops the previous column's sort. Row order changes but the
// number of pages does not, so the page index is left alone.
func ToggleSort(st State, column string) State {
	if st.Sort.Column != column || !st.Sort.IsSorted() {
		st.Sort = Sort{Column: column, Direction: Ascending}
		return st
	}
	switch st.Sort.Direction {
	case Ascending:
		st.Sort.Direction = Descending
	default:
		st.Sort = Sort{}
	}
	return st
}

// PageSizeOptions returns the offered page sizes: the given sizes (or
// DefaultPageSizes) in their configured order, followed by total, the
// unfiltered row count. Non-positive and repeated sizes are dropped; total
// is only left out when it is already one of the sizes.
func PageSizeOptions(total int, sizes ...int) []int {
	if len(sizes) == 0 {
		sizes = DefaultPageSizes
	}
	opts := make([]int, 0, len(sizes)+1)
	for _, s := range sizes {
		if s > 0 && !slices.Contains(opts, s) {
			opts = append(opts, s)
		}
	}
	if !slices.Contains(opts, total) {
		opts = append(opts, total)
	}
	return opts
}

// NextPageSize returns the option after current, wrapping around. A current
// size that is not an option yields the first option.
func NextPageSize(options []int, current int) int {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	return options[(i+1)%len(options)]
}
