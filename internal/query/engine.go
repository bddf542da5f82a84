package query

import (
	"slices"
	"strings"
)

// cellSeparator joins cell texts for the global filter. It cannot be typed
// into a search box, so a match never spans two cells.
const cellSeparator = "\x00"

// Result is the derived view for one State.
type Result[R any] struct {
	// Rows is the visible page.
	Rows []R
	// PageIndex is the page actually shown, after clamping.
	PageIndex int
	// PageCount is at least 1, even when nothing matches.
	PageCount      int
	FilteredCount  int
	TotalCount     int
	CanPageBack    bool
	CanPageForward bool
}

// Derive runs filter, sort and pagination, in that order. It never mutates
// rows, and the same inputs always produce the same result.
func Derive[R any](rows []R, cols []Column[R], st State) Result[R] {
	filtered := Filter(rows, cols, st.Filter)
	sorted := SortRows(filtered, cols, st.Sort)
	return paginate(sorted, len(rows), st)
}

// Filter keeps the rows whose combined cell text contains text, ignoring
// case. An empty text keeps every row. The result is a new slice.
func Filter[R any](rows []R, cols []Column[R], text string) []R {
	out := make([]R, 0, len(rows))
	if text == "" {
		return append(out, rows...)
	}
	needle := strings.ToLower(text)
	for _, r := range rows {
		if strings.Contains(strings.ToLower(rowText(r, cols)), needle) {
			out = append(out, r)
		}
	}
	return out
}

func rowText[R any](r R, cols []Column[R]) string {
	var sb strings.Builder
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(cellSeparator)
		}
		sb.WriteString(c.Text(r))
	}
	return sb.String()
}

// SortRows returns a stably sorted copy of rows ordered by the sort column's
// text. Descending reverses the comparison only, so equal keys keep their
// input order in both directions. An inactive sort or an unknown column
// returns the rows in input order.
func SortRows[R any](rows []R, cols []Column[R], s Sort) []R {
	out := slices.Clone(rows)
	if !s.IsSorted() {
		return out
	}
	idx, err := ColumnIndex(cols, s.Column)
	if err != nil {
		return out
	}

	type keyed struct {
		row R
		key string
	}
	ks := make([]keyed, len(out))
	for i, r := range out {
		ks[i] = keyed{row: r, key: cols[idx].Text(r)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		c := strings.Compare(a.key, b.key)
		if s.Direction == Descending {
			return -c
		}
		return c
	})
	for i, k := range ks {
		out[i] = k.row
	}
	return out
}

// PageCount returns max(1, ceil(n/size)); a size of zero or less is one page.
func PageCount(n, size int) int {
	if size <= 0 || n <= size {
		return 1
	}
	return (n + size - 1) / size
}

func clampPage(idx, count int) int {
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func paginate[R any](sorted []R, total int, st State) Result[R] {
	n := len(sorted)
	count := PageCount(n, st.PageSize)
	idx := clampPage(st.PageIndex, count)

	start, end := 0, n
	if st.PageSize > 0 {
		start = min(idx*st.PageSize, n)
		end = min(start+st.PageSize, n)
	}

	return Result[R]{
		Rows:           slices.Clip(sorted[start:end]),
		PageIndex:      idx,
		PageCount:      count,
		FilteredCount:  n,
		TotalCount:     total,
		CanPageBack:    idx > 0,
		CanPageForward: idx < count-1,
	}
}
