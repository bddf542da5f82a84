package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fruit struct {
	name  string
	color string
}

var fruitCols = []Column[fruit]{
	{ID: "name", Header: "Name", Text: func(f fruit) string { return f.name }},
	{ID: "color", Header: "Color", Text: func(f fruit) string { return f.color }},
}

func fruits() []fruit {
	return []fruit{
		{"banana", "yellow"},
		{"Apple", "red"},
		{"cherry", "red"},
		{"date", "brown"},
		{"elderberry", "purple"},
		{"fig", "purple"},
		{"grape", "green"},
	}
}

func names(rows []fruit) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

func TestDerive_EmptyFilterReturnsAllRows(t *testing.T) {
	rows := fruits()
	res := Derive(rows, fruitCols, InitialState(len(rows)))

	assert.Equal(t, names(rows), names(res.Rows))
	assert.Equal(t, 1, res.PageCount)
	assert.Equal(t, len(rows), res.FilteredCount)
	assert.Equal(t, len(rows), res.TotalCount)
	assert.False(t, res.CanPageBack)
	assert.False(t, res.CanPageForward)
}

func TestDerive_FilterIsCaseInsensitiveAcrossColumns(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))

	st.Filter = "APP"
	assert.Equal(t, []string{"Apple"}, names(Derive(rows, fruitCols, st).Rows))

	st.Filter = "Red"
	assert.Equal(t, []string{"Apple", "cherry"}, names(Derive(rows, fruitCols, st).Rows))
}

func TestDerive_FilterDoesNotSpanCells(t *testing.T) {
	rows := []fruit{{"kiwi", "green"}}
	st := InitialState(1)
	st.Filter = "kiwigreen"
	assert.Empty(t, Derive(rows, fruitCols, st).Rows)
}

func TestDerive_FilterIsMonotonic(t *testing.T) {
	rows := fruits()
	prefixes := []string{"", "e", "er", "err", "erry", "errya"}

	prev := names(rows)
	for _, p := range prefixes {
		st := InitialState(len(rows))
		st.Filter = p
		got := names(Derive(rows, fruitCols, st).Rows)
		for _, n := range got {
			assert.Contains(t, prev, n, "filter %q widened the result", p)
		}
		prev = got
	}
}

func TestDerive_EmptyResult(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))
	st.Filter = "zzz"
	st.PageSize = 2
	st.PageIndex = 3

	res := Derive(rows, fruitCols, st)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.PageCount)
	assert.Equal(t, 0, res.PageIndex)
	assert.False(t, res.CanPageBack)
	assert.False(t, res.CanPageForward)
}

func TestDerive_SortDirections(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))

	st.Sort = Sort{Column: "name", Direction: Ascending}
	asc := names(Derive(rows, fruitCols, st).Rows)
	// Byte-wise comparison puts upper case first.
	assert.Equal(t, []string{"Apple", "banana", "cherry", "date", "elderberry", "fig", "grape"}, asc)

	st.Sort.Direction = Descending
	desc := names(Derive(rows, fruitCols, st).Rows)
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestDerive_SortIsStable(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))
	st.Sort = Sort{Column: "color", Direction: Ascending}

	once := Derive(rows, fruitCols, st).Rows
	twice := Derive(once, fruitCols, st).Rows
	assert.Equal(t, once, twice)

	// Ties keep input order in both directions.
	assert.Equal(t, []string{"date", "grape", "elderberry", "fig", "Apple", "cherry", "banana"}, names(once))
	st.Sort.Direction = Descending
	assert.Equal(t, []string{"banana", "Apple", "cherry", "elderberry", "fig", "grape", "date"},
		names(Derive(rows, fruitCols, st).Rows))
}

func TestDerive_UnsortedKeepsInputOrder(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))
	st.Sort = Sort{Column: "missing", Direction: Ascending}
	assert.Equal(t, names(rows), names(Derive(rows, fruitCols, st).Rows))
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))
	st.Sort = Sort{Column: "name", Direction: Descending}
	_ = Derive(rows, fruitCols, st)
	assert.Equal(t, fruits(), rows)
}

func TestDerive_PaginationCoverage(t *testing.T) {
	rows := fruits()
	for size := 1; size <= len(rows)+1; size++ {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			st := InitialState(len(rows))
			st.PageSize = size
			st.Sort = Sort{Column: "color", Direction: Descending}

			full := names(SortRows(rows, fruitCols, st.Sort))
			first := Derive(rows, fruitCols, st)

			var all []string
			for i := 0; i < first.PageCount; i++ {
				st.PageIndex = i
				res := Derive(rows, fruitCols, st)
				require.Equal(t, i, res.PageIndex)
				assert.Equal(t, i > 0, res.CanPageBack)
				assert.Equal(t, i < res.PageCount-1, res.CanPageForward)
				all = append(all, names(res.Rows)...)
			}
			assert.Equal(t, full, all)
		})
	}
}

func TestDerive_ClampsPageIndex(t *testing.T) {
	rows := fruits()
	st := InitialState(len(rows))
	st.PageSize = 3
	st.PageIndex = 10

	res := Derive(rows, fruitCols, st)
	assert.Equal(t, 2, res.PageIndex)
	assert.Equal(t, []string{"grape"}, names(res.Rows))
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 1},
		{7, 0, 1},
		{7, 7, 1},
		{7, 3, 3},
		{9, 3, 3},
		{10, 3, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.n, tt.size), "PageCount(%d, %d)", tt.n, tt.size)
	}
}

func TestColumnIndex(t *testing.T) {
	i, err := ColumnIndex(fruitCols, "COLOR")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = ColumnIndex(fruitCols, "weight")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
