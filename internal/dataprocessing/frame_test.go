package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameColumnIndex(t *testing.T) {
	f := testFrame([]string{"id", "total"})

	assert.Equal(t, 0, f.ColumnIndex("id"))
	assert.Equal(t, 1, f.ColumnIndex("total"))
	assert.Equal(t, -1, f.ColumnIndex("Total"), "lookup is case sensitive")
	assert.Equal(t, -1, f.ColumnIndex("missing"))
}

func TestFrameMissingCounts(t *testing.T) {
	f := testFrame([]string{"a", "b"},
		[]string{"1", ""},
		[]string{"", ""},
		[]string{"3", "4"},
	)

	assert.Equal(t, 3, f.MissingCellCount())
	byColumn := f.MissingByColumn()
	assert.Equal(t, 1, byColumn["a"])
	assert.Equal(t, 2, byColumn["b"])
}

func TestFrameDuplicateRowCount(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{
			name: "no duplicates",
			rows: [][]string{{"1", "x"}, {"2", "y"}},
			want: 0,
		},
		{
			name: "one duplicate pair counts once",
			rows: [][]string{{"1", "x"}, {"1", "x"}},
			want: 1,
		},
		{
			name: "triple counts twice",
			rows: [][]string{{"1", "x"}, {"1", "x"}, {"1", "x"}},
			want: 2,
		},
		{
			name: "partial match is not a duplicate",
			rows: [][]string{{"1", "x"}, {"1", "y"}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFrame([]string{"a", "b"}, tt.rows...)
			assert.Equal(t, tt.want, f.DuplicateRowCount())
		})
	}
}

func TestFrameTextColumnFraction(t *testing.T) {
	f := testFrame([]string{"a", "b", "c", "d"}, []string{"1", "2", "3", "4"})

	assert.InDelta(t, 1.0, f.TextColumnFraction(), 0.0001)

	CoerceNumbers(f, "a", "b", "c")
	assert.InDelta(t, 0.25, f.TextColumnFraction(), 0.0001)
}

func TestFrameTextColumnFractionEmpty(t *testing.T) {
	f := &Frame{Name: "empty"}
	assert.Equal(t, 0.0, f.TextColumnFraction())
}
