package dataprocessing

import (
	"strings"
	"time"
)

// ColumnKind classifies a column after coercion. Columns start as text and
// become number/date columns when a coercion pass is applied to them.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindNumber
	KindDate
)

// Cell is a single value in a Frame. Raw always keeps the original (trimmed)
// text. Missing is true both for cells that were empty in the source and for
// cells a coercion pass could not parse, so "absent" and "unparseable" collapse
// into one marker distinguishable from a genuine zero or empty label.
type Cell struct {
	Raw     string
	Missing bool
	Number  float64
	Time    time.Time
}

// Frame is an in-memory tabular dataset: the Go stand-in for the loaded CSV.
// It is read-only after loading; coercion and normalization run during load
// and nothing mutates it afterwards.
type Frame struct {
	Name    string
	Headers []string
	Kinds   []ColumnKind
	Rows    [][]Cell
}

// ColumnIndex returns the position of the named column, or -1 when the
// column is not present. Lookup is exact; the source headers are part of the
// data contract.
func (f *Frame) ColumnIndex(name string) int {
	for i, h := range f.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// RowCount returns the number of data rows.
func (f *Frame) RowCount() int {
	return len(f.Rows)
}

// ColumnCount returns the number of columns.
func (f *Frame) ColumnCount() int {
	return len(f.Headers)
}

// MissingCellCount returns the total number of missing cells across the frame.
func (f *Frame) MissingCellCount() int {
	count := 0
	for _, row := range f.Rows {
		for _, cell := range row {
			if cell.Missing {
				count++
			}
		}
	}
	return count
}

// MissingByColumn returns per-column missing cell counts keyed by header.
func (f *Frame) MissingByColumn() map[string]int {
	counts := make(map[string]int, len(f.Headers))
	for _, row := range f.Rows {
		for i, cell := range row {
			if cell.Missing {
				counts[f.Headers[i]]++
			}
		}
	}
	return counts
}

// DuplicateRowCount returns the number of rows that are exact duplicates of an
// earlier row. The first occurrence is not counted, matching the convention
// that deduplication would keep one copy.
func (f *Frame) DuplicateRowCount() int {
	seen := make(map[string]bool, len(f.Rows))
	duplicates := 0
	for _, row := range f.Rows {
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(cell.Raw)
			b.WriteByte(0x1f) // unit separator, cannot appear in CSV text
		}
		key := b.String()
		if seen[key] {
			duplicates++
		} else {
			seen[key] = true
		}
	}
	return duplicates
}

// TextColumnFraction returns the share of columns still holding free-form
// text after coercion.
func (f *Frame) TextColumnFraction() float64 {
	if len(f.Kinds) == 0 {
		return 0
	}
	textColumns := 0
	for _, kind := range f.Kinds {
		if kind == KindText {
			textColumns++
		}
	}
	return float64(textColumns) / float64(len(f.Kinds))
}
