package dataprocessing

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the formats observed in the source exports, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate converts raw text to a timestamp. The second return value is
// false when the text is empty or matches none of the known layouts.
func ParseDate(raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDecimal converts raw text to a float. Thousands separators and
// surrounding whitespace are tolerated. The second return value is false when
// the text is empty or not a number.
func ParseDecimal(raw string) (float64, bool) {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CoerceDates converts the named columns to date cells. Unparseable values
// become missing markers; the pass never fails on a bad row. Columns absent
// from the frame are skipped.
func CoerceDates(f *Frame, columns ...string) {
	for _, name := range columns {
		idx := f.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		f.Kinds[idx] = KindDate
		for r := range f.Rows {
			cell := &f.Rows[r][idx]
			if cell.Missing {
				continue
			}
			t, ok := ParseDate(cell.Raw)
			if !ok {
				cell.Missing = true
				continue
			}
			cell.Time = t
		}
	}
}

// CoerceNumbers converts the named columns to numeric cells. Unparseable
// values become missing markers; the pass never fails on a bad row. Columns
// absent from the frame are skipped.
func CoerceNumbers(f *Frame, columns ...string) {
	for _, name := range columns {
		idx := f.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		f.Kinds[idx] = KindNumber
		for r := range f.Rows {
			cell := &f.Rows[r][idx]
			if cell.Missing {
				continue
			}
			v, ok := ParseDecimal(cell.Raw)
			if !ok {
				cell.Missing = true
				continue
			}
			cell.Number = v
		}
	}
}
