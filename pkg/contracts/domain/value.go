package domain

import (
	"encoding/json"
	"time"
)

// Float is a nullable monetary or numeric value. Valid is false both for cells
// that were absent in the source file and for cells that could not be parsed,
// so downstream aggregation can tell "missing" apart from a genuine zero.
type Float struct {
	Value float64
	Valid bool
}

// NewFloat returns a valid Float carrying v.
func NewFloat(v float64) Float {
	return Float{Value: v, Valid: true}
}

// Or returns the value, or fallback when the Float is missing.
func (f Float) Or(fallback float64) float64 {
	if !f.Valid {
		return fallback
	}
	return f.Value
}

// MarshalJSON renders missing values as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON accepts null as a missing value.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float{Value: v, Valid: true}
	return nil
}

// Date is a nullable calendar timestamp.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date carrying t.
func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

// MarshalJSON renders missing dates as null and valid ones as RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// UnmarshalJSON accepts null as a missing value.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*d = Date{Time: t, Valid: true}
	return nil
}

// String is a nullable text value. An empty source cell is missing, not "".
type String struct {
	Value string
	Valid bool
}

// NewString returns a valid String carrying s.
func NewString(s string) String {
	return String{Value: s, Valid: true}
}

// MarshalJSON renders missing strings as null.
func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON accepts null as a missing value.
func (s *String) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = String{}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = String{Value: v, Valid: true}
	return nil
}
