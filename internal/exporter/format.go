package exporter

import (
	"fmt"

	"fundpulse/pkg/contracts/domain"
)

// formatFloat formats a monetary value for CSV output with exactly 2 decimal
// places, so 13.4 appears as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatNullableFloat renders a missing value as empty text, never as 0.00.
func formatNullableFloat(f domain.Float) string {
	if !f.Valid {
		return ""
	}
	return formatFloat(f.Value)
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// FormatCurrencyCompact returns a compact currency string with no decimals
// ($12K, $5M). It rounds for display only; callers keep the exact value.
func FormatCurrencyCompact(value float64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}

	units := []struct {
		value  float64
		suffix string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}
	for _, unit := range units {
		if abs >= unit.value {
			return fmt.Sprintf("$%.0f%s", value/unit.value, unit.suffix)
		}
	}
	return fmt.Sprintf("$%.0f", value)
}
