package dataprocessing

import (
	"strings"

	"fundpulse/pkg/contracts/domain"
)

// paymentStatusTable maps raw payment status codes to canonical labels.
// The table is the contract: entries must not be added without confirming
// them against the source data.
var paymentStatusTable = map[string]string{
	"P":              domain.PaymentStatusPaid,
	"PAID":           domain.PaymentStatusPaid,
	"U":              domain.PaymentStatusUnpaid,
	"UNPAID":         domain.PaymentStatusUnpaid,
	"PP":             domain.PaymentStatusPartiallyPaid,
	"PARTIALLY PAID": domain.PaymentStatusPartiallyPaid,
	"CD":             domain.PaymentStatusClosed,
	"CLOSED":         domain.PaymentStatusClosed,
}

// creditStatusTable maps raw credit status codes to canonical labels.
var creditStatusTable = map[string]string{
	"CR":     domain.CreditStatusCredit,
	"CREDIT": domain.CreditStatusCredit,
	"CD":     domain.CreditStatusClosed,
	"CLOSED": domain.CreditStatusClosed,
}

// NormalizePaymentStatus maps a raw payment status to its canonical label.
// Unrecognized values pass through as their trimmed original text.
func NormalizePaymentStatus(raw string) string {
	return normalizeStatus(raw, paymentStatusTable)
}

// NormalizeCreditStatus maps a raw credit status to its canonical label.
// Unrecognized values pass through as their trimmed original text.
func NormalizeCreditStatus(raw string) string {
	return normalizeStatus(raw, creditStatusTable)
}

// normalizeStatus trims, uppercase-folds for lookup only, and resolves the
// value against the mapping table. The fold never leaks into the output:
// unmatched values keep their original casing.
func normalizeStatus(raw string, table map[string]string) string {
	text := strings.TrimSpace(raw)
	if canonical, ok := table[strings.ToUpper(text)]; ok {
		return canonical
	}
	return text
}

// normalizeStatusColumn rewrites a status column in place using the given
// table. Missing cells stay missing; normalization never invents a value for
// absent data.
func normalizeStatusColumn(f *Frame, column string, table map[string]string) {
	idx := f.ColumnIndex(column)
	if idx < 0 {
		return
	}
	for r := range f.Rows {
		cell := &f.Rows[r][idx]
		if cell.Missing {
			continue
		}
		cell.Raw = normalizeStatus(cell.Raw, table)
	}
}
