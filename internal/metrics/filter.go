package metrics

import (
	"time"

	"fundpulse/pkg/contracts/domain"
)

// Filter narrows the invoice set before aggregation. The zero value matches
// everything. Credit notes are never filtered; they have no payment status
// and the dashboard always shows the full credit picture.
type Filter struct {
	From     time.Time
	To       time.Time
	Statuses []string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.From.IsZero() && f.To.IsZero() && len(f.Statuses) == 0
}

// Apply returns the invoices that pass the filter. Date bounds are inclusive
// and compare against invoice_date; invoices without a valid invoice date are
// excluded by a date-bounded filter, since their position in the range is
// unknowable.
func (f Filter) Apply(invoices []domain.Invoice) []domain.Invoice {
	if f.IsZero() {
		return invoices
	}

	statusSet := make(map[string]bool, len(f.Statuses))
	for _, s := range f.Statuses {
		statusSet[s] = true
	}

	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if !f.From.IsZero() || !f.To.IsZero() {
			if !inv.InvoiceDate.Valid {
				continue
			}
			if !f.From.IsZero() && inv.InvoiceDate.Time.Before(f.From) {
				continue
			}
			if !f.To.IsZero() && inv.InvoiceDate.Time.After(f.To) {
				continue
			}
		}
		if len(statusSet) > 0 && !statusSet[inv.PaymentStatus.Value] {
			continue
		}
		filtered = append(filtered, inv)
	}
	return filtered
}
