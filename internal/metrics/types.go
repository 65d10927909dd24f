package metrics

import (
	"fundpulse/pkg/contracts/domain"
)

// StatusCount is one slice of the payment or credit status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthlyTrend is one month of invoice activity, keyed "YYYY-MM".
type MonthlyTrend struct {
	Month        string  `json:"month"`
	TotalAmount  float64 `json:"total_amount"`
	AmountPaid   float64 `json:"amount_paid"`
	InvoiceCount int     `json:"invoice_count"`
}

// YearlyRollup is one year of activity for either dataset.
type YearlyRollup struct {
	Year        int     `json:"year"`
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

// HolderTotal is one account holder's aggregate invoice amount.
type HolderTotal struct {
	DisplayName string  `json:"display_name"`
	TotalAmount float64 `json:"total_amount"`
}

// Snapshot is the full set of derived figures for one filtered dataset view.
// It is computed fresh per call and never stored.
type Snapshot struct {
	TotalInvoices      int          `json:"total_invoices"`
	TotalInvoiceAmount float64      `json:"total_invoice_amount"`
	TotalAmountPaid    float64      `json:"total_amount_paid"`
	TotalOutstanding   float64      `json:"total_outstanding"`
	AvgInvoiceAmount   domain.Float `json:"avg_invoice_amount"`
	CollectionRate     float64      `json:"collection_rate"`

	TotalCreditNotes     int     `json:"total_credit_notes"`
	TotalCreditAmount    float64 `json:"total_credit_amount"`
	TotalAppliedCredit   float64 `json:"total_applied_credit"`
	TotalUnappliedCredit float64 `json:"total_unapplied_credit"`

	PaymentStatusBreakdown []StatusCount  `json:"payment_status_breakdown"`
	CreditStatusBreakdown  []StatusCount  `json:"credit_status_breakdown"`
	MonthlyTrends          []MonthlyTrend `json:"monthly_trends"`
	YearlyInvoices         []YearlyRollup `json:"yearly_invoices"`
	YearlyCredits          []YearlyRollup `json:"yearly_credits"`
	TopHolders             []HolderTotal  `json:"top_holders"`

	RecentInvoices    []domain.Invoice    `json:"recent_invoices"`
	RecentCreditNotes []domain.CreditNote `json:"recent_credit_notes"`
}
