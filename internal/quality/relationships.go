package quality

import (
	"fundpulse/pkg/contracts/domain"
)

// RelationshipReport captures how the two datasets link up. All figures are
// read-only diagnostics; nothing here filters or repairs the data.
type RelationshipReport struct {
	OrphanedCreditNotes     int     `json:"orphaned_credit_notes"`
	InvoicesWithCredits     int     `json:"invoices_with_credits"`
	InvoiceCoveragePct      float64 `json:"invoice_coverage_pct"`
	CommonUsers             int     `json:"common_users"`
	CreditOnlyUsers         int     `json:"credit_only_users"`
	DistinctInvoiceIDs      int     `json:"distinct_invoice_ids"`
	DistinctCreditLinkedIDs int     `json:"distinct_credit_linked_ids"`
}

// CheckRelationships cross-references credit notes against invoices. Records
// with a missing link or user id are excluded from the corresponding set,
// mirroring how the checks treat absent data: unknown, not mismatched.
func CheckRelationships(invoices []domain.Invoice, creditNotes []domain.CreditNote) RelationshipReport {
	invoiceIDs := make(map[string]bool)
	invoiceUsers := make(map[string]bool)
	for _, inv := range invoices {
		if inv.ID.Valid {
			invoiceIDs[inv.ID.Value] = true
		}
		if inv.UserID.Valid {
			invoiceUsers[inv.UserID.Value] = true
		}
	}

	creditLinkedIDs := make(map[string]bool)
	creditUsers := make(map[string]bool)
	for _, cn := range creditNotes {
		if cn.InvoiceID.Valid {
			creditLinkedIDs[cn.InvoiceID.Value] = true
		}
		if cn.UserID.Valid {
			creditUsers[cn.UserID.Value] = true
		}
	}

	report := RelationshipReport{
		DistinctInvoiceIDs:      len(invoiceIDs),
		DistinctCreditLinkedIDs: len(creditLinkedIDs),
	}

	for id := range creditLinkedIDs {
		if invoiceIDs[id] {
			report.InvoicesWithCredits++
		} else {
			report.OrphanedCreditNotes++
		}
	}
	if len(invoiceIDs) > 0 {
		report.InvoiceCoveragePct = float64(report.InvoicesWithCredits) / float64(len(invoiceIDs)) * 100
	}

	for user := range creditUsers {
		if invoiceUsers[user] {
			report.CommonUsers++
		} else {
			report.CreditOnlyUsers++
		}
	}

	return report
}
