package exporter

import (
	"fundpulse/internal/metrics"
)

// snapshotSummaryRows flattens the scalar figures of a snapshot into
// metric/value pairs for the summary sheet and CSV.
func snapshotSummaryRows(snap *metrics.Snapshot) [][]string {
	return [][]string{
		{"Total Invoices", formatInt(snap.TotalInvoices)},
		{"Total Invoice Amount", formatFloat(snap.TotalInvoiceAmount)},
		{"Total Amount Paid", formatFloat(snap.TotalAmountPaid)},
		{"Total Outstanding", formatFloat(snap.TotalOutstanding)},
		{"Average Invoice Amount", formatNullableFloat(snap.AvgInvoiceAmount)},
		{"Collection Rate (%)", formatFloat(snap.CollectionRate)},
		{"Total Credit Notes", formatInt(snap.TotalCreditNotes)},
		{"Total Credit Amount", formatFloat(snap.TotalCreditAmount)},
		{"Total Applied Credit", formatFloat(snap.TotalAppliedCredit)},
		{"Total Unapplied Credit", formatFloat(snap.TotalUnappliedCredit)},
	}
}

// WriteSnapshotCSV writes the scalar summary of a snapshot as a two-column
// CSV under the reports directory.
func (w *CSVWriter) WriteSnapshotCSV(filePath string, snap *metrics.Snapshot) error {
	return w.WriteSimpleCSV(filePath, []string{"Metric", "Value"}, snapshotSummaryRows(snap))
}

// WriteMonthlyTrendsCSV writes the monthly rollup as a CSV file.
func (w *CSVWriter) WriteMonthlyTrendsCSV(filePath string, snap *metrics.Snapshot) error {
	records := make([][]string, 0, len(snap.MonthlyTrends))
	for _, trend := range snap.MonthlyTrends {
		records = append(records, []string{
			trend.Month,
			formatFloat(trend.TotalAmount),
			formatFloat(trend.AmountPaid),
			formatInt(trend.InvoiceCount),
		})
	}
	return w.WriteSimpleCSV(filePath, []string{"Month", "Total Amount", "Amount Paid", "Invoice Count"}, records)
}
