package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"fundpulse/internal/config"
	"fundpulse/internal/metrics"
)

// ExcelWriter writes a metrics snapshot as a multi-sheet workbook.
type ExcelWriter struct {
	paths *config.Paths
}

// NewExcelWriter creates a new Excel writer instance.
func NewExcelWriter(paths *config.Paths) *ExcelWriter {
	return &ExcelWriter{paths: paths}
}

// WriteSnapshot writes the snapshot workbook: a summary sheet plus one sheet
// each for monthly trends, yearly rollups, the status breakdown and the top
// account holders.
func (w *ExcelWriter) WriteSnapshot(filePath string, snap *metrics.Snapshot) error {
	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.paths.ReportsDir, filePath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, snap); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, snap); err != nil {
		return err
	}
	if err := writeYearlySheet(f, snap); err != nil {
		return err
	}
	if err := writeStatusSheet(f, snap); err != nil {
		return err
	}
	if err := writeHoldersSheet(f, snap); err != nil {
		return err
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, snap *metrics.Snapshot) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := setRow(f, sheet, 1, "Metric", "Value"); err != nil {
		return err
	}
	for i, row := range snapshotSummaryRows(snap) {
		if err := setRow(f, sheet, i+2, row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, snap *metrics.Snapshot) error {
	const sheet = "Monthly Trends"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Month", "Total Amount", "Amount Paid", "Invoice Count"); err != nil {
		return err
	}
	for i, trend := range snap.MonthlyTrends {
		if err := setRow(f, sheet, i+2, trend.Month, trend.TotalAmount, trend.AmountPaid, trend.InvoiceCount); err != nil {
			return err
		}
	}
	return nil
}

func writeYearlySheet(f *excelize.File, snap *metrics.Snapshot) error {
	const sheet = "Yearly"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Year", "Invoice Total", "Invoice Count", "Credit Total", "Credit Count"); err != nil {
		return err
	}

	credits := make(map[int]metrics.YearlyRollup, len(snap.YearlyCredits))
	years := make(map[int]bool)
	for _, r := range snap.YearlyCredits {
		credits[r.Year] = r
		years[r.Year] = true
	}
	invoices := make(map[int]metrics.YearlyRollup, len(snap.YearlyInvoices))
	for _, r := range snap.YearlyInvoices {
		invoices[r.Year] = r
		years[r.Year] = true
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	for i, year := range sorted {
		inv := invoices[year]
		cr := credits[year]
		if err := setRow(f, sheet, i+2, year, inv.TotalAmount, inv.Count, cr.TotalAmount, cr.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeStatusSheet(f *excelize.File, snap *metrics.Snapshot) error {
	const sheet = "Status Breakdown"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Payment Status", "Count"); err != nil {
		return err
	}
	row := 2
	for _, sc := range snap.PaymentStatusBreakdown {
		if err := setRow(f, sheet, row, sc.Status, sc.Count); err != nil {
			return err
		}
		row++
	}
	row++
	if err := setRow(f, sheet, row, "Credit Status", "Count"); err != nil {
		return err
	}
	row++
	for _, sc := range snap.CreditStatusBreakdown {
		if err := setRow(f, sheet, row, sc.Status, sc.Count); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeHoldersSheet(f *excelize.File, snap *metrics.Snapshot) error {
	const sheet = "Top Holders"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Account Holder", "Invoice Total"); err != nil {
		return err
	}
	for i, holder := range snap.TopHolders {
		if err := setRow(f, sheet, i+2, holder.DisplayName, holder.TotalAmount); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}
