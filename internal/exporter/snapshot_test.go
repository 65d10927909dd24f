package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundpulse/internal/config"
	"fundpulse/internal/metrics"
	"fundpulse/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	dir := t.TempDir()
	return &config.Paths{
		BaseDir:    dir,
		ReportsDir: filepath.Join(dir, "reports"),
	}
}

func sampleSnapshot() *metrics.Snapshot {
	return &metrics.Snapshot{
		TotalInvoices:      2,
		TotalInvoiceAmount: 300.00,
		TotalAmountPaid:    100.00,
		TotalOutstanding:   200.00,
		AvgInvoiceAmount:   domain.NewFloat(150.00),
		CollectionRate:     33.33,
		TotalCreditNotes:   1,
		TotalCreditAmount:  25.00,
		MonthlyTrends: []metrics.MonthlyTrend{
			{Month: "2024-01", TotalAmount: 100.00, AmountPaid: 100.00, InvoiceCount: 1},
			{Month: "2024-02", TotalAmount: 200.00, AmountPaid: 0.00, InvoiceCount: 1},
		},
		PaymentStatusBreakdown: []metrics.StatusCount{
			{Status: "Paid", Count: 1},
			{Status: "Unpaid", Count: 1},
		},
		TopHolders: []metrics.HolderTotal{
			{DisplayName: "Alice Smith", TotalAmount: 300.00},
		},
	}
}

func TestWriteSnapshotCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	require.NoError(t, writer.WriteSnapshotCSV("snapshot.csv", sampleSnapshot()))

	data, err := os.ReadFile(filepath.Join(paths.ReportsDir, "snapshot.csv"))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xef\xbb\xbf"), "BOM prefix for Excel")
	assert.Contains(t, content, "Metric,Value")
	assert.Contains(t, content, "Total Invoices,2")
	assert.Contains(t, content, "Total Invoice Amount,300.00")
	assert.Contains(t, content, "Collection Rate (%),33.33")
}

func TestWriteSnapshotCSVNullMean(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	snap := &metrics.Snapshot{} // empty dataset, mean undefined
	require.NoError(t, writer.WriteSnapshotCSV("empty.csv", snap))

	data, err := os.ReadFile(filepath.Join(paths.ReportsDir, "empty.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Average Invoice Amount,\n", "undefined mean exports as empty, not 0.00")
}

func TestWriteMonthlyTrendsCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	require.NoError(t, writer.WriteMonthlyTrendsCSV("monthly.csv", sampleSnapshot()))

	data, err := os.ReadFile(filepath.Join(paths.ReportsDir, "monthly.csv"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Month,Total Amount,Amount Paid,Invoice Count")
	assert.Contains(t, content, "2024-01,100.00,100.00,1")
	assert.Contains(t, content, "2024-02,200.00,0.00,1")
}

func TestWriteExcelSnapshot(t *testing.T) {
	paths := testPaths(t)
	writer := NewExcelWriter(paths)

	require.NoError(t, writer.WriteSnapshot("snapshot.xlsx", sampleSnapshot()))

	info, err := os.Stat(filepath.Join(paths.ReportsDir, "snapshot.xlsx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
