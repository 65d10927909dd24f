package quality

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundpulse/internal/dataprocessing"
	"fundpulse/pkg/contracts/domain"
)

func cleanDataset(t *testing.T) *dataprocessing.Dataset {
	t.Helper()
	invoiceFrame := buildFrame(t, []string{"id", "total"}, numberKinds(2),
		[]string{"1", "100"},
		[]string{"2", "200"},
	)
	creditFrame := buildFrame(t, []string{"id", "Total"}, numberKinds(2),
		[]string{"c1", "10"},
	)
	return &dataprocessing.Dataset{
		Invoices: []domain.Invoice{
			{ID: domain.NewString("1"), UserID: domain.NewString("u1")},
			{ID: domain.NewString("2"), UserID: domain.NewString("u2")},
		},
		CreditNotes: []domain.CreditNote{
			{InvoiceID: domain.NewString("1"), UserID: domain.NewString("u1")},
		},
		InvoiceFrame: invoiceFrame,
		CreditFrame:  creditFrame,
		LoadedAt:     time.Now(),
	}
}

func TestBuildReportCleanData(t *testing.T) {
	report := BuildReport(cleanDataset(t))

	assert.Equal(t, 10.0, report.Invoices.Score)
	assert.Equal(t, 10.0, report.CreditNotes.Score)
	assert.Equal(t, 10.0, report.AverageScore)
	assert.Equal(t, GradeExcellent, report.Grade)
	assert.Contains(t, report.Recommendations[0], "relatively clean")
}

func TestBuildReportDirtyData(t *testing.T) {
	ds := cleanDataset(t)
	// Replace invoice frame with one that is half missing and all text
	ds.InvoiceFrame = buildFrame(t, []string{"id", "total"},
		[]dataprocessing.ColumnKind{dataprocessing.KindText, dataprocessing.KindText},
		[]string{"1", ""},
		[]string{"", ""},
	)

	report := BuildReport(ds)

	assert.Less(t, report.Invoices.Score, 7.0)
	assert.Contains(t, report.Recommendations[0], "cleaning needed")

	var mentionsMissing bool
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "missing values in invoices") {
			mentionsMissing = true
		}
	}
	assert.True(t, mentionsMissing)
}

func TestReportRender(t *testing.T) {
	report := BuildReport(cleanDataset(t))
	text := report.Render()

	require.NotEmpty(t, text)
	assert.Contains(t, text, "DATA QUALITY ANALYSIS REPORT")
	assert.Contains(t, text, "FUNDING INVOICES ANALYSIS")
	assert.Contains(t, text, "CREDIT NOTES ANALYSIS")
	assert.Contains(t, text, "RELATIONSHIP ANALYSIS")
	assert.Contains(t, text, "OVERALL DATA QUALITY: EXCELLENT")
	assert.Contains(t, text, "All credit notes have matching invoices")
}

func TestReportRenderOrphans(t *testing.T) {
	ds := cleanDataset(t)
	ds.CreditNotes = append(ds.CreditNotes, domain.CreditNote{
		InvoiceID: domain.NewString("99"),
		UserID:    domain.NewString("u9"),
	})

	report := BuildReport(ds)
	text := report.Render()

	assert.Contains(t, text, "Orphaned credit notes (no matching invoice): 1")
	assert.Contains(t, text, "Users in credit notes but not in invoices: 1")
}
