package quality

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fundpulse/internal/dataprocessing"
)

// Report is the full data quality assessment for one dataset pair.
type Report struct {
	GeneratedAt   time.Time          `json:"generated_at"`
	Invoices      DatasetScore       `json:"invoices"`
	CreditNotes   DatasetScore       `json:"credit_notes"`
	Relationships RelationshipReport `json:"relationships"`
	AverageScore  float64            `json:"average_score"`
	Grade         string             `json:"grade"`
	Recommendations []string         `json:"recommendations"`
}

// BuildReport assembles the quality report for a loaded dataset.
func BuildReport(ds *dataprocessing.Dataset) *Report {
	report := &Report{
		GeneratedAt:   time.Now(),
		Invoices:      ScoreDataset(ds.InvoiceFrame),
		CreditNotes:   ScoreDataset(ds.CreditFrame),
		Relationships: CheckRelationships(ds.Invoices, ds.CreditNotes),
	}
	report.AverageScore = (report.Invoices.Score + report.CreditNotes.Score) / 2
	report.Grade = GradeFor(report.AverageScore)
	report.Recommendations = recommendations(report)
	return report
}

// recommendations derives cleanup advice from the scores. The thresholds
// match the grading logic: below 7 on either dataset means cleaning is due.
func recommendations(r *Report) []string {
	var recs []string

	if r.Invoices.Score < 7 || r.CreditNotes.Score < 7 {
		recs = append(recs, "Data cleaning needed before analysis")
		if r.Invoices.MissingPercent > 5 {
			recs = append(recs, fmt.Sprintf("Handle missing values in invoices (%.1f%% missing)", r.Invoices.MissingPercent))
		}
		if r.CreditNotes.MissingPercent > 5 {
			recs = append(recs, fmt.Sprintf("Handle missing values in credit notes (%.1f%% missing)", r.CreditNotes.MissingPercent))
		}
		recs = append(recs,
			"Convert data types (dates, numbers)",
			"Standardize categorical values",
			"Validate foreign key relationships")
	} else {
		recs = append(recs,
			"Data is relatively clean and ready for analysis",
			"Minor cleaning may be beneficial",
			"Consider data validation rules for future data")
	}

	if r.Relationships.OrphanedCreditNotes > 0 {
		recs = append(recs, fmt.Sprintf("Investigate %d orphaned credit notes with no matching invoice", r.Relationships.OrphanedCreditNotes))
	}

	return recs
}

// Render formats the report as the plain text emitted by the report CLI.
func (r *Report) Render() string {
	var b strings.Builder

	rule := strings.Repeat("=", 80)
	section := strings.Repeat("=", 50)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "DATA QUALITY ANALYSIS REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(&b, "\nDATASET OVERVIEW")
	fmt.Fprintf(&b, "Funding Invoices: %d rows x %d columns\n", r.Invoices.RowCount, r.Invoices.ColumnCount)
	fmt.Fprintf(&b, "Credit Notes: %d rows x %d columns\n", r.CreditNotes.RowCount, r.CreditNotes.ColumnCount)

	renderDataset(&b, section, "FUNDING INVOICES ANALYSIS", r.Invoices)
	renderDataset(&b, section, "CREDIT NOTES ANALYSIS", r.CreditNotes)

	fmt.Fprintf(&b, "\n%s\nRELATIONSHIP ANALYSIS\n%s\n", section, section)
	rel := r.Relationships
	if rel.OrphanedCreditNotes > 0 {
		fmt.Fprintf(&b, "   Orphaned credit notes (no matching invoice): %d\n", rel.OrphanedCreditNotes)
	} else {
		fmt.Fprintln(&b, "   All credit notes have matching invoices")
	}
	fmt.Fprintf(&b, "   Invoices with credit notes: %d (%.1f%%)\n", rel.InvoicesWithCredits, rel.InvoiceCoveragePct)
	fmt.Fprintf(&b, "   Users appearing in both datasets: %d\n", rel.CommonUsers)
	if rel.CreditOnlyUsers > 0 {
		fmt.Fprintf(&b, "   Users in credit notes but not in invoices: %d\n", rel.CreditOnlyUsers)
	}

	fmt.Fprintf(&b, "\n%s\nOVERALL DATA QUALITY SUMMARY\n%s\n", section, section)
	fmt.Fprintln(&b, "\nDATA QUALITY SCORES:")
	fmt.Fprintf(&b, "   Funding Invoices: %.1f/10\n", r.Invoices.Score)
	fmt.Fprintf(&b, "   Credit Notes: %.1f/10\n", r.CreditNotes.Score)
	fmt.Fprintf(&b, "   Overall Average: %.1f/10\n", r.AverageScore)

	fmt.Fprintln(&b, "\nRECOMMENDATIONS:")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "   - %s\n", rec)
	}

	fmt.Fprintf(&b, "\nOVERALL DATA QUALITY: %s\n", r.Grade)

	return b.String()
}

func renderDataset(b *strings.Builder, section, title string, score DatasetScore) {
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", section, title, section)
	fmt.Fprintf(b, "\nShape: (%d, %d)\n", score.RowCount, score.ColumnCount)

	fmt.Fprintln(b, "\nMISSING VALUES:")
	if score.MissingCells == 0 {
		fmt.Fprintln(b, "No missing values found!")
	} else {
		fmt.Fprintf(b, "Total missing: %d cells (%.1f%%)\n", score.MissingCells, score.MissingPercent)
		fmt.Fprintln(b, "Columns with missing values:")
		for _, col := range topMissingColumns(score, 10) {
			fmt.Fprintf(b, "   %s: %d\n", col.name, col.count)
		}
	}

	fmt.Fprintln(b, "\nPOTENTIAL DATA QUALITY ISSUES:")
	if score.DuplicateRows > 0 {
		fmt.Fprintf(b, "   Duplicate rows: %d\n", score.DuplicateRows)
	} else {
		fmt.Fprintln(b, "   No duplicate rows")
	}
	if score.TextColumnFraction > textColumnThreshold {
		fmt.Fprintf(b, "   High share of free-form text columns: %.0f%%\n", score.TextColumnFraction*100)
	}
}

type missingColumn struct {
	name  string
	count int
}

// topMissingColumns orders columns by missing count descending, name
// ascending for ties, capped at limit.
func topMissingColumns(score DatasetScore, limit int) []missingColumn {
	columns := make([]missingColumn, 0, len(score.MissingByColumn))
	for name, count := range score.MissingByColumn {
		if count > 0 {
			columns = append(columns, missingColumn{name: name, count: count})
		}
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].count != columns[j].count {
			return columns[i].count > columns[j].count
		}
		return columns[i].name < columns[j].name
	})
	if len(columns) > limit {
		columns = columns[:limit]
	}
	return columns
}
